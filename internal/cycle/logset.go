package cycle

import "slices"

// LogSet 是去重后按日期倒序（最近在前）排列的经期开始日期集合。
// 零值可直接使用。Add/Remove 不修改接收者，而是返回新的集合。
type LogSet struct {
	dates []Date
}

// NewLogSet 根据任意顺序、可能重复的日期构造集合。
func NewLogSet(dates ...Date) LogSet {
	out := make([]Date, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() || containsDate(out, d) {
			continue
		}
		out = append(out, d)
	}
	sortDescending(out)
	return LogSet{dates: out}
}

// Add 插入日期，已存在时原样返回且 changed 为 false。
func (s LogSet) Add(d Date) (next LogSet, changed bool) {
	if d.IsZero() || s.Contains(d) {
		return s, false
	}
	out := make([]Date, 0, len(s.dates)+1)
	out = append(out, s.dates...)
	out = append(out, d)
	sortDescending(out)
	return LogSet{dates: out}, true
}

// Remove 删除日期，不存在时原样返回且 changed 为 false。
func (s LogSet) Remove(d Date) (next LogSet, changed bool) {
	if !s.Contains(d) {
		return s, false
	}
	out := make([]Date, 0, len(s.dates)-1)
	for _, existing := range s.dates {
		if !existing.Equal(d) {
			out = append(out, existing)
		}
	}
	return LogSet{dates: out}, true
}

func (s LogSet) Contains(d Date) bool {
	return containsDate(s.dates, d)
}

func (s LogSet) Len() int {
	return len(s.dates)
}

// Dates 返回倒序日期的副本。
func (s LogSet) Dates() []Date {
	return slices.Clone(s.dates)
}

// Latest 返回最近一次经期开始日期。
func (s LogSet) Latest() (Date, bool) {
	if len(s.dates) == 0 {
		return Date{}, false
	}
	return s.dates[0], true
}

// Strings 返回 YYYY-MM-DD 形式的倒序列表，用于持久化。
func (s LogSet) Strings() []string {
	out := make([]string, 0, len(s.dates))
	for _, d := range s.dates {
		out = append(out, d.String())
	}
	return out
}

func containsDate(dates []Date, d Date) bool {
	return slices.ContainsFunc(dates, d.Equal)
}

func sortDescending(dates []Date) {
	slices.SortFunc(dates, func(a, b Date) int {
		return b.Compare(a)
	})
}
