package cycle

import "slices"

const (
	markedDaysPerLog     = 5
	markIntensityFalloff = 0.2
)

// CalendarMark 标记日历上的经期日，开始当天强度为 1，之后逐日递减。
type CalendarMark struct {
	Date      Date    `json:"date"`
	Intensity float64 `json:"intensity"`
	IsStart   bool    `json:"is_start"`
}

// CalendarMarks 为每条记录标出连续 5 天，结果按日期升序。
// 两条记录的标记重叠时以较新的记录为准。
func CalendarMarks(logs LogSet) []CalendarMark {
	byDate := make(map[string]CalendarMark, logs.Len()*markedDaysPerLog)

	// 从旧到新遍历，较新的记录覆盖重叠日期
	for i := len(logs.dates) - 1; i >= 0; i-- {
		start := logs.dates[i]
		for offset := 0; offset < markedDaysPerLog; offset++ {
			day := start.AddDays(offset)
			byDate[day.String()] = CalendarMark{
				Date:      day,
				Intensity: 1 - float64(offset)*markIntensityFalloff,
				IsStart:   offset == 0,
			}
		}
	}

	marks := make([]CalendarMark, 0, len(byDate))
	for _, mark := range byDate {
		marks = append(marks, mark)
	}
	slices.SortFunc(marks, func(a, b CalendarMark) int {
		return a.Date.Compare(b.Date)
	})
	return marks
}
