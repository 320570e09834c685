package cycle

import "math"

const (
	// DefaultCycleLength 在有效间隔不足时使用
	DefaultCycleLength = 28
	// 统计均值时只接受 (15, 45) 开区间内的周期长度
	minValidIntervalDays = 15
	maxValidIntervalDays = 45
)

// Interval 表示两次相邻经期开始日期之间的天数。
type Interval struct {
	Newer      Date
	Older      Date
	LengthDays int
}

// Valid 判断该间隔是否落在可信的生理范围内。
// 超出范围的间隔通常是漏记或误记，不参与均值计算，但原始日志仍然保留。
func (i Interval) Valid() bool {
	return i.LengthDays > minValidIntervalDays && i.LengthDays < maxValidIntervalDays
}

// Statistics 汇总周期长度统计。
type Statistics struct {
	AverageLengthDays int `json:"average_length_days"`
	ValidIntervals    int `json:"valid_intervals"`
}

// Intervals 按从新到旧的顺序返回所有相邻日期对的间隔。
func Intervals(logs LogSet) []Interval {
	if logs.Len() < 2 {
		return nil
	}
	out := make([]Interval, 0, logs.Len()-1)
	for i := 0; i < len(logs.dates)-1; i++ {
		newer, older := logs.dates[i], logs.dates[i+1]
		out = append(out, Interval{Newer: newer, Older: older, LengthDays: DaysBetween(newer, older)})
	}
	return out
}

// CalculateStatistics 对有效间隔求均值并四舍五入，没有有效间隔时回退到 28 天。
func CalculateStatistics(logs LogSet) Statistics {
	total := 0
	count := 0
	for _, interval := range Intervals(logs) {
		if !interval.Valid() {
			continue
		}
		total += interval.LengthDays
		count++
	}

	if count == 0 {
		return Statistics{AverageLengthDays: DefaultCycleLength}
	}

	return Statistics{
		AverageLengthDays: int(math.Round(float64(total) / float64(count))),
		ValidIntervals:    count,
	}
}
