package cycle

const (
	// MaxHistoryPoints 是趋势图最多展示的周期数
	MaxHistoryPoints = 12
	// 图表比均值统计更能容忍噪声，因此阈值更宽
	maxChartIntervalDays = 60
)

// HistoryPoint 是趋势图中的一个点，Label 取较新一端日期的月份缩写。
type HistoryPoint struct {
	Label      string `json:"label"`
	LengthDays int    `json:"length_days"`
	EndDate    Date   `json:"end_date"`
}

// BuildHistory 取最近最多 12 个相邻日期对，过滤掉 >= 60 天的间隔，
// 按从旧到新的顺序输出，方便从左到右绘图。
func BuildHistory(logs LogSet) []HistoryPoint {
	intervals := Intervals(logs)
	if len(intervals) > MaxHistoryPoints {
		intervals = intervals[:MaxHistoryPoints]
	}

	points := make([]HistoryPoint, 0, len(intervals))
	for i := len(intervals) - 1; i >= 0; i-- {
		interval := intervals[i]
		if interval.LengthDays >= maxChartIntervalDays {
			continue
		}
		points = append(points, HistoryPoint{
			Label:      interval.Newer.MonthLabel(),
			LengthDays: interval.LengthDays,
			EndDate:    interval.Newer,
		})
	}
	return points
}

// RecentHistory 保留最新的 n 个点，顺序不变。
func RecentHistory(points []HistoryPoint, n int) []HistoryPoint {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}
