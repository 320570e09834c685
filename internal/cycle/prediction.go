package cycle

// StatusKind 描述下一次经期相对今天的状态。
type StatusKind string

const (
	StatusFuture  StatusKind = "future"
	StatusDue     StatusKind = "due"
	StatusLate    StatusKind = "late"
	StatusUnknown StatusKind = "unknown"
)

// Status 是预测结果。Unknown 时 PredictedDate 为空。
type Status struct {
	Kind          StatusKind `json:"kind"`
	DaysOffset    int        `json:"days_offset"`
	PredictedDate *Date      `json:"predicted_date,omitempty"`
}

// Predict 以最近一次开始日期加平均周期长度作为预测日，并与 today 比较。
func Predict(logs LogSet, averageLengthDays int, today Date) Status {
	latest, ok := logs.Latest()
	if !ok {
		return Status{Kind: StatusUnknown}
	}

	predicted := latest.AddDays(averageLengthDays)
	diff := DaysBetween(predicted, today)

	status := Status{PredictedDate: &predicted}
	switch {
	case diff > 0:
		status.Kind = StatusFuture
		status.DaysOffset = diff
	case diff == 0:
		status.Kind = StatusDue
	default:
		status.Kind = StatusLate
		status.DaysOffset = -diff
	}
	return status
}

// CurrentCycleDay 返回 today 在当前周期中的第几天（从 1 开始）。
// 最近一次记录在未来时按第 1 天处理。
func CurrentCycleDay(latest, today Date) int {
	day := DaysBetween(today, latest) + 1
	if day < 1 {
		return 1
	}
	return day
}
