package cycle

// AnalysisKind 描述最近一个完整周期相对平均值的偏差类型。
type AnalysisKind string

const (
	AnalysisRegular AnalysisKind = "regular"
	AnalysisEarly   AnalysisKind = "early"
	AnalysisLate    AnalysisKind = "late"
)

const regularityToleranceDays = 2

// Analysis 是规律性判断结果。
type Analysis struct {
	Kind               AnalysisKind `json:"kind"`
	MagnitudeDays      int          `json:"magnitude_days"`
	ObservedLengthDays int          `json:"observed_length_days"`
}

// AnalyzeRegularity 比较最近一个完整周期与平均长度，±2 天以内视为规律。
// 这里不套用统计时的异常值过滤，刚结束的超长或超短周期同样会被分析。
// 少于两条记录时返回 nil。
func AnalyzeRegularity(logs LogSet, averageLengthDays int) *Analysis {
	if logs.Len() < 2 {
		return nil
	}

	current := DaysBetween(logs.dates[0], logs.dates[1])
	delta := current - averageLengthDays

	analysis := &Analysis{ObservedLengthDays: current}
	switch {
	case delta < -regularityToleranceDays:
		analysis.Kind = AnalysisEarly
		analysis.MagnitudeDays = -delta
	case delta > regularityToleranceDays:
		analysis.Kind = AnalysisLate
		analysis.MagnitudeDays = delta
	default:
		analysis.Kind = AnalysisRegular
	}
	return analysis
}
