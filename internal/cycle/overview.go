package cycle

// reviewDueAfterDay 之后（不含）才提示填写本周期回顾
const reviewDueAfterDay = 5

// Overview 汇总某一天的全部派生结果，每次读取都从完整日志重新计算。
type Overview struct {
	Today         Date           `json:"today"`
	Logs          []Date         `json:"logs"`
	Statistics    Statistics     `json:"statistics"`
	Status        Status         `json:"status"`
	CurrentDay    int            `json:"current_day"`
	Phase         Phase          `json:"phase,omitempty"`
	PeriodWeek    bool           `json:"period_week"`
	Analysis      *Analysis      `json:"analysis"`
	History       []HistoryPoint `json:"history"`
	ReviewDue     bool           `json:"review_due"`
	CalendarMarks []CalendarMark `json:"calendar_marks"`
}

// BuildOverview 是引擎的纯函数入口：输入日志、回顾与今天，输出所有派生值。
// 没有任何记录时状态为 Unknown，不计算阶段与当前天数。
func BuildOverview(logs LogSet, reviews []Review, today Date) Overview {
	stats := CalculateStatistics(logs)

	overview := Overview{
		Today:         today,
		Logs:          logs.Dates(),
		Statistics:    stats,
		Status:        Predict(logs, stats.AverageLengthDays, today),
		Analysis:      AnalyzeRegularity(logs, stats.AverageLengthDays),
		History:       BuildHistory(logs),
		CalendarMarks: CalendarMarks(logs),
	}

	latest, ok := logs.Latest()
	if !ok {
		return overview
	}

	overview.CurrentDay = CurrentCycleDay(latest, today)
	overview.Phase = ClassifyPhase(overview.CurrentDay, overview.Status.Kind)
	overview.PeriodWeek = IsPeriodWeek(overview.CurrentDay)
	overview.ReviewDue = IsReviewDue(logs, reviews, today)

	return overview
}

// IsReviewDue 在已过经期前 5 天且最近一个周期尚无回顾时返回 true。
func IsReviewDue(logs LogSet, reviews []Review, today Date) bool {
	latest, ok := logs.Latest()
	if !ok {
		return false
	}
	if CurrentCycleDay(latest, today) <= reviewDueAfterDay {
		return false
	}
	_, reviewed := FindReview(reviews, latest)
	return !reviewed
}
