package cycle

// Phase 是周期阶段的粗粒度分桶。
type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
)

// 固定阈值，不随平均周期长度调整
const (
	menstrualLastDay  = 5
	follicularLastDay = 11
	ovulationLastDay  = 16
	periodWeekLastDay = 7
)

// ClassifyPhase 根据周期第几天与预测状态给出阶段。
// 预测已到期或推迟时视为经期。
func ClassifyPhase(day int, kind StatusKind) Phase {
	if kind == StatusDue || kind == StatusLate {
		return PhaseMenstrual
	}

	switch {
	case day <= menstrualLastDay:
		return PhaseMenstrual
	case day <= follicularLastDay:
		return PhaseFollicular
	case day <= ovulationLastDay:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// IsPeriodWeek reports whether day falls in the first week of the cycle.
func IsPeriodWeek(day int) bool {
	return day > 0 && day <= periodWeekLastDay
}
