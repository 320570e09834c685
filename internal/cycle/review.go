package cycle

import (
	"slices"
	"time"
)

// Flow 是经血量的自评。
type Flow string

const (
	FlowLight  Flow = "light"
	FlowMedium Flow = "medium"
	FlowHeavy  Flow = "heavy"
)

// Mood 是经期情绪的自评。
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// ReviewInput 是一次周期回顾的问卷答案。
type ReviewInput struct {
	Flow      Flow `json:"flow" validate:"required,oneof=light medium heavy"`
	PainLevel int  `json:"pain_level" validate:"min=1,max=5"`
	HasClots  bool `json:"has_clots"`
	Mood      Mood `json:"mood" validate:"required,oneof=happy neutral sad anxious"`
}

// Review 以 CycleStartDate 为唯一键，重复保存时整条替换。
type Review struct {
	CycleStartDate Date      `json:"cycle_start_date"`
	Flow           Flow      `json:"flow"`
	PainLevel      int       `json:"pain_level"`
	HasClots       bool      `json:"has_clots"`
	Mood           Mood      `json:"mood"`
	AnalysisText   string    `json:"analysis_text"`
	AdviceText     string    `json:"advice_text"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type reviewRule struct {
	name     string
	matches  func(ReviewInput) bool
	analysis string
	advice   string
}

// 规则顺序决定同时满足多个条件时的输出（例如高疼痛且量多），不可调整。
var reviewRules = []reviewRule{
	{
		name:     "high_pain",
		matches:  func(in ReviewInput) bool { return in.PainLevel >= 4 },
		analysis: "You showed incredible strength through the discomfort. ❤️",
		advice:   "Heat, rest, and magnesium are your best friends right now.",
	},
	{
		name:     "heavy_flow",
		matches:  func(in ReviewInput) bool { return in.Flow == FlowHeavy },
		analysis: "Your body worked hard this cycle. 🌊",
		advice:   "Replenish your energy with iron-rich greens and dark chocolate.",
	},
	{
		name:     "low_mood",
		matches:  func(in ReviewInput) bool { return in.Mood == MoodSad || in.Mood == MoodAnxious },
		analysis: "It's okay to feel deeply. Be gentle with yourself. ☁️",
		advice:   "Slow styling, warm tea, and gentle yoga can help soothe the mind.",
	},
	{
		name:     "happy_mood",
		matches:  func(in ReviewInput) bool { return in.Mood == MoodHappy },
		analysis: "You're glowing! Your energy is vibrant. ✨",
		advice:   "Channel this beautiful energy into something you love.",
	},
}

var defaultReviewRule = reviewRule{
	name:     "balanced",
	analysis: "Your cycle was balanced and healthy. 🌸",
	advice:   "Keep nurturing your body with good food and rest.",
}

// Summarize 依次匹配规则，第一条命中的规则生成分析与建议。
func Summarize(input ReviewInput) (analysis, advice string) {
	rule := matchReviewRule(input)
	return rule.analysis, rule.advice
}

func matchReviewRule(input ReviewInput) reviewRule {
	for _, rule := range reviewRules {
		if rule.matches(input) {
			return rule
		}
	}
	return defaultReviewRule
}

// NewReview 根据问卷答案生成完整的回顾记录。
func NewReview(start Date, input ReviewInput, recordedAt time.Time) Review {
	analysis, advice := Summarize(input)
	return Review{
		CycleStartDate: start,
		Flow:           input.Flow,
		PainLevel:      input.PainLevel,
		HasClots:       input.HasClots,
		Mood:           input.Mood,
		AnalysisText:   analysis,
		AdviceText:     advice,
		RecordedAt:     recordedAt,
	}
}

// SaveReview 移除同一日期的旧记录，将新记录放在最前并按日期倒序排列。
// 返回新切片，不修改 reviews。
func SaveReview(reviews []Review, review Review) []Review {
	out := make([]Review, 0, len(reviews)+1)
	out = append(out, review)
	for _, existing := range reviews {
		if existing.CycleStartDate.Equal(review.CycleStartDate) {
			continue
		}
		out = append(out, existing)
	}
	slices.SortStableFunc(out, func(a, b Review) int {
		return b.CycleStartDate.Compare(a.CycleStartDate)
	})
	return out
}

// FindReview 查找指定开始日期的回顾。
func FindReview(reviews []Review, start Date) (Review, bool) {
	for _, review := range reviews {
		if review.CycleStartDate.Equal(start) {
			return review, true
		}
	}
	return Review{}, false
}
