package cycle

import "github.com/cyclelog/internal/locale"

// PhaseInsight 是每个阶段的提示文案与建议。
type PhaseInsight struct {
	Title           string   `json:"title"`
	Tip             string   `json:"tip"`
	Recommendations []string `json:"recommendations"`
}

type localizedInsight struct {
	en PhaseInsight
	zh PhaseInsight
}

var phaseInsights = map[Phase]localizedInsight{
	PhaseMenstrual: {
		en: PhaseInsight{
			Title: "Menstrual Phase",
			Tip:   "Your energy may be lower. Focus on iron-rich foods and rest.",
			Recommendations: []string{
				"Eat iron-rich foods (Spinach, Red Meat)",
				"Gentle yoga or walking",
				"Prioritize sleep (8+ hours)",
				"Hydrate with warm tea",
			},
		},
		zh: PhaseInsight{
			Title: "经期",
			Tip:   "精力可能偏低，多吃富含铁的食物并注意休息。",
			Recommendations: []string{
				"多吃富含铁的食物（菠菜、红肉）",
				"温和的瑜伽或散步",
				"保证充足睡眠（8 小时以上）",
				"喝温热的茶补充水分",
			},
		},
	},
	PhaseFollicular: {
		en: PhaseInsight{
			Title: "Follicular Phase",
			Tip:   "Estrogen is rising. You might feel a boost in energy and creativity.",
			Recommendations: []string{
				"Plan creative projects",
				"Try high-intensity workouts",
				"Eat fermented foods",
				"Socialize and network",
			},
		},
		zh: PhaseInsight{
			Title: "卵泡期",
			Tip:   "雌激素正在上升，你可能会感到精力和创造力提升。",
			Recommendations: []string{
				"安排创意类项目",
				"尝试高强度训练",
				"吃些发酵食品",
				"多社交、多交流",
			},
		},
	},
	PhaseOvulation: {
		en: PhaseInsight{
			Title: "Ovulation Phase",
			Tip:   "Peak energy levels! You are likely feeling your most confident.",
			Recommendations: []string{
				"Schedule important meetings",
				"Strength training",
				"Eat fiber-rich veggies",
				"Stay hydrated (max water intake)",
			},
		},
		zh: PhaseInsight{
			Title: "排卵期",
			Tip:   "精力处于高峰！这时你很可能最自信。",
			Recommendations: []string{
				"安排重要会议",
				"进行力量训练",
				"多吃富含膳食纤维的蔬菜",
				"保持充足饮水",
			},
		},
	},
	PhaseLuteal: {
		en: PhaseInsight{
			Title: "Luteal Phase",
			Tip:   "Progesterone is high. You may feel calmer but more sensitive.",
			Recommendations: []string{
				"Increase magnesium (Dark chocolate, Nuts)",
				"Avoid caffeine late in the day",
				"Practice journaling",
				"Light stretching before bed",
			},
		},
		zh: PhaseInsight{
			Title: "黄体期",
			Tip:   "孕酮水平较高，你可能更平静，但也更敏感。",
			Recommendations: []string{
				"补充镁（黑巧克力、坚果）",
				"下午之后避免咖啡因",
				"试着写日记",
				"睡前做些轻度拉伸",
			},
		},
	},
}

// InsightFor 返回指定语言下的阶段提示，未知阶段返回 false。
func InsightFor(phase Phase, language string) (PhaseInsight, bool) {
	insight, ok := phaseInsights[phase]
	if !ok {
		return PhaseInsight{}, false
	}
	if locale.NormalizeLanguage(language) == locale.LanguageChinese {
		return insight.zh, true
	}
	return insight.en, true
}
