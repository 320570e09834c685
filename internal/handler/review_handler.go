package handler

import (
	"net/http"
	"strings"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/locale"
	"github.com/gin-gonic/gin"
)

type reviewPayload struct {
	CycleStartDate string     `json:"cycle_start_date"`
	Flow           cycle.Flow `json:"flow"`
	PainLevel      int        `json:"pain_level"`
	HasClots       bool       `json:"has_clots"`
	Mood           cycle.Mood `json:"mood"`
}

// ListCycleReviews 返回全部回顾，?date= 时只返回该周期
func (a *API) ListCycleReviews(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := cycle.ParseDate(raw)
		if err != nil {
			handleCycleError(c, err)
			return
		}
		review, err := a.reviews.Get(date)
		if err != nil {
			handleCycleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"review": review})
		return
	}

	today, err := a.today(c)
	if err != nil {
		handleCycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":    a.reviews.List(),
		"review_due": a.reviews.ReviewDue(today),
	})
}

// SaveCycleReview 保存一次回顾；未提供日期时记在最近一次经期上
func (a *API) SaveCycleReview(c *gin.Context) {
	var payload reviewPayload
	if !bindJSON(c, &payload, locale.Pick(requestLanguage(c), "invalid request body", "请求格式错误")) {
		return
	}

	var start cycle.Date
	if raw := strings.TrimSpace(payload.CycleStartDate); raw != "" {
		parsed, err := cycle.ParseDate(raw)
		if err != nil {
			handleCycleError(c, err)
			return
		}
		start = parsed
	}

	review, err := a.reviews.SaveCycleReview(start, cycle.ReviewInput{
		Flow:      payload.Flow,
		PainLevel: payload.PainLevel,
		HasClots:  payload.HasClots,
		Mood:      payload.Mood,
	})
	if err != nil {
		handleCycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}
