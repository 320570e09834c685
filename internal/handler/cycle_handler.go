package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/locale"
	"github.com/cyclelog/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	historyViewMonthly = "monthly"
	historyViewYearly  = "yearly"
	// 月视图只展示最近 4 个周期
	monthlyHistoryPoints = 4
)

type cycleLogPayload struct {
	Date string `json:"date"`
}

type overviewPayload struct {
	cycle.Overview
	Insight *cycle.PhaseInsight `json:"insight"`
}

type historyPayload struct {
	View   string               `json:"view"`
	Points []cycle.HistoryPoint `json:"points"`
}

// GetCycleOverview 返回当天的全部派生结果与阶段提示
func (a *API) GetCycleOverview(c *gin.Context) {
	today, err := a.today(c)
	if err != nil {
		handleCycleError(c, err)
		return
	}

	overview := cycle.BuildOverview(a.cycles.Logs(), a.reviews.List(), today)
	payload := overviewPayload{Overview: overview}
	if insight, ok := cycle.InsightFor(overview.Phase, requestLanguage(c)); ok {
		payload.Insight = &insight
	}

	c.JSON(http.StatusOK, payload)
}

// ListCycleLogs 返回倒序排列的经期开始日期
func (a *API) ListCycleLogs(c *gin.Context) {
	logs := a.cycles.Logs()
	c.JSON(http.StatusOK, gin.H{
		"logs":       logs.Dates(),
		"statistics": cycle.CalculateStatistics(logs),
	})
}

// LogCycleStart 记录一次经期开始，重复日期返回 200 且 created=false
func (a *API) LogCycleStart(c *gin.Context) {
	var payload cycleLogPayload
	if !bindJSON(c, &payload, locale.Pick(requestLanguage(c), "invalid request body", "请求格式错误")) {
		return
	}

	date, err := cycle.ParseDate(payload.Date)
	if err != nil {
		handleCycleError(c, err)
		return
	}

	logs, created := a.cycles.LogCycleStart(date)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"created":    created,
		"logs":       logs.Dates(),
		"statistics": cycle.CalculateStatistics(logs),
	})
}

// DeleteCycleStart 删除一次记录
func (a *API) DeleteCycleStart(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		handleCycleError(c, err)
		return
	}

	logs, deleted := a.cycles.DeleteCycleStart(date)
	c.JSON(http.StatusOK, gin.H{
		"deleted":    deleted,
		"logs":       logs.Dates(),
		"statistics": cycle.CalculateStatistics(logs),
	})
}

// GetCycleHistory 返回趋势图数据，view=monthly 只保留最近 4 个周期
func (a *API) GetCycleHistory(c *gin.Context) {
	view := strings.ToLower(strings.TrimSpace(c.DefaultQuery("view", historyViewYearly)))
	points := cycle.BuildHistory(a.cycles.Logs())

	switch view {
	case historyViewMonthly:
		points = cycle.RecentHistory(points, monthlyHistoryPoints)
	case historyViewYearly:
	default:
		respondError(c, http.StatusBadRequest, locale.Pick(requestLanguage(c), "unknown history view", "未知的视图类型"))
		return
	}

	c.JSON(http.StatusOK, historyPayload{View: view, Points: points})
}

// GetCycleCalendar 返回日历上的经期标记
func (a *API) GetCycleCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"marks": cycle.CalendarMarks(a.cycles.Logs())})
}

func handleCycleError(c *gin.Context, err error) {
	language := requestLanguage(c)
	switch {
	case errors.Is(err, cycle.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "invalid date, expected YYYY-MM-DD", "日期格式错误，应为 YYYY-MM-DD"))
	case errors.Is(err, service.ErrInvalidReview):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "invalid review answers", "回顾内容无效"))
	case errors.Is(err, service.ErrNoCycleLogged):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "log a cycle start first", "请先记录一次经期"))
	case errors.Is(err, service.ErrReviewNotFound):
		respondError(c, http.StatusNotFound, locale.Pick(language, "review not found", "回顾不存在"))
	case errors.Is(err, service.ErrEmptyNote):
		respondError(c, http.StatusBadRequest, locale.Pick(language, "note text is required", "短笺内容不能为空"))
	case errors.Is(err, service.ErrNoteNotFound):
		respondError(c, http.StatusNotFound, locale.Pick(language, "note not found", "短笺不存在"))
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, locale.Pick(language, "operation failed", "操作失败"))
	}
}
