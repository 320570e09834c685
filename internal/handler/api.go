package handler

import (
	"time"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/service"
	"github.com/gin-gonic/gin"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	cycles   *service.CycleService
	reviews  *service.ReviewService
	notes    *service.LoveNoteService
	location *time.Location
	now      func() time.Time
}

// NewAPI constructs a handler set with shared services.
func NewAPI(cycles *service.CycleService, reviews *service.ReviewService, notes *service.LoveNoteService, location *time.Location) *API {
	if location == nil {
		location = time.Local
	}
	return &API{
		cycles:   cycles,
		reviews:  reviews,
		notes:    notes,
		location: location,
		now:      time.Now,
	}
}

// WithClock 替换当前时间来源，测试使用
func (a *API) WithClock(now func() time.Time) *API {
	if now != nil {
		a.now = now
	}
	return a
}

// today 优先使用 ?today=YYYY-MM-DD，否则取配置时区下的当天
func (a *API) today(c *gin.Context) (cycle.Date, error) {
	if raw := c.Query("today"); raw != "" {
		return cycle.ParseDate(raw)
	}
	return cycle.DateOf(a.now().In(a.location)), nil
}
