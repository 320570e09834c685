package router

import (
	"net/http"

	"github.com/cyclelog/internal/handler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(recovery(logger), requestLogger(logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(handler.LocaleMiddleware())
	{
		cycle := apiGroup.Group("/cycle")
		cycle.GET("/overview", api.GetCycleOverview)
		cycle.GET("/logs", api.ListCycleLogs)
		cycle.POST("/logs", api.LogCycleStart)
		cycle.DELETE("/logs/:date", api.DeleteCycleStart)
		cycle.GET("/history", api.GetCycleHistory)
		cycle.GET("/calendar", api.GetCycleCalendar)
		cycle.GET("/reviews", api.ListCycleReviews)
		cycle.POST("/reviews", api.SaveCycleReview)

		notes := apiGroup.Group("/notes")
		notes.GET("", api.ListLoveNotes)
		notes.POST("", api.SaveLoveNote)
		notes.PATCH("/:id/read", api.MarkLoveNoteRead)
		notes.DELETE("/:id", api.DeleteLoveNote)
	}

	return r
}
