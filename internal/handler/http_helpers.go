package handler

import (
	"net/http"

	"github.com/cyclelog/internal/cycle"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseDateParam(c *gin.Context, key string) (cycle.Date, error) {
	return cycle.ParseDate(c.Param(key))
}
