package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// parseDate accepts RFC3339 or plain YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseUintParam reads a numeric path parameter.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
