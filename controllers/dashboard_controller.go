package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lesmarvelous-backend/filter"
	"lesmarvelous-backend/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Stats serves the quick-stats and financial overview. Filter dimensions come
// in as repeatable query parameters, e.g. ?status=en_retard&country=fr.
func (dc *DashboardController) Stats(c *gin.Context) {
	var f filter.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid filter: "+err.Error())
		return
	}

	overview, err := dc.dashboard.Stats(f, time.Now())
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error computing stats")
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (dc *DashboardController) DelayedTasks(c *gin.Context) {
	delayed, err := dc.dashboard.DelayedTasks(time.Now())
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching delayed tasks")
		return
	}
	c.JSON(http.StatusOK, delayed)
}
