package controllers

import (
	"net/http"

	"github.com/ojanaja/PUSBANGKOMSDACKPS-SMAP/app"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ *Srv }

func GetDashboardController(s *Srv) *DashboardController {
	return &DashboardController{Srv: s}
}

// GET /api/dashboard/summary
func (dc *DashboardController) Summary(c *gin.Context) {
	sum, err := dc.Repo.GetDashboardSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}
