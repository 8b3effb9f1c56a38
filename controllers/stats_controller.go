package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type StatsController struct {
	Service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{Service: service}
}

func (sc *StatsController) AdminStats(c *gin.Context) {
	stats, err := sc.Service.ComputeStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (sc *StatsController) GuestDashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	dashboard, err := sc.Service.GuestDashboard(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
