package handlers

import (
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service services.StatsService
}

// GET /api/stats/me
func (h StatsHandler) Me(c *gin.Context) {
	stats, err := h.Service.UserStats(middleware.AuthUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GET /api/stats/overview (admin)
func (h StatsHandler) Overview(c *gin.Context) {
	overview, err := h.Service.AdminOverview()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

// GET /api/stats/series?period=week|month|year (admin)
func (h StatsHandler) Series(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	series, err := h.Service.Series(period)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "series": series})
}
