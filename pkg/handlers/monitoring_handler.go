package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retailbrain-dashboard/pkg/services"
)

// MonitoringHandler exposes the in-memory request log.
type MonitoringHandler struct {
	Service *services.MonitoringService
}

// NewMonitoringHandler creates a MonitoringHandler.
func NewMonitoringHandler(service *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{
		Service: service,
	}
}

// GetLogs returns the most recent request log entries, newest first.
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	c.JSON(http.StatusOK, gin.H{"logs": h.Service.Recent(limit)})
}
