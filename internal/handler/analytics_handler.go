package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/analytics"
	"github.com/Bossax/creagy-project-tracker/internal/cache"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
)

type AnalyticsHandler struct {
	service *analytics.Service
	cache   *cache.AnalyticsCache
	logger  *zap.Logger
}

func NewAnalyticsHandler(service *analytics.Service, analyticsCache *cache.AnalyticsCache, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, cache: analyticsCache, logger: logger}
}

// ProjectAnalytics serves the derived views for one project: the Gantt
// payload, the monthly manday series and the summary box. The derived
// part is cached per project; the CanManageTasks flag is recomputed for
// every requester.
func (h *AnalyticsHandler) ProjectAnalytics(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	requesterID := c.GetInt64("employee_id")

	if payload, managerID, ok := h.cache.Get(c.Request.Context(), projectID); ok {
		payload.CanManageTasks = requesterID == managerID
		c.JSON(http.StatusOK, payload)
		return
	}

	payload, err := h.service.ProjectAnalytics(c.Request.Context(), projectID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, analytics.ErrMonthNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, analytics.ErrInvalidRange):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("ProjectAnalytics failed", zap.Error(err), zap.Int64("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive analytics"})
		}
		return
	}

	// CanManageTasks depends on the requester; cache the derived views
	// together with the manager id so hits can recompute the flag.
	h.cache.Set(c.Request.Context(), projectID, payload.ManagerID, payload)

	c.JSON(http.StatusOK, payload)
}
