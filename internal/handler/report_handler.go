package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/analytics"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
)

type ReportHandler struct {
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	logger   *zap.Logger
}

func NewReportHandler(projects *repository.ProjectRepository, tasks *repository.TaskRepository, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{projects: projects, tasks: tasks, logger: logger}
}

// PortfolioReport aggregates headline figures across every project.
func (h *ReportHandler) PortfolioReport(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("PortfolioReport: failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		h.logger.Error("PortfolioReport: failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	report := analytics.BuildPortfolioReport(projects, tasks, time.Now().UTC())
	c.JSON(http.StatusOK, report)
}
