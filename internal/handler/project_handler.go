package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contracts "github.com/Bossax/creagy-project-tracker/contracts/mq"
	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
	"github.com/Bossax/creagy-project-tracker/pkg/mq"
)

const dateLayout = "2006-01-02"

type ProjectHandler struct {
	projects  *repository.ProjectRepository
	tasks     *repository.TaskRepository
	reference *repository.ReferenceRepository
	publisher *mq.Publisher
	logger    *zap.Logger
}

func NewProjectHandler(projects *repository.ProjectRepository, tasks *repository.TaskRepository, reference *repository.ReferenceRepository, publisher *mq.Publisher, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:  projects,
		tasks:     tasks,
		reference: reference,
		publisher: publisher,
		logger:    logger,
	}
}

type createProjectRequest struct {
	Name             string  `json:"name"`
	ClientID         int64   `json:"client_id"`
	NewClientName    string  `json:"new_client_name"`
	ProjectManagerID int64   `json:"project_manager_id"`
	TeamID           int64   `json:"team_id"`
	Budget           float64 `json:"budget"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ProjectManagerID == 0 || req.TeamID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, project_manager_id and team_id are required"})
		return
	}
	if req.Budget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget must be non-negative"})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be on or after start_date"})
		return
	}

	clientID := req.ClientID
	if clientID == 0 {
		name := strings.TrimSpace(req.NewClientName)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "select an existing client or provide new_client_name"})
			return
		}
		clientID, err = h.reference.CreateClient(c.Request.Context(), name)
		if err != nil {
			h.logger.Error("CreateProject: failed to create client", zap.Error(err), zap.String("client", name))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
			return
		}
	}

	project := model.Project{
		Name:             req.Name,
		ClientID:         clientID,
		ProjectManagerID: req.ProjectManagerID,
		TeamID:           req.TeamID,
		Budget:           req.Budget,
		StartDate:        startDate,
		EndDate:          endDate,
	}

	id, err := h.projects.Insert(c.Request.Context(), &project)
	if err != nil {
		h.logger.Error("CreateProject: insert failed", zap.Error(err), zap.String("name", req.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	project.ID = id
	metrics.ProjectCreatedCount.Inc()

	if err := h.publisher.Publish(contracts.ProjectCreatedKey, contracts.ProjectCreatedEvent{
		ProjectID:        id,
		Name:             project.Name,
		ClientID:         project.ClientID,
		ProjectManagerID: project.ProjectManagerID,
		TeamID:           project.TeamID,
		StartDate:        project.StartDate.Format(dateLayout),
		EndDate:          project.EndDate.Format(dateLayout),
	}); err != nil {
		// Event delivery is best-effort; the project is already stored.
		h.logger.Warn("CreateProject: failed to publish event", zap.Error(err), zap.Int64("project_id", id))
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("ListProjects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("GetProject failed", zap.Error(err), zap.Int64("project_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	tasks, err := h.tasks.ListTasksByProject(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("GetProject: failed to load tasks", zap.Error(err), zap.Int64("project_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project, "tasks": tasks})
}
