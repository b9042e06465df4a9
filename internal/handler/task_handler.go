package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contracts "github.com/Bossax/creagy-project-tracker/contracts/mq"
	"github.com/Bossax/creagy-project-tracker/internal/cache"
	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
	"github.com/Bossax/creagy-project-tracker/pkg/metrics"
	"github.com/Bossax/creagy-project-tracker/pkg/mq"
)

type TaskHandler struct {
	projects  *repository.ProjectRepository
	tasks     *repository.TaskRepository
	publisher *mq.Publisher
	cache     *cache.AnalyticsCache
	logger    *zap.Logger
}

func NewTaskHandler(projects *repository.ProjectRepository, tasks *repository.TaskRepository, publisher *mq.Publisher, analyticsCache *cache.AnalyticsCache, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		projects:  projects,
		tasks:     tasks,
		publisher: publisher,
		cache:     analyticsCache,
		logger:    logger,
	}
}

type assignmentInput struct {
	MonthID        int64 `json:"month_id"`
	ActivityTypeID int64 `json:"activity_type_id"`
}

type createTaskRequest struct {
	Name        string            `json:"name"`
	AssigneeID  int64             `json:"assignee_id"`
	Manday      float64           `json:"manday"`
	Budget      float64           `json:"budget"`
	Status      string            `json:"status"`
	Assignments []assignmentInput `json:"assignments"`
}

// CreateTask adds a task with its month/activity schedule. Only the
// project's manager may add tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	requesterID := c.GetInt64("employee_id")

	project, err := h.projects.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("CreateTask: failed to load project", zap.Error(err), zap.Int64("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	if project.ProjectManagerID != requesterID {
		h.logger.Warn("CreateTask: non-manager attempted to add a task",
			zap.Int64("project_id", projectID),
			zap.Int64("employee_id", requesterID),
		)
		c.JSON(http.StatusForbidden, gin.H{"error": "only the project manager can add tasks"})
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.AssigneeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task name and assignee_id are required"})
		return
	}
	if req.Manday < 0 || req.Budget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "manday and budget must be non-negative"})
		return
	}
	if req.Status == "" {
		req.Status = model.StatusPlanned
	}
	if !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be Planned, InProgress or Completed"})
		return
	}

	// Identical (month, activity) pairs collapse to one assignment.
	seen := make(map[assignmentInput]struct{}, len(req.Assignments))
	pairs := make([]repository.AssignmentPair, 0, len(req.Assignments))
	monthIDs := make([]int64, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		if a.MonthID == 0 || a.ActivityTypeID == 0 {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		pairs = append(pairs, repository.AssignmentPair{MonthID: a.MonthID, ActivityTypeID: a.ActivityTypeID})
		monthIDs = append(monthIDs, a.MonthID)
	}
	if len(pairs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assign at least one month and activity to the task"})
		return
	}

	task := model.Task{
		ProjectID:  projectID,
		Name:       req.Name,
		AssigneeID: req.AssigneeID,
		Manday:     req.Manday,
		Budget:     req.Budget,
		Status:     req.Status,
	}

	id, err := h.tasks.Insert(c.Request.Context(), &task, pairs)
	if err != nil {
		h.logger.Error("CreateTask: insert failed",
			zap.Error(err),
			zap.Int64("project_id", projectID),
			zap.String("name", req.Name),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	task.ID = id
	metrics.TaskCreatedCount.Inc()

	// The project's derived analytics are stale now.
	h.cache.Invalidate(c.Request.Context(), projectID)

	if err := h.publisher.Publish(contracts.TaskCreatedKey, contracts.TaskCreatedEvent{
		TaskID:     id,
		ProjectID:  projectID,
		Name:       task.Name,
		AssigneeID: task.AssigneeID,
		Manday:     task.Manday,
		Status:     task.Status,
		MonthIDs:   monthIDs,
	}); err != nil {
		h.logger.Warn("CreateTask: failed to publish event", zap.Error(err), zap.Int64("task_id", id))
	}

	h.logger.Info("Task created",
		zap.Int64("task_id", id),
		zap.Int64("project_id", projectID),
		zap.Int("assignments", len(pairs)),
	)
	c.JSON(http.StatusCreated, gin.H{"task": task})
}
