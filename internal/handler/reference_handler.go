package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/repository"
)

// ReferenceHandler serves the catalogs the project and task forms are
// populated from.
type ReferenceHandler struct {
	reference *repository.ReferenceRepository
	employees *repository.EmployeeRepository
	logger    *zap.Logger
}

func NewReferenceHandler(reference *repository.ReferenceRepository, employees *repository.EmployeeRepository, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{reference: reference, employees: employees, logger: logger}
}

func (h *ReferenceHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		h.logger.Error("ListEmployees failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *ReferenceHandler) ListTeams(c *gin.Context) {
	teams, err := h.reference.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Error("ListTeams failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (h *ReferenceHandler) ListClients(c *gin.Context) {
	clients, err := h.reference.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("ListClients failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ReferenceHandler) ListMonths(c *gin.Context) {
	months, err := h.reference.ListMonths(c.Request.Context())
	if err != nil {
		h.logger.Error("ListMonths failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list months"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": months})
}

func (h *ReferenceHandler) ListActivityTypes(c *gin.Context) {
	activities, err := h.reference.ListActivityTypes(c.Request.Context())
	if err != nil {
		h.logger.Error("ListActivityTypes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activity types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity_types": activities})
}
