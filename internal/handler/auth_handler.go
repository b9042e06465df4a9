package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/model"
	"github.com/Bossax/creagy-project-tracker/internal/repository"
	"github.com/Bossax/creagy-project-tracker/internal/util"
)

// AuthHandler implements the passwordless employee-profile flow: an
// employee registers or picks an existing profile and gets a JWT that
// identifies them on subsequent requests.
type AuthHandler struct {
	employees *repository.EmployeeRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(employees *repository.EmployeeRepository, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{employees: employees, jwtSecret: jwtSecret, logger: logger}
}

type registerRequest struct {
	Name   string `json:"name"`
	TeamID *int64 `json:"team_id"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee name is required"})
		return
	}

	employee := model.Employee{Name: req.Name, TeamID: req.TeamID}
	id, err := h.employees.Insert(c.Request.Context(), &employee)
	if err != nil {
		h.logger.Error("Register: failed to create employee", zap.Error(err), zap.String("name", req.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}
	employee.ID = id

	token, err := util.GenerateJWT(id, h.jwtSecret)
	if err != nil {
		h.logger.Error("Register: failed to sign token", zap.Error(err), zap.Int64("employee_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	h.logger.Info("Employee registered", zap.Int64("employee_id", id), zap.String("name", req.Name))
	c.JSON(http.StatusCreated, gin.H{"employee": employee, "token": token})
}

type loginRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id required"})
		return
	}

	employee, err := h.employees.GetEmployee(c.Request.Context(), req.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		h.logger.Error("Login: failed to load employee", zap.Error(err), zap.Int64("employee_id", req.EmployeeID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employee"})
		return
	}

	token, err := util.GenerateJWT(employee.ID, h.jwtSecret)
	if err != nil {
		h.logger.Error("Login: failed to sign token", zap.Error(err), zap.Int64("employee_id", employee.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	h.logger.Info("Employee logged in", zap.Int64("employee_id", employee.ID))
	c.JSON(http.StatusOK, gin.H{"employee": employee, "token": token})
}
