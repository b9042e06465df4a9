package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Bossax/creagy-project-tracker/internal/handler"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Reference *handler.ReferenceHandler
	Project   *handler.ProjectHandler
	Task      *handler.TaskHandler
	Analytics *handler.AnalyticsHandler
	Report    *handler.ReportHandler
}

func NewRouter(h Handlers, logger *zap.Logger, db *pgxpool.Pool, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/employees", h.Reference.ListEmployees)
		auth.GET("/teams", h.Reference.ListTeams)
		auth.GET("/clients", h.Reference.ListClients)
		auth.GET("/months", h.Reference.ListMonths)
		auth.GET("/activities", h.Reference.ListActivityTypes)

		auth.POST("/projects", h.Project.CreateProject)
		auth.GET("/projects", h.Project.ListProjects)
		auth.GET("/projects/:id", h.Project.GetProject)
		auth.POST("/projects/:id/tasks", h.Task.CreateTask)
		auth.GET("/projects/:id/analytics", h.Analytics.ProjectAnalytics)

		auth.GET("/reports/portfolio", h.Report.PortfolioReport)
	}

	return r
}
