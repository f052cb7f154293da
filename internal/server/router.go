package server

import (
	"net/http"

	"taskmaster/internal/config"
	"taskmaster/internal/handlers"
	"taskmaster/internal/middleware"
	"taskmaster/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("taskmaster_session", store))

	r.Use(middleware.InjectUser())

	api := r.Group("/api")

	// AUTH
	api.POST("/register", handlers.Register)
	api.POST("/login", handlers.Login)
	api.POST("/logout", handlers.Logout)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", handlers.Me)

	// PROJECTS
	auth.GET("/projects", handlers.ListProjects)
	auth.GET("/projects/:id", handlers.GetProject)
	auth.POST("/projects",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateProject,
	)
	auth.PUT("/projects/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateProject,
	)
	auth.POST("/projects/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ChangeProjectStatus,
	)
	auth.POST("/projects/:id/notes",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.AddProjectNote,
	)
	auth.DELETE("/projects/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteProject,
	)
	auth.GET("/projects/:id/activity", handlers.ProjectHistory)

	// DEPARTMENTS
	auth.GET("/departments", handlers.ListDepartments)
	auth.POST("/departments",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateDepartment,
	)
	auth.PUT("/departments/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateDepartment,
	)
	auth.DELETE("/departments/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteDepartment,
	)

	// USERS (admin only)
	auth.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)
	auth.POST("/users/:id/role",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateUserRole,
	)

	// DASHBOARD / ANALYTICS
	auth.GET("/dashboard", handlers.Dashboard)
	auth.GET("/analytics", handlers.Analytics)

	// ACTIVITY FEED
	auth.GET("/activity", handlers.ListActivity)
	auth.GET("/activity/export", handlers.ExportActivity)

	// NOTIFICATIONS
	auth.GET("/notifications", handlers.ListNotifications)
	auth.POST("/notifications/clear", handlers.ClearNotifications)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
