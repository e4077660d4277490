package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lesmarvelous-backend/config"
	"lesmarvelous-backend/controllers"
	"lesmarvelous-backend/services"
	"lesmarvelous-backend/utils"
)

// Setup wires every controller behind its route group. Register, login and
// health are public; everything else requires a bearer token.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userService := services.NewUserService(db)
	projectService := services.NewProjectService(db)
	taskService := services.NewTaskService(db)
	dashboardService := services.NewDashboardService(db)
	employeeService := services.NewEmployeeService(db)

	auth := controllers.NewAuthController(userService, cfg.JWTSecret)
	users := controllers.NewUserController(userService)
	projects := controllers.NewProjectController(projectService)
	tasks := controllers.NewTaskController(taskService)
	dashboard := controllers.NewDashboardController(dashboardService)
	employees := controllers.NewEmployeeController(employeeService)
	health := controllers.NewHealthController(db)

	authRequired := utils.JWTMiddleware(cfg.JWTSecret)

	r.GET("/api/health", health.Check)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", authRequired, auth.Me)
	}

	userGroup := r.Group("/api/users", authRequired)
	{
		userGroup.GET("/me", auth.Me)
		userGroup.PUT("/profile", users.UpdateProfile)
		userGroup.GET("", users.List)
	}

	projectGroup := r.Group("/api/projects", authRequired)
	{
		projectGroup.GET("", projects.List)
		projectGroup.GET("/:id", projects.Get)
		projectGroup.POST("", projects.Create)
		projectGroup.PUT("/:id", projects.Update)
		projectGroup.PATCH("/:id/status", projects.UpdateStatus)
		projectGroup.DELETE("/:id", projects.Delete)
	}

	taskGroup := r.Group("/api/tasks", authRequired)
	{
		taskGroup.GET("/project/:projectId", tasks.ListByProject)
		taskGroup.POST("", tasks.Create)
		taskGroup.PUT("/:id", tasks.Update)
		taskGroup.DELETE("/:id", tasks.Delete)
	}

	dashboardGroup := r.Group("/api/dashboard", authRequired)
	{
		dashboardGroup.GET("/stats", dashboard.Stats)
		dashboardGroup.GET("/delayed-tasks", dashboard.DelayedTasks)
	}

	employeeGroup := r.Group("/api/employees", authRequired)
	{
		employeeGroup.GET("", employees.List)
		employeeGroup.GET("/:id", employees.Get)
		employeeGroup.POST("", employees.Create)
		employeeGroup.PUT("/:id", employees.Update)
		employeeGroup.DELETE("/:id", employees.Delete)
		employeeGroup.POST("/:id/sessions", employees.StartSession)
		employeeGroup.GET("/:id/performance", employees.Performance)
	}

	r.PUT("/api/sessions/:id/stop", authRequired, employees.StopSession)
	r.POST("/api/delay-reports", authRequired, employees.ReportDelay)
}
