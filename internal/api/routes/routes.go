package routes

import (
	"capstone-backend/internal/api/handlers"
	"capstone-backend/internal/api/middleware"
	"capstone-backend/internal/auth"
	"capstone-backend/internal/config"
	"capstone-backend/internal/database/models"
	"capstone-backend/internal/metrics"
	"capstone-backend/internal/repository"
	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	store := repository.NewStore(db)

	// Initialize services
	membershipService := service.NewMembershipService(store, validator)
	projectService := service.NewProjectService(store, validator)
	rolloverService := service.NewRolloverService(store, validator)
	deletionService := service.NewDeletionService(store)
	taskService := service.NewTaskService(store, validator)
	submissionService := service.NewSubmissionService(store, validator)
	sectionService := service.NewSectionService(store, validator)
	gradeService := service.NewGradeService(store, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(membershipService)
	projectHandler := handlers.NewProjectHandler(projectService)
	sectionHandler := handlers.NewSectionHandler(sectionService, rolloverService)
	deletionHandler := handlers.NewDeletionHandler(deletionService)
	taskHandler := handlers.NewTaskHandler(taskService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	gradeHandler := handlers.NewGradeHandler(gradeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", metrics.Handler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	adminOnly := authMiddleware.RequireRole(models.UserRoleAdmin)
	{
		v1.POST("/terms", adminOnly, sectionHandler.CreateTerm)

		// Section routes
		sections := v1.Group("/sections")
		{
			sections.POST("", adminOnly, sectionHandler.CreateSection)
			sections.PUT("/:id", adminOnly, sectionHandler.UpdateSection)
			sections.DELETE("/:id", adminOnly, sectionHandler.DeleteSection)
			sections.POST("/:id/enrollments", adminOnly, sectionHandler.EnrollStudents)
			sections.GET("/:id/roster.xlsx", sectionHandler.ExportRoster)
			sections.POST("/:id/rollover", adminOnly, sectionHandler.Rollover)
			sections.POST("/:id/teams", teamHandler.CreateTeam)
			sections.POST("/:id/events", submissionHandler.CreateEvent)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", deletionHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
			teams.POST("/:id/project", projectHandler.CreateProject)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.PUT("/:id/advisor", projectHandler.AssignAdvisor)
			projects.DELETE("/:id/advisor", projectHandler.RemoveAdvisor)
			projects.PUT("/:id/status", projectHandler.SetProjectStatus)
			projects.POST("/:id/tasks", taskHandler.CreateTask)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.PUT("/:id/move", taskHandler.MoveTask)
			tasks.PUT("/:id/assignees", taskHandler.AssignTask)
			tasks.POST("/:id/comments", taskHandler.AddComment)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Event and submission routes
		v1.DELETE("/events/:id", adminOnly, deletionHandler.DeleteEvent)
		submissions := v1.Group("/submissions")
		{
			submissions.POST("/:id/submit", submissionHandler.Submit)
			submissions.POST("/:id/approve", submissionHandler.Approve)
			submissions.POST("/:id/reject", submissionHandler.Reject)
		}

		v1.DELETE("/users/:id", adminOnly, deletionHandler.DeleteUser)
		v1.PUT("/grades", gradeHandler.UpsertGrade)
	}

	return router, nil
}
