package routes

import (
	"fmt"
	"net/http"

	"coaching-portal-backend/internal/api/handlers"
	"coaching-portal-backend/internal/api/middleware"
	"coaching-portal-backend/internal/auth"
	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/metrics"
	"coaching-portal-backend/internal/repository"
	"coaching-portal-backend/internal/service"

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
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	store := repository.NewStore(db)

	// Initialize services
	leadership := service.NewLeadershipManager()
	userService := service.NewUserService(repos, store, leadership, validator, cfg)
	teamService := service.NewTeamService(repos, store, leadership, validator, cfg)
	memberService := service.NewTeamMemberService(repos, validator, cfg)
	coachingService := service.NewCoachingService(repos, validator, cfg)
	reportService := service.NewReportService(repos, cfg)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), repos.Users)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewTeamMemberHandler(memberService)
	coachingHandler := handlers.NewCoachingHandler(coachingService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - every endpoint acts on behalf of a resolved viewer
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	v1.Use(middleware.ResolveViewer(userService))
	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		members := v1.Group("/team-members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/assignable", memberHandler.AssignableMembers) // static segment wins over /:id
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.POST("/:id/archive", memberHandler.ArchiveMember)
			members.GET("/:id/trend", reportHandler.MemberTrend)
		}

		coachings := v1.Group("/coachings")
		{
			coachings.GET("", coachingHandler.ListCoachings)
			coachings.POST("", coachingHandler.CreateCoaching)
			coachings.GET("/:id", coachingHandler.GetCoaching)
			coachings.PUT("/:id", coachingHandler.UpdateCoaching)
			coachings.DELETE("/:id", coachingHandler.DeleteCoaching)
			coachings.PUT("/:id/review-notes", coachingHandler.UpdateReviewNotes)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/teams", reportHandler.TeamPerformance)
			reports.GET("/teams/:id/members", reportHandler.MemberPerformance)
			reports.GET("/team-view", reportHandler.TeamView)
			reports.GET("/subjects", reportHandler.SubjectDistribution)
			reports.GET("/leaderboard", reportHandler.Leaderboard)
			reports.GET("/dashboard", reportHandler.Dashboard)
			reports.GET("/export", reportHandler.Export)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
