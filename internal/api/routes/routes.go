package routes

import (
	"net/http"
	"path/filepath"

	"football-data-backend/internal/api/handlers"
	"football-data-backend/internal/api/middleware"
	"football-data-backend/internal/config"
	"football-data-backend/internal/paypal"
	"football-data-backend/internal/repository"
	"football-data-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// db may be nil when the store was unreachable at startup.
func SetupRoutes(db *gorm.DB, cfg *config.Config, gateway paypal.Gateway) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	policy := service.StorePolicy{FailOpen: cfg.StoreFailOpen}

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	standingRepo := repository.NewStandingRepository(db)
	playerRepo := repository.NewPlayerRepository(db)

	// Services
	teamService := service.NewTeamService(teamRepo, policy)
	matchService := service.NewMatchService(matchRepo, policy)
	standingService := service.NewStandingService(standingRepo, policy)
	playerService := service.NewPlayerService(playerRepo, policy)
	paymentService := service.NewPaymentService(gateway, validator)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	matchHandler := handlers.NewMatchHandler(matchService)
	standingHandler := handlers.NewStandingHandler(standingService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	paypalHandler := handlers.NewPayPalHandler(paymentService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Static("/static", cfg.StaticDir)
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/health/ready", healthHandler.Ready)
		api.GET("/health/live", healthHandler.Live)

		api.GET("/teams", teamHandler.ListTeams)
		api.GET("/teams/:slug", teamHandler.GetTeamBySlug)

		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.GET("/live", matchHandler.ListLiveMatches)
			matches.GET("/upcoming", matchHandler.ListUpcomingMatches)
		}

		api.GET("/standings", standingHandler.ListStandings)
		api.GET("/players/top-scorers", playerHandler.ListTopScorers)

		pp := api.Group("/paypal")
		{
			pp.GET("/setup", paypalHandler.Setup)
			pp.POST("/order", paypalHandler.CreateOrder)
			pp.POST("/order/:id/capture", paypalHandler.CaptureOrder)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDContextKey),
		})
	})

	return router
}
