package main

import (
	"log"

	config "retailbrain-dashboard/configs"
	"retailbrain-dashboard/pkg/handlers"
	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/services"
	"retailbrain-dashboard/pkg/viewstate"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLog := logger.New(logger.Config{Env: cfg.Environment, Level: cfg.LogLevel})

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Shared view-state and the backend gateway.
	state := viewstate.New()
	client := retail.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	// View controllers.
	monitoringService := services.NewMonitoringService(appLog)
	dashboardService := services.NewDashboardService(client, state, appLog)
	forecastService := services.NewForecastService(client, state, appLog)
	uploadService := services.NewUploadService(client, state, forecastService, appLog, cfg.MaxUploadBytes)
	copilotService := services.NewCopilotService(client, state, appLog)
	navigationService := services.NewNavigationService(state, dashboardService, forecastService, appLog)

	viewHandler := handlers.NewViewHandler(state, navigationService, uploadService, forecastService, copilotService, appLog)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	r.Use(monitoringService.LoggingMiddleware())
	r.Use(cors.Default())
	r.Use(handlers.SessionMiddleware())

	r.GET("/health", handlers.HealthCheck)

	r.GET("/", viewHandler.Home)
	r.GET("/pages/:page", viewHandler.ShowPage)
	r.POST("/upload", viewHandler.Upload)
	r.POST("/forecast", viewHandler.Forecast)
	r.POST("/copilot/chat", viewHandler.Chat)

	fragments := r.Group("/fragments")
	{
		fragments.GET("/dashboard", viewHandler.DashboardFragment)
		fragments.GET("/forecast", viewHandler.ForecastFragment)
		fragments.GET("/transcript", viewHandler.TranscriptFragment)
		fragments.GET("/products", viewHandler.ProductOptionsFragment)
	}

	monitoring := r.Group("/monitoring")
	{
		monitoring.GET("/logs", monitoringHandler.GetLogs)
	}

	appLog.Info().Str("port", cfg.Port).Str("backend", cfg.BackendBaseURL).Msg("starting RetailBrain dashboard")
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
