package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sistema-matriculas/app-enrollment/internal/config"
	"github.com/sistema-matriculas/app-enrollment/internal/enrollapi"
	"github.com/sistema-matriculas/app-enrollment/internal/handlers"
	"github.com/sistema-matriculas/app-enrollment/internal/logging"
	"github.com/sistema-matriculas/app-enrollment/internal/middleware"
	"github.com/sistema-matriculas/app-enrollment/internal/observability"
	"github.com/sistema-matriculas/app-enrollment/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sistema-matriculas/app-enrollment/docs"
)

// @title           Sistema de Matrículas API
// @version         1.0
// @description     API de matrículas escolares: catálogo de turmas, formulário público de matrícula com validação de dados do aluno e responsáveis, e painel administrativo de matrículas com pagamentos.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name classes
// @tag.description Catálogo de turmas

// @tag.name enrollments
// @tag.description Submissão de matrículas

// @tag.name registrations
// @tag.description Painel administrativo de matrículas

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize the remote enrollment API client and the services on it
	apiClient := enrollapi.NewClient(config.AppConfig, logging.Logger)
	services.InitDashboardService(apiClient)
	services.InitEnrollmentService(apiClient)

	classHandlers := handlers.NewClassHandlers(services.DashboardServiceInstance, services.EnrollmentServiceInstance)
	registrationHandlers := handlers.NewRegistrationHandlers(services.DashboardServiceInstance)
	enrollmentHandlers := handlers.NewEnrollmentHandlers(services.EnrollmentServiceInstance)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		// Public enrollment flow
		v1.GET("/classes", classHandlers.GetClasses)
		v1.GET("/classes/:id", classHandlers.GetClass)
		v1.POST("/enrollments", enrollmentHandlers.CreateEnrollment)

		// Admin dashboard
		v1.GET("/registrations", middleware.AuthMiddleware(), registrationHandlers.GetRegistrations)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
