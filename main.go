package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/headwall-io/gatehouse/audit"
	"github.com/headwall-io/gatehouse/config"
	"github.com/headwall-io/gatehouse/controller"
	"github.com/headwall-io/gatehouse/db"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/metrics"
	"github.com/headwall-io/gatehouse/ratelimit"
	"github.com/headwall-io/gatehouse/router"
	"github.com/headwall-io/gatehouse/service"
	"github.com/headwall-io/gatehouse/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize metrics
	metrics.Init("gatehouse")

	// Initialize Neo4j
	if err := db.InitNeo4j(); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	services, err := service.InitializeServices(
		db.Neo4jDriver,
		auditService,
		validationUtil,
		eventBus,
		config.GetDuration("cache.tenantTTL"),
		config.GetDuration("cache.permissionTTL"),
		true,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Rate limiter for mutating operations. Fail-open is the default for
	// this throttle; flip via ratelimit.failOpen for deployments that front
	// anything authorization-adjacent with it.
	policy := ratelimit.FailOpen
	if !config.GetBool("ratelimit.failOpen") {
		policy = ratelimit.FailClosed
	}
	limiter := ratelimit.NewLimiter(
		ratelimit.NewRedisStore(),
		config.GetDuration("ratelimit.window"),
		config.GetInt("ratelimit.maxOperations"),
		policy,
	)

	// Initialize controllers
	controllers := controller.InitializeControllers(services, auditService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, services, limiter)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
