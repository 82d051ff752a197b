package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	breedingapp "github.com/gadogest/backend/internal/application/breeding"
	financeapp "github.com/gadogest/backend/internal/application/finance"
	healthapp "github.com/gadogest/backend/internal/application/health"
	herdapp "github.com/gadogest/backend/internal/application/herd"
	identityapp "github.com/gadogest/backend/internal/application/identity"
	reportapp "github.com/gadogest/backend/internal/application/report"
	"github.com/gadogest/backend/internal/infrastructure/auth"
	"github.com/gadogest/backend/internal/infrastructure/config"
	"github.com/gadogest/backend/internal/infrastructure/logger"
	"github.com/gadogest/backend/internal/infrastructure/persistence"
	"github.com/gadogest/backend/internal/interfaces/http/handler"
	"github.com/gadogest/backend/internal/interfaces/http/middleware"
	"github.com/gadogest/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting GadoGest backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	animalRepo := persistence.NewGormAnimalRepository(db.DB)
	healthRecordRepo := persistence.NewGormHealthRecordRepository(db.DB)
	financialRecordRepo := persistence.NewGormFinancialRecordRepository(db.DB)
	reproductionEventRepo := persistence.NewGormReproductionEventRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	animalService := herdapp.NewAnimalService(animalRepo)
	healthService := healthapp.NewHealthRecordService(healthRecordRepo, animalRepo)
	financeService := financeapp.NewFinanceService(financialRecordRepo)
	breedingService := breedingapp.NewBreedingService(reproductionEventRepo, animalRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)
	seedService := identityapp.NewSeedService(userRepo, cfg.Bootstrap.Code, log)
	dashboardService := reportapp.NewDashboardService(animalRepo, healthRecordRepo, financialRecordRepo, reproductionEventRepo)

	// HTTP engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.JWTAuthMiddleware(jwtService))

	r := router.NewRouter(engine, router.Handlers{
		System:    handler.NewSystemHandler(db),
		Auth:      handler.NewAuthHandler(authService),
		Bootstrap: handler.NewBootstrapHandler(seedService),
		Animals:   handler.NewAnimalHandler(animalService),
		Health:    handler.NewHealthRecordHandler(healthService),
		Finance:   handler.NewFinancialRecordHandler(financeService),
		Breeding:  handler.NewReproductionEventHandler(breedingService),
		Users:     handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
