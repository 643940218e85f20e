package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JRamonda/my-cv/config"
	_ "github.com/JRamonda/my-cv/docs" // Important for Swagger
	v1 "github.com/JRamonda/my-cv/internal/delivery/http/v1"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/internal/repository/postgres"
	"github.com/JRamonda/my-cv/internal/usecase"
	"github.com/JRamonda/my-cv/pkg/auth"
	"github.com/JRamonda/my-cv/pkg/database"
	"github.com/JRamonda/my-cv/pkg/logger"
	"github.com/JRamonda/my-cv/pkg/redis"
)

// @title           Interactive CV Platform API
// @version         1.0
// @description     API for managing CV content with CRUD operations.
// @host            localhost:3001
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting CV platform backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(context.Background(), dbPool); err != nil {
		logger.Log.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	techStackRepo := postgres.NewTechStackRepository(dbPool)
	referenceRepo := postgres.NewReferenceRepository(dbPool)

	// 6. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	experienceUC := usecase.NewResourceUsecase[domain.Experience]("Experience", experienceRepo)
	projectUC := usecase.NewResourceUsecase[domain.Project]("Project", projectRepo)
	skillUC := usecase.NewResourceUsecase[domain.Skill]("Skill", skillRepo)
	techStackUC := usecase.NewResourceUsecase[domain.TechStack]("Tech stack", techStackRepo)
	referenceUC := usecase.NewResourceUsecase[domain.Reference]("Reference", referenceRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		ExperienceUC: experienceUC,
		ProjectUC:    projectUC,
		SkillUC:      skillUC,
		TechStackUC:  techStackUC,
		ReferenceUC:  referenceUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
