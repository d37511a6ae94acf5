package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/handlers"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/middleware"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/platform/config"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/platform/seed"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/repositories/database/pgsql"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/utils"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title LikeBike Backend API
// @version 1.0
// @description Gamified cycling habit backend: Kakao login, quizzes, rewards and ride logs.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build repositories, services and the HTTP layer.
	userRepo := pgsql.NewUserRepository(dbPool)
	refreshTokenRepo := pgsql.NewRefreshTokenRepository(dbPool)
	quizRepo := pgsql.NewQuizRepository(dbPool)
	rewardRepo := pgsql.NewRewardRepository(dbPool)
	bikeLogRepo := pgsql.NewBikeLogRepository(dbPool)

	if err := seed.SeedQuizzes(context.Background(), quizRepo, logger); err != nil {
		logger.Error("Failed to seed quizzes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rewardService := services.NewRewardService(rewardRepo)
	container := &portssvc.ServiceContainer{
		Auth:    services.NewAuthService(cfg, userRepo, refreshTokenRepo),
		User:    services.NewUserService(userRepo, rewardRepo, rewardService),
		Reward:  rewardService,
		Quiz:    services.NewQuizService(quizRepo, rewardService),
		BikeLog: services.NewBikeLogService(bikeLogRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a throwaway
// database/sql connection on the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
		return nil
	}
	if upErr != nil {
		return upErr
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}
