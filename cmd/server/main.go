package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/princeprakhar/boardgame-reviews/internal/api/routes"
	"github.com/princeprakhar/boardgame-reviews/internal/config"
	"github.com/princeprakhar/boardgame-reviews/internal/database"
	"github.com/princeprakhar/boardgame-reviews/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)

	cmd := &cli.Command{
		Name:   "boardgame-reviews",
		Usage:  "board game review catalogue API",
		Action: func(ctx context.Context, _ *cli.Command) error { return serve(ctx, cfg) },
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server (default)",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return serve(ctx, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "Create or update the database schema",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withDatabase(cfg, func(db *gorm.DB) error {
						if err := database.Migrate(db); err != nil {
							return err
						}
						logger.Info("Migration complete")
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Replace all data with the development seed set",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withDatabase(cfg, func(db *gorm.DB) error {
						if err := database.Migrate(db); err != nil {
							return err
						}
						if err := database.Seed(ctx, db, database.DefaultSeedData()); err != nil {
							return err
						}
						logger.Info("Seed complete")
						return nil
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("Command failed: ", err)
	}
}

func withDatabase(cfg *config.Config, fn func(db *gorm.DB) error) error {
	db, err := database.Init(database.Options{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        logger.Level(),
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database: ", err)
		}
	}()
	return fn(db)
}

func serve(ctx context.Context, cfg *config.Config) error {
	return withDatabase(cfg, func(db *gorm.DB) error {
		// Set Gin mode
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		router := gin.New()
		routes.SetupRoutes(router, db, cfg)

		server := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("Server starting on port " + cfg.Port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("Server stopped")
		return nil
	})
}
