// main.go
package main

import (
	"context"
	"log"

	"venue-booking/cmd"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/wire"
	"venue-booking/pkg/database"
	"venue-booking/pkg/render"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("render_mode", config.App.RenderMode),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(context.Background(), db, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	repos := repository.NewRepository(db, logger)

	renderer, err := render.New(config.App.RenderMode)
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, renderer)

	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
