package main

import (
	"log"

	"media-review/cmd"
	"media-review/internal/data/repository"
	"media-review/internal/usecase"
	"media-review/internal/wire"
	"media-review/pkg/database"
	"media-review/pkg/mailer"
	"media-review/pkg/token"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(config.Database, config.App.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	tokens, err := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)
	if err != nil {
		logger.Fatal("Failed to init token manager", zap.Error(err))
	}

	mail := mailer.NewSMTPMailer(config.Email, config.App.Name, logger)

	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, tokens, mail, config, logger)

	app := wire.Wiring(repo, service, tokens, logger)

	server := cmd.NewAPIServer(config.App.Port, app.Router, logger)
	if err := server.Run(); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}
