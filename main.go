// main.go
package main

import (
	"log"

	"clothing-shop/cmd"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/wire"
	"clothing-shop/pkg/database"
	"clothing-shop/pkg/rabbitmq"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
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
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Order event publisher is optional, the API runs without a broker
	var events *rabbitmq.Publisher
	if config.AMQP.URL != "" {
		events, err = rabbitmq.NewPublisher(config.AMQP.URL, logger)
		if err != nil {
			logger.Warn("Failed to connect to RabbitMQ, order events disabled", zap.Error(err))
			events = nil
		} else {
			defer events.Close()
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, events)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
