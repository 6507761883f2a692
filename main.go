// main.go
package main

import (
	"log"

	"go.uber.org/zap"

	"storefront/cmd"
	"storefront/internal/data/repository"
	"storefront/internal/usecase"
	"storefront/internal/wire"
	"storefront/pkg/crypto"
	"storefront/pkg/database"
	"storefront/pkg/payment"
	"storefront/pkg/storage"
	"storefront/pkg/utils"
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

	// Credential codec. Missing or malformed key material is fatal here,
	// not a per-request failure.
	codec, err := crypto.NewCodec(config.Crypto.EncryptionKey, config.Crypto.EncryptionIV)
	if err != nil {
		logger.Fatal("Failed to initialize credential codec", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Blob store for product images
	blobs, err := storage.NewS3Store(config.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize blob store", zap.Error(err))
	}

	// Payment gateway
	gateway := payment.NewStripeGateway(config.Payment.StripeSecretKey)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, usecase.Deps{
		Codec:   codec,
		Gateway: gateway,
		Blobs:   blobs,
	}, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
