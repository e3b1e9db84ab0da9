package main

import (
	_ "andar_membership/docs"
	"andar_membership/internal/adapter/http/routes"
	"andar_membership/internal/config"
	"andar_membership/pkg/logger"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           ANDAR Membership API
// @version         1.0
// @description     Membership checkout, Stripe webhooks and Brevo confirmation emails.

// @contact.name   ANDAR
// @contact.email  contact@andar.fr

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := routes.Run(cfg, zlog); err != nil {
		zlog.Fatal("[main] server stopped", zap.Error(err))
	}
}
