package main

import (
	"context"

	"nutrition-tracker/cmd/config"
	migration "nutrition-tracker/cmd/database/migrate"
	"nutrition-tracker/internal/logger"
	"nutrition-tracker/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()
	if err := logger.Init(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	scheduler, err := config.NewImportScheduler(context.Background(), db)
	if err != nil {
		log.Fatalf("failed to schedule usda import: %v", err)
	}
	if scheduler != nil {
		scheduler.Start()
		defer scheduler.Stop()
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	port := utils.GetConfigOrDefault("APP_PORT", "8000")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
