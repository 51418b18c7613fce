package config

import (
	migration "nutrition-tracker/cmd/database/migrate"
	"nutrition-tracker/internal/logger"
	"nutrition-tracker/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Bootstrap prepares config, logging and a migrated database for maintenance commands.
func Bootstrap() *gorm.DB {
	utils.LoadConfig()
	if err := logger.Init(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return db
}
