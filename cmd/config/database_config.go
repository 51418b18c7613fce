package config

import (
	"fmt"
	"log"

	"nutrition-tracker/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(dialector(), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

func dialector() gorm.Dialector {
	if utils.GetConfig("DB_DRIVER") == "sqlite" {
		path := utils.GetConfigOrDefault("DB_PATH", "nutrition.db")
		return sqlite.Open(path + "?_foreign_keys=on")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)
	return postgres.Open(dsn)
}
