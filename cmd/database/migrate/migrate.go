package migration

import (
	"fmt"

	"nutrition-tracker/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		return fmt.Errorf("error migrating food item database: %w", err)
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		return fmt.Errorf("error migrating meal plan database: %w", err)
	}
	if err := db.AutoMigrate(&entities.MealPlanFood{}); err != nil {
		return fmt.Errorf("error migrating meal plan food database: %w", err)
	}
	return nil
}
