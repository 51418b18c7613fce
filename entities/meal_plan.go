package entities

import "time"

type MealPlan struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"index" json:"name"`
	Date  time.Time       `gorm:"type:timestamp" json:"date"`
	Foods []*MealPlanFood `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE" json:"foods,omitempty"`

	Timestamp
}

// MealPlanFood is the association row between a meal plan and a food item.
type MealPlanFood struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	MealPlanID uint    `gorm:"index;not null" json:"meal_plan_id"`
	FoodItemID uint    `gorm:"index;not null" json:"food_item_id"`
	Quantity   float64 `gorm:"default:1" json:"quantity"` // in servings
	MealType   string  `json:"meal_type"`                 // breakfast, lunch, dinner, snack

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"food_item,omitempty"`
}
