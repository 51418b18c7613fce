package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMealPlan = "meal plan created successfully"
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted"

	MessageFailedCreateMealPlan = "failed to create meal plan"
	MessageFailedGetMealPlans   = "failed to retrieve meal plans"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrEmptyMealPlan    = errors.New("meal plan must contain at least one food")
)

type (
	MealFoodRequest struct {
		FoodID   uint    `json:"food_id" validate:"required,gt=0"`
		Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
		MealType string  `json:"meal_type" validate:"required"`
	}

	CreateMealPlanRequest struct {
		Name  string            `json:"name" validate:"required"`
		Foods []MealFoodRequest `json:"foods" validate:"required,min=1,dive"`
	}

	MealFoodResponse struct {
		FoodID        uint     `json:"food_id"`
		Name          string   `json:"name"`
		Quantity      float64  `json:"quantity"`
		MealType      string   `json:"meal_type"`
		Calories      float64  `json:"calories"`
		Protein       float64  `json:"protein"`
		Carbohydrates float64  `json:"carbohydrates"`
		Fats          float64  `json:"fats"`
		Fiber         *float64 `json:"fiber"`
		Sugar         *float64 `json:"sugar"`
	}

	MealPlanResponse struct {
		ID            uint               `json:"id"`
		Name          string             `json:"name"`
		Date          time.Time          `json:"date"`
		Foods         []MealFoodResponse `json:"foods"`
		TotalCalories float64            `json:"total_calories"`
		TotalProtein  float64            `json:"total_protein"`
		TotalCarbs    float64            `json:"total_carbs"`
		TotalFats     float64            `json:"total_fats"`
		TotalFiber    float64            `json:"total_fiber"`
		TotalSugar    float64            `json:"total_sugar"`
	}
)
