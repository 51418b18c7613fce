package domain

import (
	"errors"
	"time"

	"nutrition-tracker/pkg/nutrition"
)

var (
	MessageSuccessAddFoodItem    = "food item added successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetFoodMetrics = "food metrics retrieved successfully"

	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetFoodMetrics = "failed to retrieve food metrics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidServingSize = errors.New("serving size must be positive")
	ErrInvalidPrice       = errors.New("price must be positive")
)

type (
	AddFoodItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Brand         *string  `json:"brand"`
		ServingSize   *float64 `json:"serving_size" validate:"omitempty,gt=0"`
		Calories      *float64 `json:"calories" validate:"required,gte=0"`
		Protein       *float64 `json:"protein" validate:"required,gte=0"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"required,gte=0"`
		Fats          *float64 `json:"fats" validate:"required,gte=0"`
		Fiber         *float64 `json:"fiber" validate:"omitempty,gte=0"`
		Sugar         *float64 `json:"sugar" validate:"omitempty,gte=0"`
		Price         float64  `json:"price" validate:"required,gt=0"`
		Store         *string  `json:"store"`
	}

	// UpdateFoodItemRequest leaves omitted fields untouched.
	UpdateFoodItemRequest struct {
		Name          *string  `json:"name" validate:"omitempty,min=1"`
		Brand         *string  `json:"brand"`
		ServingSize   *float64 `json:"serving_size" validate:"omitempty,gt=0"`
		Calories      *float64 `json:"calories" validate:"omitempty,gte=0"`
		Protein       *float64 `json:"protein" validate:"omitempty,gte=0"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"omitempty,gte=0"`
		Fats          *float64 `json:"fats" validate:"omitempty,gte=0"`
		Fiber         *float64 `json:"fiber" validate:"omitempty,gte=0"`
		Sugar         *float64 `json:"sugar" validate:"omitempty,gte=0"`
		Price         *float64 `json:"price" validate:"omitempty,gt=0"`
		Store         *string  `json:"store"`
	}

	FoodItemResponse struct {
		ID                uint             `json:"id"`
		Name              string           `json:"name"`
		Brand             *string          `json:"brand"`
		ServingSize       float64          `json:"serving_size"`
		Calories          float64          `json:"calories"`
		Protein           float64          `json:"protein"`
		Carbohydrates     float64          `json:"carbohydrates"`
		Fats              float64          `json:"fats"`
		Fiber             *float64         `json:"fiber"`
		Sugar             *float64         `json:"sugar"`
		Price             float64          `json:"price"`
		PricePerUnit      float64          `json:"price_per_unit"`
		Store             *string          `json:"store"`
		CaloriesPerDollar float64          `json:"calories_per_dollar"`
		ProteinPerDollar  float64          `json:"protein_per_dollar"`
		FiberToSugarRatio *nutrition.Ratio `json:"fiber_to_sugar_ratio"`
		CreatedAt         time.Time        `json:"created_at"`
		UpdatedAt         time.Time        `json:"updated_at"`
	}

	FoodItemListResponse struct {
		Items      []FoodItemResponse `json:"items"`
		Pagination PaginationResponse `json:"pagination"`
	}

	NamedValue struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	MacroSplit struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fats    float64 `json:"fats"`
		Fiber   float64 `json:"fiber"`
	}

	FoodMetricsResponse struct {
		FoodCount                int          `json:"food_count"`
		AverageProteinPerDollar  float64      `json:"average_protein_per_dollar"`
		AverageCaloriesPerDollar float64      `json:"average_calories_per_dollar"`
		MostEfficientProtein     NamedValue   `json:"most_efficient_protein"`
		MostEfficientCalories    NamedValue   `json:"most_efficient_calories"`
		BestNutrientDensity      NamedValue   `json:"best_nutrient_density"`
		AveragePrice             float64      `json:"average_price"`
		TopProteinFoods          []NamedValue `json:"top_protein_foods"`
		TopCalorieFoods          []NamedValue `json:"top_calorie_foods"`
		AverageMacros            MacroSplit   `json:"average_macros"`
	}
)
