package routes

import (
	"nutrition-tracker/internal/api/handlers"
	"nutrition-tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	FoodHandler     handlers.FoodHandler
	MealPlanHandler handlers.MealPlanHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.FoodItems()
	c.MealPlans()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	// registered before /:id so "metrics" is not read as an id
	foodItems.Get("/metrics", c.FoodHandler.GetFoodMetrics)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans")

	mealPlans.Post("", c.MealPlanHandler.CreateMealPlan)
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Get("/:id", c.MealPlanHandler.GetMealPlanDetails)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
}
