package config

import (
	"os"
	"time"

	"nutrition-tracker/internal/api/handlers"
	"nutrition-tracker/internal/api/routes"
	"nutrition-tracker/internal/middleware"
	"nutrition-tracker/internal/utils"
	"nutrition-tracker/pkg/food"
	"nutrition-tracker/pkg/mealplan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_PER_SECOND", 20),
		Expiration: 1 * time.Second,
	}))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		FoodHandler:     foodHandler,
		MealPlanHandler: mealPlanHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
