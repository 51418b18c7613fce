package main

import (
	"context"
	"fmt"
	"os"

	"nutrition-tracker/cmd/config"
	"nutrition-tracker/internal/logger"
	"nutrition-tracker/pkg/food"

	"go.uber.org/zap"
)

func main() {
	db := config.Bootstrap()
	defer logger.Sync()

	svc := food.NewFoodService(food.NewFoodRepository(db))
	summary, err := svc.FixPrices(context.Background(), food.DefaultPrices)
	if err != nil {
		logger.L().Error("price fix rolled back", zap.Error(err))
		os.Exit(1)
	}

	for _, name := range summary.Updated {
		fmt.Printf("Updated %s: $%.2f\n", name, food.DefaultPrices[name])
	}
	fmt.Printf("\nSuccessfully updated %d food prices\n", len(summary.Updated))
}
