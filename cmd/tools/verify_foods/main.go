package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"nutrition-tracker/cmd/config"
	"nutrition-tracker/internal/logger"
	"nutrition-tracker/internal/utils/mailing"
	"nutrition-tracker/pkg/food"

	"go.uber.org/zap"
)

func main() {
	mail := flag.Bool("mail", false, "mail the report to REPORT_EMAIL")
	flag.Parse()

	db := config.Bootstrap()
	defer logger.Sync()

	svc := food.NewFoodService(food.NewFoodRepository(db))
	report, err := svc.VerifyFoods(context.Background())
	if err != nil {
		logger.L().Error("failed to verify foods", zap.Error(err))
		os.Exit(1)
	}

	out := food.FormatReport(report)
	fmt.Print(out)

	if *mail {
		if err := mailing.SendReport("Food data verification", out); err != nil {
			logger.L().Error("failed to mail verification report", zap.Error(err))
			os.Exit(1)
		}
	}
}
