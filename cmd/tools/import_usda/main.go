package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"nutrition-tracker/cmd/config"
	"nutrition-tracker/internal/logger"
	"nutrition-tracker/internal/utils/mailing"
	"nutrition-tracker/pkg/usda"

	"go.uber.org/zap"
)

func main() {
	mail := flag.Bool("mail", false, "mail the import summary to REPORT_EMAIL")
	flag.Parse()

	db := config.Bootstrap()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Importing %d foods from USDA FoodData Central...\n", len(usda.DefaultCatalog))

	summary, err := config.NewUSDAImporter(ctx, db).Import(ctx, usda.DefaultCatalog)
	report := usda.FormatSummary(summary)
	fmt.Print(report)
	if err != nil {
		logger.L().Error("usda import failed", zap.String("run_id", summary.RunID), zap.Error(err))
		os.Exit(1)
	}

	if *mail {
		if err := mailing.SendReport("USDA import "+summary.RunID, report); err != nil {
			logger.L().Error("failed to mail import summary", zap.Error(err))
			os.Exit(1)
		}
	}
}
