package config

import (
	"context"
	"time"

	"nutrition-tracker/internal/logger"
	"nutrition-tracker/internal/utils"
	"nutrition-tracker/internal/utils/storage"
	"nutrition-tracker/pkg/food"
	"nutrition-tracker/pkg/usda"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewUSDAImporter wires the importer from config. Raw payloads are archived
// only when AWS_S3_BUCKET is set.
func NewUSDAImporter(ctx context.Context, db *gorm.DB) usda.Importer {
	timeout := time.Duration(utils.GetConfigInt("USDA_REQUEST_TIMEOUT_SECONDS", int(usda.DefaultRequestTimeout/time.Second))) * time.Second

	fetcher := usda.NewUSDAClient(
		utils.GetConfig("USDA_API_KEY"),
		utils.GetConfigOrDefault("USDA_BASE_URL", usda.DefaultBaseURL),
		timeout,
	)

	var archive usda.PayloadArchive
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		s3, err := storage.NewAwsS3(ctx)
		if err != nil {
			logger.L().Warn("payload archive disabled", zap.Error(err))
		} else {
			archive = usda.NewS3Archive(s3)
		}
	}

	return usda.NewImporter(fetcher, food.NewFoodRepository(db), archive, usda.ImporterConfig{
		Concurrency:    utils.GetConfigInt("USDA_IMPORT_CONCURRENCY", usda.DefaultConcurrency),
		RequestTimeout: timeout,
	}, logger.L())
}

// NewImportScheduler returns nil when USDA_IMPORT_CRON is unset.
func NewImportScheduler(ctx context.Context, db *gorm.DB) (*cron.Cron, error) {
	spec := utils.GetConfig("USDA_IMPORT_CRON")
	if spec == "" {
		return nil, nil
	}
	return usda.NewImportScheduler(NewUSDAImporter(ctx, db), usda.DefaultCatalog, spec, logger.L())
}
