package usda

import (
	"context"
	"fmt"

	"nutrition-tracker/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewImportScheduler registers a recurring import on spec. The caller starts and stops the returned cron.
func NewImportScheduler(imp Importer, catalog []domain.CatalogEntry, spec string, log *zap.Logger) (*cron.Cron, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		summary, err := imp.Import(context.Background(), catalog)
		if err != nil {
			log.Error("scheduled usda import failed", zap.String("run_id", summary.RunID), zap.Error(err))
			return
		}
		log.Info("scheduled usda import done",
			zap.String("run_id", summary.RunID),
			zap.Int("created", len(summary.Created)),
			zap.Int("updated", len(summary.Updated)),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid import schedule %q: %w", spec, err)
	}
	return c, nil
}
