package usda

import (
	"context"
	"fmt"
	"time"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
	"nutrition-tracker/pkg/food"
	"nutrition-tracker/pkg/nutrition"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency    = 10
	DefaultRequestTimeout = 30 * time.Second

	// Defaults for foods first seen through an import.
	defaultBrand = "Generic"
	defaultStore = "Local Grocery"
	defaultPrice = 5.00
)

type (
	Importer interface {
		Import(ctx context.Context, catalog []domain.CatalogEntry) (domain.ImportSummary, error)
	}

	// PayloadArchive keeps the raw FoodData Central response of a run and
	// returns where it was stored.
	PayloadArchive interface {
		Archive(ctx context.Context, runID, fdcID string, payload []byte) (string, error)
	}

	ImporterConfig struct {
		Concurrency    int
		RequestTimeout time.Duration
	}

	importer struct {
		fetcher        Fetcher
		foodRepository food.FoodRepository
		archive        PayloadArchive
		cfg            ImporterConfig
		log            *zap.Logger
	}

	fetchResult struct {
		food domain.ImportedFood
		ok   bool
	}
)

// NewImporter wires an importer. archive may be nil.
func NewImporter(fetcher Fetcher, foodRepository food.FoodRepository, archive PayloadArchive, cfg ImporterConfig, log *zap.Logger) Importer {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &importer{
		fetcher:        fetcher,
		foodRepository: foodRepository,
		archive:        archive,
		cfg:            cfg,
		log:            log,
	}
}

func (i *importer) Import(ctx context.Context, catalog []domain.CatalogEntry) (domain.ImportSummary, error) {
	start := time.Now()
	summary := domain.ImportSummary{
		RunID:     uuid.NewString(),
		Requested: len(catalog),
		Failed:    []string{},
		Created:   []string{},
		Updated:   []string{},
	}
	log := i.log.With(zap.String("run_id", summary.RunID))

	results := i.fetchAll(ctx, summary.RunID, catalog, log)

	existing, err := i.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load existing foods: %w", err)
	}
	byName := make(map[string]*entities.FoodItem, len(existing))
	for _, item := range existing {
		byName[item.Name] = item
	}

	var created, updated []*entities.FoodItem
	for idx, res := range results {
		if !res.ok {
			summary.Failed = append(summary.Failed, catalog[idx].Name)
			continue
		}
		summary.Fetched++

		if item, found := byName[res.food.Name]; found {
			if MergeMissing(item, res.food) {
				updated = append(updated, item)
				summary.Updated = append(summary.Updated, item.Name)
			} else {
				summary.Unchanged++
			}
			continue
		}

		item := NewFoodItem(res.food)
		byName[item.Name] = item
		created = append(created, item)
		summary.Created = append(summary.Created, item.Name)
	}

	if summary.Requested > 0 && summary.Fetched == 0 {
		summary.Duration = time.Since(start)
		return summary, domain.ErrImportNothingFetched
	}

	if len(created) > 0 || len(updated) > 0 {
		if err := i.foodRepository.SaveFoodItems(ctx, created, updated); err != nil {
			summary.Duration = time.Since(start)
			return summary, fmt.Errorf("failed to save imported foods: %w", err)
		}
	}

	summary.Duration = time.Since(start)
	log.Info("usda import finished",
		zap.Int("requested", summary.Requested),
		zap.Int("fetched", summary.Fetched),
		zap.Int("created", len(summary.Created)),
		zap.Int("updated", len(summary.Updated)),
		zap.Int("failed", len(summary.Failed)),
		zap.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// fetchAll fetches every entry with at most cfg.Concurrency requests in flight.
// Results keep catalog order. A failed entry is logged and left as not ok.
func (i *importer) fetchAll(ctx context.Context, runID string, catalog []domain.CatalogEntry, log *zap.Logger) []fetchResult {
	results := make([]fetchResult, len(catalog))

	var g errgroup.Group
	g.SetLimit(i.cfg.Concurrency)

	for idx, entry := range catalog {
		g.Go(func() error {
			reqCtx, cancel := context.WithTimeout(ctx, i.cfg.RequestTimeout)
			defer cancel()

			usdaFood, err := i.fetcher.FetchFood(reqCtx, entry.FdcID)
			if err != nil {
				log.Warn("failed to fetch food",
					zap.String("name", entry.Name),
					zap.String("fdc_id", entry.FdcID),
					zap.Error(err),
				)
				return nil
			}

			imported := NormalizeFood(entry, usdaFood)
			fields := []zap.Field{
				zap.String("name", entry.Name),
				zap.String("fdc_id", entry.FdcID),
				// stored rows stay per 100 g; the source portion is informational
				zap.Float64("source_serving_size", imported.SourceServingSize),
			}

			if i.archive != nil && len(usdaFood.Raw) > 0 {
				location, err := i.archive.Archive(reqCtx, runID, entry.FdcID, usdaFood.Raw)
				if err != nil {
					log.Warn("failed to archive payload", zap.String("fdc_id", entry.FdcID), zap.Error(err))
				} else {
					fields = append(fields, zap.String("archive", location))
				}
			}

			log.Debug("fetched food", fields...)
			results[idx] = fetchResult{food: imported, ok: true}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// NewFoodItem builds a stored food from an imported record using the catalog defaults.
func NewFoodItem(imported domain.ImportedFood) *entities.FoodItem {
	brand, store := defaultBrand, defaultStore
	fiber, sugar := imported.Fiber, imported.Sugar
	return &entities.FoodItem{
		Name:          imported.Name,
		Brand:         &brand,
		ServingSize:   nutrition.ReferenceServing,
		Calories:      imported.Calories,
		Protein:       imported.Protein,
		Carbohydrates: imported.Carbohydrates,
		Fats:          imported.Fats,
		Fiber:         &fiber,
		Sugar:         &sugar,
		Price:         defaultPrice,
		PricePerUnit:  nutrition.PriceUnit(defaultPrice, nutrition.ReferenceServing),
		Store:         &store,
	}
}

// MergeMissing fills nutrient fields that are unknown or zero on item with
// non-zero imported values. Recorded values are never overwritten.
func MergeMissing(item *entities.FoodItem, imported domain.ImportedFood) bool {
	changed := false
	fill := func(field *float64, v float64) {
		if *field == 0 && v != 0 {
			*field = v
			changed = true
		}
	}
	fillOptional := func(field **float64, v float64) {
		if (*field == nil || **field == 0) && v != 0 {
			val := v
			*field = &val
			changed = true
		}
	}

	fillOptional(&item.Sugar, imported.Sugar)
	fillOptional(&item.Fiber, imported.Fiber)
	fill(&item.Protein, imported.Protein)
	fill(&item.Carbohydrates, imported.Carbohydrates)
	fill(&item.Fats, imported.Fats)
	fill(&item.Calories, imported.Calories)

	return changed
}
