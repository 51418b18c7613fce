package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrUSDAFetchFailed      = errors.New("usda fetch failed")
	ErrUSDAMissingAPIKey    = errors.New("USDA_API_KEY is not configured")
	ErrImportNothingFetched = errors.New("no food could be fetched from USDA")
)

type (
	// USDAFood mirrors the FoodData Central /v1/food/{fdcId} payload fields the importer reads.
	USDAFood struct {
		FdcID           int                `json:"fdcId"`
		Description     string             `json:"description"`
		FoodNutrients   []USDAFoodNutrient `json:"foodNutrients"`
		FoodPortions    []USDAFoodPortion  `json:"foodPortions"`
		ServingSize     float64            `json:"servingSize"`
		ServingSizeUnit string             `json:"servingSizeUnit"`

		Raw json.RawMessage `json:"-"`
	}

	USDAFoodNutrient struct {
		Amount   float64      `json:"amount"`
		Nutrient USDANutrient `json:"nutrient"`
	}

	USDANutrient struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	}

	USDAFoodPortion struct {
		GramWeight float64 `json:"gramWeight"`
	}

	CatalogEntry struct {
		Name  string
		FdcID string
	}

	ImportedFood struct {
		Name              string
		FdcID             string
		Calories          float64
		Protein           float64
		Carbohydrates     float64
		Fats              float64
		Fiber             float64
		Sugar             float64
		SourceServingSize float64
	}

	ImportSummary struct {
		RunID     string        `json:"run_id"`
		Requested int           `json:"requested"`
		Fetched   int           `json:"fetched"`
		Failed    []string      `json:"failed"`
		Created   []string      `json:"created"`
		Updated   []string      `json:"updated"`
		Unchanged int           `json:"unchanged"`
		Duration  time.Duration `json:"duration"`
	}

	PriceFixSummary struct {
		Updated []string `json:"updated"`
	}

	FoodIssue struct {
		Name          string   `json:"name"`
		Calories      float64  `json:"calories"`
		Protein       float64  `json:"protein"`
		Carbohydrates float64  `json:"carbohydrates"`
		Fats          float64  `json:"fats"`
		Fiber         float64  `json:"fiber"`
		Issues        []string `json:"issues"`
	}
)
