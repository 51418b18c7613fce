package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nutrition-tracker/domain"
	"nutrition-tracker/pkg/nutrition"
)

const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

type (
	// Fetcher retrieves one FoodData Central record by FDC id.
	Fetcher interface {
		FetchFood(ctx context.Context, fdcID string) (*domain.USDAFood, error)
	}

	usdaClient struct {
		apiKey     string
		baseURL    string
		httpClient *http.Client
	}
)

func NewUSDAClient(apiKey, baseURL string, timeout time.Duration) Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &usdaClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *usdaClient) FetchFood(ctx context.Context, fdcID string) (*domain.USDAFood, error) {
	if c.apiKey == "" {
		return nil, domain.ErrUSDAMissingAPIKey
	}

	reqURL := fmt.Sprintf("%s/food/%s?api_key=%s", c.baseURL, url.PathEscape(fdcID), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUSDAFetchFailed, resp.StatusCode, string(body))
	}

	var food domain.USDAFood
	if err := json.Unmarshal(body, &food); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}
	food.Raw = body
	return &food, nil
}

// NormalizeFood maps a FoodData Central payload onto the canonical per-100g record.
func NormalizeFood(entry domain.CatalogEntry, food *domain.USDAFood) domain.ImportedFood {
	nutrients := make([]nutrition.Nutrient, 0, len(food.FoodNutrients))
	for _, n := range food.FoodNutrients {
		nutrients = append(nutrients, nutrition.Nutrient{
			Name:   n.Nutrient.Name,
			Amount: n.Amount,
			Unit:   n.Nutrient.UnitName,
		})
	}

	weights := make([]float64, 0, len(food.FoodPortions))
	for _, p := range food.FoodPortions {
		weights = append(weights, p.GramWeight)
	}

	record := nutrition.Normalize(nutrients)
	return domain.ImportedFood{
		Name:          entry.Name,
		FdcID:         entry.FdcID,
		Calories:      record.Calories,
		Protein:       record.Protein,
		Carbohydrates: record.Carbohydrates,
		Fats:          record.Fats,
		Fiber:         record.Fiber,
		Sugar:         record.Sugar,
		SourceServingSize: nutrition.ExtractServingSize(nutrition.ServingInfo{
			PortionGramWeights: weights,
			ServingSize:        food.ServingSize,
			ServingSizeUnit:    food.ServingSizeUnit,
		}),
	}
}
