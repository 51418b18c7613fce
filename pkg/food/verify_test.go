package food

import (
	"context"
	"testing"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFoodClean(t *testing.T) {
	chicken := &entities.FoodItem{Name: "Chicken", Calories: 120, Protein: 22.5, Fats: 2.6}
	assert.Empty(t, CheckFood(chicken))
}

func TestCheckFoodFlagsProblems(t *testing.T) {
	inflated := &entities.FoodItem{Name: "Inflated", Calories: 1650, Protein: 310, Fiber: f64(60)}
	issues := CheckFood(inflated)

	assert.Contains(t, issues, "Unusual calories: 1650.0")
	assert.Contains(t, issues, "Unusual protein: 310.0g")
	assert.Contains(t, issues, "Unusual fiber: 60.0g")
	assert.Contains(t, issues, "High macro sum: 310.0g")
	assert.Contains(t, issues, "Calorie mismatch: reported=1650.0, calculated=1240.0")
}

func TestCheckFoodNilFiber(t *testing.T) {
	oil := &entities.FoodItem{Name: "Olive oil", Calories: 884, Fats: 100}
	assert.Empty(t, CheckFood(oil), "884 kcal is within tolerance of 9 kcal/g fat")
}

func TestVerifyFoodsAndReport(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveFoodItems(ctx, []*entities.FoodItem{
		{Name: "Chicken", ServingSize: 100, Calories: 120, Protein: 22.5, Fats: 2.6, Price: 4, PricePerUnit: 4},
		{Name: "Broken", ServingSize: 100, Calories: 2000, Price: 4, PricePerUnit: 4},
	}, nil))

	report, err := svc.VerifyFoods(ctx)
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Empty(t, report[0].Issues)
	assert.NotEmpty(t, report[1].Issues)

	out := FormatReport(report)
	assert.Contains(t, out, "Verifying 2 foods:")
	assert.Contains(t, out, "Unusual calories: 2000.0")
	assert.NotContains(t, FormatReport([]domain.FoodIssue{{Name: "Chicken"}}), "!!")
}
