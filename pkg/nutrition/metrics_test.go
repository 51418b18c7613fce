package nutrition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestPriceUnit(t *testing.T) {
	assert.InDelta(t, 2.8637, PriceUnit(12.99, 453.6), 0.0001)
	assert.InDelta(t, 2.2046, PriceUnit(10.00, 453.6), 0.0001)
	assert.InDelta(t, 5.0, PriceUnit(5, 100), 1e-9)
	assert.Equal(t, 12.5/250*100, PriceUnit(12.5, 250))
}

func TestPerDollar(t *testing.T) {
	assert.Equal(t, 0.0, CaloriesPerDollar(250, 0))
	assert.Equal(t, 0.0, ProteinPerDollar(31, 0))
	assert.Equal(t, 50.0, CaloriesPerDollar(250, 5))
	assert.InDelta(t, 7.769, ProteinPerDollar(31, 3.99), 0.001)
}

func TestFiberToSugarRatio(t *testing.T) {
	assert.Nil(t, FiberToSugarRatio(nil, ptr(5)))
	assert.Nil(t, FiberToSugarRatio(ptr(3), nil))

	zero := FiberToSugarRatio(ptr(0), ptr(0))
	require.NotNil(t, zero)
	assert.False(t, zero.Infinite)
	assert.Equal(t, 0.0, zero.Value)

	inf := FiberToSugarRatio(ptr(3), ptr(0))
	require.NotNil(t, inf)
	assert.True(t, inf.Infinite)

	two := FiberToSugarRatio(ptr(4), ptr(2))
	require.NotNil(t, two)
	assert.Equal(t, Ratio{Value: 2}, *two)
}

func TestRatioJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A *Ratio `json:"a"`
		B *Ratio `json:"b"`
		C *Ratio `json:"c"`
	}{A: &Ratio{Infinite: true}, B: &Ratio{Value: 1.5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"Infinity","b":1.5,"c":null}`, string(out))
}

func TestMealPlanTotals(t *testing.T) {
	totals := MealPlanTotals([]Portion{
		{Calories: 165, Protein: 31, Carbohydrates: 0, Fats: 3.6, Quantity: 2},
		{Calories: 89, Protein: 1.1, Carbohydrates: 22.8, Fats: 0.3, Fiber: ptr(2.6), Sugar: ptr(12.2), Quantity: 1},
	})

	assert.InDelta(t, 419, totals.Calories, 1e-9)
	assert.InDelta(t, 63.1, totals.Protein, 1e-9)
	assert.InDelta(t, 22.8, totals.Carbs, 1e-9)
	assert.InDelta(t, 7.5, totals.Fats, 1e-9)
	assert.InDelta(t, 2.6, totals.Fiber, 1e-9)
	assert.InDelta(t, 12.2, totals.Sugar, 1e-9)
}

func TestMealPlanTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, MealPlanTotals(nil))
}

func TestNutrientDensity(t *testing.T) {
	assert.InDelta(t, (31.0+0)/165, NutrientDensity(31, nil, 165), 1e-9)
	assert.Equal(t, 3.0, NutrientDensity(1, ptr(2), 0))
}
