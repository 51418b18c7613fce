package nutrition

import (
	"encoding/json"
)

// ReferenceServing is the gram/mL basis every stored nutrient and price_per_unit refers to.
const ReferenceServing = 100.0

// infinityLiteral is how an unbounded ratio is rendered in JSON.
const infinityLiteral = "Infinity"

// Ratio is a non-negative ratio that may be unbounded.
type Ratio struct {
	Value    float64
	Infinite bool
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Infinite {
		return json.Marshal(infinityLiteral)
	}
	return json.Marshal(r.Value)
}

// PriceUnit normalizes a package price to the cost of one reference serving.
// servingSize must be positive; callers validate it first.
func PriceUnit(price, servingSize float64) float64 {
	return (price / servingSize) * ReferenceServing
}

func CaloriesPerDollar(calories, price float64) float64 {
	return perDollar(calories, price)
}

func ProteinPerDollar(protein, price float64) float64 {
	return perDollar(protein, price)
}

func perDollar(amount, price float64) float64 {
	if price > 0 {
		return amount / price
	}
	return 0
}

// FiberToSugarRatio returns nil when either value was not recorded.
func FiberToSugarRatio(fiber, sugar *float64) *Ratio {
	if fiber == nil || sugar == nil {
		return nil
	}
	if *sugar == 0 {
		if *fiber > 0 {
			return &Ratio{Infinite: true}
		}
		return &Ratio{}
	}
	return &Ratio{Value: *fiber / *sugar}
}

// Portion is one food contributing to a meal plan. Quantity counts reference servings.
type Portion struct {
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fats          float64
	Fiber         *float64
	Sugar         *float64
	Quantity      float64
}

type Totals struct {
	Calories float64 `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Carbs    float64 `json:"total_carbs"`
	Fats     float64 `json:"total_fats"`
	Fiber    float64 `json:"total_fiber"`
	Sugar    float64 `json:"total_sugar"`
}

// MealPlanTotals sums nutrients weighted by quantity. Unknown fiber or sugar counts as zero.
func MealPlanTotals(portions []Portion) Totals {
	var t Totals
	for _, p := range portions {
		t.Calories += p.Calories * p.Quantity
		t.Protein += p.Protein * p.Quantity
		t.Carbs += p.Carbohydrates * p.Quantity
		t.Fats += p.Fats * p.Quantity
		t.Fiber += valueOrZero(p.Fiber) * p.Quantity
		t.Sugar += valueOrZero(p.Sugar) * p.Quantity
	}
	return t
}

// NutrientDensity is protein plus fiber per calorie; zero calories divide by one.
func NutrientDensity(protein float64, fiber *float64, calories float64) float64 {
	if calories == 0 {
		calories = 1
	}
	return (protein + valueOrZero(fiber)) / calories
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
