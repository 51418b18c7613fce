package food

import (
	"sort"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
	"nutrition-tracker/pkg/nutrition"
)

const topFoodsLimit = 5

func computeMetrics(foodItems []*entities.FoodItem) domain.FoodMetricsResponse {
	res := domain.FoodMetricsResponse{
		FoodCount:       len(foodItems),
		TopProteinFoods: []domain.NamedValue{},
		TopCalorieFoods: []domain.NamedValue{},
	}
	if len(foodItems) == 0 {
		return res
	}

	var sumProtein, sumCalories, sumPrice float64
	var macroProtein, macroCarbs, macroFats, macroFiber float64
	proteinRank := make([]domain.NamedValue, 0, len(foodItems))
	calorieRank := make([]domain.NamedValue, 0, len(foodItems))
	densityRank := make([]domain.NamedValue, 0, len(foodItems))

	for _, item := range foodItems {
		protein := nutrition.ProteinPerDollar(item.Protein, item.Price)
		calories := nutrition.CaloriesPerDollar(item.Calories, item.Price)
		sumProtein += protein
		sumCalories += calories
		sumPrice += item.Price

		macroProtein += item.Protein
		macroCarbs += item.Carbohydrates
		macroFats += item.Fats
		macroFiber += derefOrZero(item.Fiber)

		proteinRank = append(proteinRank, domain.NamedValue{Name: item.Name, Value: protein})
		calorieRank = append(calorieRank, domain.NamedValue{Name: item.Name, Value: calories})
		densityRank = append(densityRank, domain.NamedValue{
			Name:  item.Name,
			Value: nutrition.NutrientDensity(item.Protein, item.Fiber, item.Calories),
		})
	}

	n := float64(len(foodItems))
	res.AverageProteinPerDollar = sumProtein / n
	res.AverageCaloriesPerDollar = sumCalories / n
	res.AveragePrice = sumPrice / n

	sortDesc(proteinRank)
	sortDesc(calorieRank)
	sortDesc(densityRank)
	res.MostEfficientProtein = proteinRank[0]
	res.MostEfficientCalories = calorieRank[0]
	res.BestNutrientDensity = densityRank[0]
	res.TopProteinFoods = head(proteinRank, topFoodsLimit)
	res.TopCalorieFoods = head(calorieRank, topFoodsLimit)

	if total := macroProtein + macroCarbs + macroFats + macroFiber; total > 0 {
		res.AverageMacros = domain.MacroSplit{
			Protein: macroProtein / total * 100,
			Carbs:   macroCarbs / total * 100,
			Fats:    macroFats / total * 100,
			Fiber:   macroFiber / total * 100,
		}
	}

	return res
}

// sortDesc keeps catalog order among equal values.
func sortDesc(values []domain.NamedValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Value > values[j].Value
	})
}

func head(values []domain.NamedValue, n int) []domain.NamedValue {
	if len(values) < n {
		n = len(values)
	}
	out := make([]domain.NamedValue, n)
	copy(out, values[:n])
	return out
}
