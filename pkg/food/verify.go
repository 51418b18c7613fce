package food

import (
	"context"
	"fmt"
	"math"
	"strings"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
)

// Plausible per-100g ranges.
const (
	maxCalories        = 900
	maxMacroGrams      = 100
	maxFiberGrams      = 50
	calorieTolerance   = 20
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

func (s *foodService) VerifyFoods(ctx context.Context) ([]domain.FoodIssue, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]domain.FoodIssue, 0, len(foodItems))
	for _, item := range foodItems {
		report = append(report, domain.FoodIssue{
			Name:          item.Name,
			Calories:      item.Calories,
			Protein:       item.Protein,
			Carbohydrates: item.Carbohydrates,
			Fats:          item.Fats,
			Fiber:         derefOrZero(item.Fiber),
			Issues:        CheckFood(item),
		})
	}
	return report, nil
}

// CheckFood lists every sanity rule the food breaks. Unknown fiber counts as zero.
func CheckFood(item *entities.FoodItem) []string {
	issues := []string{}
	fiber := derefOrZero(item.Fiber)

	if !within(item.Calories, maxCalories) {
		issues = append(issues, fmt.Sprintf("Unusual calories: %.1f", item.Calories))
	}
	if !within(item.Protein, maxMacroGrams) {
		issues = append(issues, fmt.Sprintf("Unusual protein: %.1fg", item.Protein))
	}
	if !within(item.Carbohydrates, maxMacroGrams) {
		issues = append(issues, fmt.Sprintf("Unusual carbs: %.1fg", item.Carbohydrates))
	}
	if !within(item.Fats, maxMacroGrams) {
		issues = append(issues, fmt.Sprintf("Unusual fats: %.1fg", item.Fats))
	}
	if !within(fiber, maxFiberGrams) {
		issues = append(issues, fmt.Sprintf("Unusual fiber: %.1fg", fiber))
	}

	if sum := item.Protein + item.Carbohydrates + item.Fats; sum > maxMacroGrams {
		issues = append(issues, fmt.Sprintf("High macro sum: %.1fg", sum))
	}

	calculated := item.Protein*kcalPerGramProtein + item.Carbohydrates*kcalPerGramCarbs + item.Fats*kcalPerGramFat
	if math.Abs(calculated-item.Calories) > calorieTolerance {
		issues = append(issues, fmt.Sprintf("Calorie mismatch: reported=%.1f, calculated=%.1f", item.Calories, calculated))
	}

	return issues
}

func within(v, limit float64) bool {
	return v >= 0 && v <= limit
}

// FormatReport renders the verification report as a fixed-width table.
func FormatReport(report []domain.FoodIssue) string {
	var b strings.Builder
	rule := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "\nVerifying %d foods:\n%s\n", len(report), rule)
	fmt.Fprintf(&b, "%-30s %-8s %-8s %-8s %-8s %-8s\n", "Name", "Cal", "Pro", "Carb", "Fat", "Fiber")
	fmt.Fprintf(&b, "%s\n", rule)

	for _, r := range report {
		fmt.Fprintf(&b, "%-30s %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f\n",
			r.Name, r.Calories, r.Protein, r.Carbohydrates, r.Fats, r.Fiber)
		if len(r.Issues) > 0 {
			fmt.Fprintf(&b, "  !! %s\n\n", strings.Join(r.Issues, ", "))
		}
	}
	return b.String()
}
