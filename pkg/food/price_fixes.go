package food

import (
	"context"
	"sort"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
)

// DefaultPrices are realistic shelf prices for foods seeded by the USDA import,
// which creates every food at a placeholder price.
var DefaultPrices = map[string]float64{
	// Proteins
	"Chicken breast, raw":     3.99,
	"Salmon, Atlantic, raw":   12.99,
	"Ground beef, 80/20, raw": 4.99,
	"Tofu, firm":              2.99,
	"Pork chop, raw":          4.99,
	"Tuna, canned in water":   1.99,
	"Ribeye steak, raw":       15.99,
	"Turkey breast, raw":      4.99,
	"Lamb chop, raw":          12.99,
	"Duck breast, raw":        9.99,
	"Bison, ground, raw":      8.99,
	"Chicken thigh, raw":      2.99,
	"Pork tenderloin, raw":    5.99,

	// Eggs and dairy
	"Egg, whole, raw":     0.33,
	"Greek yogurt, plain": 3.99,
	"Milk, whole":         3.49,
	"Cheese, cheddar":     5.99,
	"Cottage cheese, 2%":  3.99,

	// Grains
	"White rice, cooked":   0.99,
	"Oatmeal, plain":       2.99,
	"Bread, whole wheat":   3.49,
	"Quinoa, cooked":       4.99,
	"Pasta, wheat, cooked": 1.99,

	// Vegetables
	"Broccoli, raw":     2.49,
	"Sweet potato, raw": 1.49,
	"Carrots, raw":      1.29,
	"Bell pepper, red":  0.99,
	"Avocado":           1.49,
	"Cauliflower, raw":  2.99,
	"Kale, raw":         2.49,

	// Fruits
	"Banana, raw":       0.29,
	"Apple, raw":        0.79,
	"Orange, raw":       0.69,
	"Blueberries, raw":  3.99,
	"Strawberries, raw": 3.49,

	// Legumes
	"Black beans, cooked": 1.29,
	"Chickpeas, cooked":   1.49,
	"Lentils, cooked":     1.99,

	// Nuts and seeds
	"Almonds":       7.99,
	"Peanut butter": 3.99,
	"Chia seeds":    6.99,

	// Other
	"Olive oil": 8.99,
	"Honey":     4.99,
}

// FixPrices sets the listed price on every food matched by name and commits all
// changes together.
func (s *foodService) FixPrices(ctx context.Context, prices map[string]float64) (domain.PriceFixSummary, error) {
	summary := domain.PriceFixSummary{Updated: []string{}}

	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return summary, err
	}

	var updated []*entities.FoodItem
	for _, item := range foodItems {
		price, ok := prices[item.Name]
		if !ok {
			continue
		}
		item.Price = price
		if err := applyPricePerUnit(item); err != nil {
			return domain.PriceFixSummary{Updated: []string{}}, err
		}
		updated = append(updated, item)
		summary.Updated = append(summary.Updated, item.Name)
	}

	if len(updated) == 0 {
		return summary, nil
	}
	if err := s.foodRepository.SaveFoodItems(ctx, nil, updated); err != nil {
		return domain.PriceFixSummary{Updated: []string{}}, err
	}

	sort.Strings(summary.Updated)
	return summary, nil
}
