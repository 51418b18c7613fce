package nutrition

import (
	"strings"
)

const kilojoulesPerKilocalorie = 4.184

// Canonical nutrient names understood by ExtractNutrient.
const (
	Protein      = "Protein"
	Carbohydrate = "Carbohydrate"
	Fat          = "Total lipid (fat)"
	Fiber        = "Fiber"
	Sugar        = "Sugar"
)

var sourceLabels = map[string][]string{
	Protein:      {"Protein"},
	Carbohydrate: {"Carbohydrate, by difference"},
	Fat:          {"Total lipid (fat)"},
	Fiber:        {"Fiber, total dietary"},
	Sugar:        {"Total Sugars", "Sugars, Total"},
}

// Nutrient is one name/amount/unit entry of a third-party payload.
type Nutrient struct {
	Name   string
	Amount float64
	Unit   string
}

// ServingInfo is the serving metadata a third-party payload may carry.
type ServingInfo struct {
	PortionGramWeights []float64
	ServingSize        float64
	ServingSizeUnit    string
}

// Record is a canonical per-100g nutrient record.
type Record struct {
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fats          float64
	Fiber         float64
	Sugar         float64
}

// ExtractNutrient returns the amount of the first entry whose label maps to
// canonicalName, or 0. Unknown canonical names match themselves.
func ExtractNutrient(nutrients []Nutrient, canonicalName string) float64 {
	labels, ok := sourceLabels[canonicalName]
	if !ok {
		labels = []string{canonicalName}
	}
	for _, n := range nutrients {
		for _, label := range labels {
			if n.Name == label {
				return n.Amount
			}
		}
	}
	return 0
}

// ExtractEnergy prefers kcal entries and falls back to kJ converted to kcal.
func ExtractEnergy(nutrients []Nutrient) float64 {
	if v, ok := findEnergy(nutrients, "KCAL"); ok {
		return v
	}
	if v, ok := findEnergy(nutrients, "kJ"); ok {
		return v / kilojoulesPerKilocalorie
	}
	return 0
}

func findEnergy(nutrients []Nutrient, unit string) (float64, bool) {
	for _, n := range nutrients {
		if strings.Contains(n.Name, "Energy") && strings.EqualFold(n.Unit, unit) {
			return n.Amount, true
		}
	}
	return 0, false
}

// ExtractServingSize returns a serving size in grams. Milliliters count as grams.
func ExtractServingSize(info ServingInfo) float64 {
	for _, w := range info.PortionGramWeights {
		if w > 0 {
			return w
		}
	}
	if info.ServingSize > 0 {
		switch strings.ToUpper(info.ServingSizeUnit) {
		case "G", "GRM", "ML", "MLT":
			return info.ServingSize
		}
	}
	return ReferenceServing
}

// NormalizeMagnitude divides every value by ten when any macro exceeds what
// 100 g can physically hold, which is how per-kilogram source rows show up.
// Genuinely bad data gets rescaled too.
func NormalizeMagnitude(r Record) Record {
	if r.Calories > 900 || r.Protein > 100 || r.Carbohydrates > 100 || r.Fats > 100 {
		return Record{
			Calories:      r.Calories / 10,
			Protein:       r.Protein / 10,
			Carbohydrates: r.Carbohydrates / 10,
			Fats:          r.Fats / 10,
			Fiber:         r.Fiber / 10,
			Sugar:         r.Sugar / 10,
		}
	}
	return r
}

// Normalize builds the canonical record from a nutrient list.
func Normalize(nutrients []Nutrient) Record {
	return NormalizeMagnitude(Record{
		Calories:      ExtractEnergy(nutrients),
		Protein:       ExtractNutrient(nutrients, Protein),
		Carbohydrates: ExtractNutrient(nutrients, Carbohydrate),
		Fats:          ExtractNutrient(nutrients, Fat),
		Fiber:         ExtractNutrient(nutrients, Fiber),
		Sugar:         ExtractNutrient(nutrients, Sugar),
	})
}
