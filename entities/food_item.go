package entities

// FoodItem stores nutrients per 100 g/mL reference serving. ServingSize is the
// package weight the Price was paid for.
type FoodItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"index;not null" json:"name"`
	Brand         *string  `json:"brand,omitempty"`
	ServingSize   float64  `gorm:"not null;default:100" json:"serving_size"`
	Calories      float64  `gorm:"not null" json:"calories"`
	Protein       float64  `gorm:"not null" json:"protein"`
	Carbohydrates float64  `gorm:"not null" json:"carbohydrates"`
	Fats          float64  `gorm:"not null" json:"fats"`
	Fiber         *float64 `json:"fiber"`
	Sugar         *float64 `json:"sugar"`
	Price         float64  `gorm:"not null" json:"price"`
	PricePerUnit  float64  `gorm:"not null" json:"price_per_unit"` // price per 100g
	Store         *string  `json:"store,omitempty"`

	Timestamp
}
