package usda

import "nutrition-tracker/domain"

// DefaultCatalog lists the common foods seeded from FoodData Central.
var DefaultCatalog = []domain.CatalogEntry{
	// Proteins
	{Name: "Chicken breast, raw", FdcID: "171077"},
	{Name: "Salmon, Atlantic, raw", FdcID: "175139"},
	{Name: "Ground beef, 80/20, raw", FdcID: "174036"},
	{Name: "Tofu, firm", FdcID: "172451"},
	{Name: "Pork chop, raw", FdcID: "167760"},
	{Name: "Tuna, canned in water", FdcID: "172468"},
	{Name: "Ribeye steak, raw", FdcID: "168621"},
	{Name: "Turkey breast, raw", FdcID: "171507"},
	{Name: "Lamb chop, raw", FdcID: "174374"},
	{Name: "Duck breast, raw", FdcID: "172405"},
	{Name: "Bison, ground, raw", FdcID: "174791"},
	{Name: "Chicken thigh, raw", FdcID: "171068"},
	{Name: "Pork tenderloin, raw", FdcID: "168376"},

	// Eggs and dairy
	{Name: "Egg, whole, raw", FdcID: "171287"},
	{Name: "Greek yogurt, plain", FdcID: "171284"},
	{Name: "Milk, whole", FdcID: "746779"},
	{Name: "Cheese, cheddar", FdcID: "173414"},
	{Name: "Cottage cheese, 2%", FdcID: "173420"},
	{Name: "Yogurt, fruit flavored", FdcID: "170889"},
	{Name: "Ice cream, vanilla", FdcID: "173591"},

	// Grains
	{Name: "White rice, cooked", FdcID: "169756"},
	{Name: "Oatmeal, plain", FdcID: "173904"},
	{Name: "Bread, whole wheat", FdcID: "172686"},
	{Name: "Quinoa, cooked", FdcID: "168917"},
	{Name: "Pasta, wheat, cooked", FdcID: "168928"},
	{Name: "Cereal, corn flakes", FdcID: "173845"},
	{Name: "Granola", FdcID: "173987"},

	// Vegetables
	{Name: "Broccoli, raw", FdcID: "170379"},
	{Name: "Sweet potato, raw", FdcID: "168482"},
	{Name: "Spinach, raw", FdcID: "168462"},
	{Name: "Carrots, raw", FdcID: "170393"},
	{Name: "Bell pepper, red", FdcID: "168478"},
	{Name: "Avocado", FdcID: "171705"},
	{Name: "Cauliflower, raw", FdcID: "169986"},
	{Name: "Kale, raw", FdcID: "169975"},
	{Name: "Corn, sweet, cooked", FdcID: "169998"},

	// Fruits
	{Name: "Banana, raw", FdcID: "173944"},
	{Name: "Apple, raw", FdcID: "171688"},
	{Name: "Orange, raw", FdcID: "169097"},
	{Name: "Blueberries, raw", FdcID: "171711"},
	{Name: "Strawberries, raw", FdcID: "167762"},
	{Name: "Mango, raw", FdcID: "169910"},
	{Name: "Grapes, red", FdcID: "174682"},
	{Name: "Pineapple, raw", FdcID: "169124"},
	{Name: "Watermelon", FdcID: "167765"},

	// Legumes
	{Name: "Black beans, cooked", FdcID: "172387"},
	{Name: "Chickpeas, cooked", FdcID: "173756"},
	{Name: "Lentils, cooked", FdcID: "172420"},

	// Nuts and seeds
	{Name: "Almonds", FdcID: "170567"},
	{Name: "Peanut butter", FdcID: "172470"},
	{Name: "Chia seeds", FdcID: "170554"},

	// Other
	{Name: "Olive oil", FdcID: "171413"},
	{Name: "Honey", FdcID: "169640"},
	{Name: "Maple syrup", FdcID: "169661"},
	{Name: "Chocolate, dark", FdcID: "170272"},
	{Name: "Raisins", FdcID: "168165"},
}
