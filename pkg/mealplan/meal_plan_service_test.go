package mealplan

import (
	"context"
	"testing"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
	"nutrition-tracker/internal/testutil"
	"nutrition-tracker/pkg/food"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func f64(v float64) *float64 { return &v }

type fixture struct {
	db      *gorm.DB
	svc     MealPlanService
	foodSvc food.FoodService
	chicken uint
	banana  uint
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	ctx := context.Background()
	foodSvc := food.NewFoodService(food.NewFoodRepository(db))

	chicken, err := foodSvc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Chicken breast, raw", Calories: f64(165), Protein: f64(31),
		Carbohydrates: f64(0), Fats: f64(3.6), Price: 3.99,
	})
	require.NoError(t, err)

	banana, err := foodSvc.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "Banana, raw", Calories: f64(89), Protein: f64(1.1),
		Carbohydrates: f64(22.8), Fats: f64(0.3), Fiber: f64(2.6), Sugar: f64(12.2), Price: 0.29,
	})
	require.NoError(t, err)

	return fixture{
		db:      db,
		svc:     NewMealPlanService(NewMealPlanRepository(db)),
		foodSvc: foodSvc,
		chicken: chicken.ID,
		banana:  banana.ID,
	}
}

func TestCreateMealPlanTotals(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Name: "Training day",
		Foods: []domain.MealFoodRequest{
			{FoodID: fx.chicken, Quantity: 2, MealType: "dinner"},
			{FoodID: fx.banana, MealType: "snack"},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.False(t, created.Date.IsZero())
	require.Len(t, created.Foods, 2)
	assert.Equal(t, 1.0, created.Foods[1].Quantity, "quantity defaults to one serving")
	assert.InDelta(t, 419, created.TotalCalories, 1e-9)
	assert.InDelta(t, 63.1, created.TotalProtein, 1e-9)
	assert.InDelta(t, 2.6, created.TotalFiber, 1e-9)
	assert.InDelta(t, 12.2, created.TotalSugar, 1e-9)

	fetched, err := fx.svc.GetMealPlanByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TotalCalories, fetched.TotalCalories)
	assert.Equal(t, "dinner", fetched.Foods[0].MealType)
	assert.Equal(t, "Chicken breast, raw", fetched.Foods[0].Name)
}

func TestCreateMealPlanMissingFoodIsAtomic(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Name: "Broken",
		Foods: []domain.MealFoodRequest{
			{FoodID: fx.chicken, Quantity: 1, MealType: "lunch"},
			{FoodID: 999, Quantity: 1, MealType: "lunch"},
		},
	})
	require.ErrorIs(t, err, domain.ErrFoodItemNotFound)
	assert.Contains(t, err.Error(), "999")

	var plans, links int64
	require.NoError(t, fx.db.Model(&entities.MealPlan{}).Count(&plans).Error)
	require.NoError(t, fx.db.Model(&entities.MealPlanFood{}).Count(&links).Error)
	assert.Zero(t, plans)
	assert.Zero(t, links)
}

func TestCreateMealPlanEmpty(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.svc.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{Name: "Empty"})
	assert.ErrorIs(t, err, domain.ErrEmptyMealPlan)
}

func TestTotalsFollowFoodChanges(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Name:  "Breakfast",
		Foods: []domain.MealFoodRequest{{FoodID: fx.banana, Quantity: 1, MealType: "breakfast"}},
	})
	require.NoError(t, err)

	_, err = fx.foodSvc.UpdateFoodItem(ctx, fx.banana, domain.UpdateFoodItemRequest{Calories: f64(100)})
	require.NoError(t, err)

	fetched, err := fx.svc.GetMealPlanByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, fetched.TotalCalories)
}

func TestDeleteFoodCascadesToMealPlans(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Name: "Day",
		Foods: []domain.MealFoodRequest{
			{FoodID: fx.chicken, Quantity: 1, MealType: "lunch"},
			{FoodID: fx.banana, Quantity: 1, MealType: "snack"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, fx.foodSvc.DeleteFoodItem(ctx, fx.chicken))

	fetched, err := fx.svc.GetMealPlanByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Foods, 1)
	assert.Equal(t, "Banana, raw", fetched.Foods[0].Name)
	assert.InDelta(t, 89, fetched.TotalCalories, 1e-9)
}

func TestDeleteMealPlanKeepsFoods(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Name:  "Day",
		Foods: []domain.MealFoodRequest{{FoodID: fx.chicken, Quantity: 1, MealType: "lunch"}},
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteMealPlan(ctx, created.ID))

	_, err = fx.svc.GetMealPlanByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrMealPlanNotFound)
	assert.ErrorIs(t, fx.svc.DeleteMealPlan(ctx, created.ID), domain.ErrMealPlanNotFound)

	var links int64
	require.NoError(t, fx.db.Model(&entities.MealPlanFood{}).Count(&links).Error)
	assert.Zero(t, links)

	_, err = fx.foodSvc.GetFoodItemByID(ctx, fx.chicken)
	assert.NoError(t, err)
}

func TestGetMealPlans(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Mon", "Tue"} {
		_, err := fx.svc.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Name:  name,
			Foods: []domain.MealFoodRequest{{FoodID: fx.chicken, Quantity: 0.5, MealType: "lunch"}},
		})
		require.NoError(t, err)
	}

	plans, err := fx.svc.GetMealPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Mon", plans[0].Name)
	assert.InDelta(t, 82.5, plans[1].TotalCalories, 1e-9)
}

func TestToMealPlanResponseNullNutrients(t *testing.T) {
	res := ToMealPlanResponse(&entities.MealPlan{
		Name: "Nulls",
		Foods: []*entities.MealPlanFood{
			{Quantity: 1, FoodItem: &entities.FoodItem{Name: "Oil", Calories: 884, Fats: 100}},
			{Quantity: 1},
		},
	})
	assert.Len(t, res.Foods, 1)
	assert.Equal(t, 0.0, res.TotalFiber)
	assert.Equal(t, 0.0, res.TotalSugar)
	assert.Equal(t, 884.0, res.TotalCalories)
}
