package food

import (
	"context"
	"testing"

	"nutrition-tracker/entities"
	"nutrition-tracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFood(name string, price float64) *entities.FoodItem {
	return &entities.FoodItem{Name: name, ServingSize: 100, Calories: 100, Price: price, PricePerUnit: price}
}

func TestSaveFoodItemsDuplicateKeyWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodRepository(testutil.NewDB(t))
	require.NoError(t, repo.SaveFoodItems(ctx, []*entities.FoodItem{seedFood("Banana, raw", 0.29)}, nil))

	fresh := seedFood("Apple, raw", 0.5)
	fresh.ID = 2
	duplicate := seedFood("Duplicate", 1)
	duplicate.ID = 1

	err := repo.SaveFoodItems(ctx, []*entities.FoodItem{fresh, duplicate}, nil)
	require.Error(t, err)

	all, err := repo.GetAllFoodItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Banana, raw", all[0].Name)
}

func TestSaveFoodItemsRollsBackCreatesWhenAnUpdateFails(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewFoodRepository(db)
	require.NoError(t, repo.SaveFoodItems(ctx, []*entities.FoodItem{seedFood("Banana, raw", 0.29)}, nil))

	banana, err := repo.GetFoodItemByID(ctx, 1)
	require.NoError(t, err)
	banana.Price = 9

	testutil.FailUpdatesAfter(t, db, 0)
	err = repo.SaveFoodItems(ctx, []*entities.FoodItem{seedFood("Apple, raw", 0.5)}, []*entities.FoodItem{banana})
	require.ErrorIs(t, err, testutil.ErrForcedFailure)

	all, err := repo.GetAllFoodItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "the created row is rolled back with the failed update")
	assert.Equal(t, 0.29, all[0].Price)
}

func TestFixPricesRollsBackEveryUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewFoodRepository(db)
	svc := NewFoodService(repo)
	require.NoError(t, repo.SaveFoodItems(ctx, []*entities.FoodItem{
		seedFood("Banana, raw", 5),
		seedFood("Almonds", 5),
	}, nil))

	testutil.FailUpdatesAfter(t, db, 1)
	summary, err := svc.FixPrices(ctx, DefaultPrices)
	require.ErrorIs(t, err, testutil.ErrForcedFailure)
	assert.Empty(t, summary.Updated)

	all, err := repo.GetAllFoodItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, item := range all {
		assert.Equal(t, 5.0, item.Price, item.Name)
		assert.Equal(t, 5.0, item.PricePerUnit, item.Name)
	}
}
