package mealplan

import (
	"context"
	"errors"
	"fmt"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id uint) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context) ([]*entities.MealPlan, error)
		GetFoodsForMealPlan(ctx context.Context, mealPlanID uint) ([]*entities.MealPlanFood, error)
		DeleteMealPlan(ctx context.Context, id uint) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// CreateMealPlan inserts the plan and its association rows in one transaction.
// A reference to a missing food rolls everything back.
func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, mealPlan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Foods").Create(mealPlan).Error; err != nil {
			return err
		}

		for _, food := range mealPlan.Foods {
			var foodItem entities.FoodItem
			if err := tx.Where("id = ?", food.FoodItemID).First(&foodItem).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("food with id %d: %w", food.FoodItemID, domain.ErrFoodItemNotFound)
				}
				return err
			}

			food.ID = 0
			food.MealPlanID = mealPlan.ID
			if err := tx.Omit("FoodItem").Create(food).Error; err != nil {
				return err
			}
			food.FoodItem = &foodItem
		}
		return nil
	})
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id uint) (*entities.MealPlan, error) {
	var mealPlan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mealPlan).Error; err != nil {
		return nil, err
	}

	foods, err := r.GetFoodsForMealPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	mealPlan.Foods = foods
	return &mealPlan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context) ([]*entities.MealPlan, error) {
	var mealPlans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Foods", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Foods.FoodItem").
		Order("id asc").
		Find(&mealPlans).Error; err != nil {
		return nil, err
	}
	return mealPlans, nil
}

// GetFoodsForMealPlan returns the association rows of a plan with their food items loaded.
func (r *mealPlanRepository) GetFoodsForMealPlan(ctx context.Context, mealPlanID uint) ([]*entities.MealPlanFood, error) {
	var foods []*entities.MealPlanFood
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Where("meal_plan_id = ?", mealPlanID).
		Order("id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.MealPlanFood{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.MealPlan{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
