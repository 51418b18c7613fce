package mealplan

import (
	"context"
	"errors"
	"time"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
	"nutrition-tracker/pkg/nutrition"

	"gorm.io/gorm"
)

const defaultQuantity = 1.0

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error)
		GetMealPlanByID(ctx context.Context, id uint) (domain.MealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id uint) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
	}
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.MealPlanResponse, error) {
	if len(req.Foods) == 0 {
		return domain.MealPlanResponse{}, domain.ErrEmptyMealPlan
	}

	mealPlan := &entities.MealPlan{
		Name:  req.Name,
		Date:  time.Now().UTC(),
		Foods: make([]*entities.MealPlanFood, 0, len(req.Foods)),
	}
	for _, food := range req.Foods {
		quantity := food.Quantity
		if quantity <= 0 {
			quantity = defaultQuantity
		}
		mealPlan.Foods = append(mealPlan.Foods, &entities.MealPlanFood{
			FoodItemID: food.FoodID,
			Quantity:   quantity,
			MealType:   food.MealType,
		})
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, mealPlan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return ToMealPlanResponse(mealPlan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error) {
	mealPlans, err := s.mealPlanRepository.GetMealPlans(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealPlanResponse, 0, len(mealPlans))
	for _, mealPlan := range mealPlans {
		response = append(response, ToMealPlanResponse(mealPlan))
	}
	return response, nil
}

func (s *mealPlanService) GetMealPlanByID(ctx context.Context, id uint) (domain.MealPlanResponse, error) {
	mealPlan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}
	return ToMealPlanResponse(mealPlan), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id uint) error {
	if err := s.mealPlanRepository.DeleteMealPlan(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}
	return nil
}

// ToMealPlanResponse derives the plan totals from its current foods.
func ToMealPlanResponse(mealPlan *entities.MealPlan) domain.MealPlanResponse {
	foods := make([]domain.MealFoodResponse, 0, len(mealPlan.Foods))
	portions := make([]nutrition.Portion, 0, len(mealPlan.Foods))

	for _, food := range mealPlan.Foods {
		if food.FoodItem == nil {
			continue
		}
		item := food.FoodItem
		foods = append(foods, domain.MealFoodResponse{
			FoodID:        item.ID,
			Name:          item.Name,
			Quantity:      food.Quantity,
			MealType:      food.MealType,
			Calories:      item.Calories,
			Protein:       item.Protein,
			Carbohydrates: item.Carbohydrates,
			Fats:          item.Fats,
			Fiber:         item.Fiber,
			Sugar:         item.Sugar,
		})
		portions = append(portions, nutrition.Portion{
			Calories:      item.Calories,
			Protein:       item.Protein,
			Carbohydrates: item.Carbohydrates,
			Fats:          item.Fats,
			Fiber:         item.Fiber,
			Sugar:         item.Sugar,
			Quantity:      food.Quantity,
		})
	}

	totals := nutrition.MealPlanTotals(portions)
	return domain.MealPlanResponse{
		ID:            mealPlan.ID,
		Name:          mealPlan.Name,
		Date:          mealPlan.Date,
		Foods:         foods,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFats:     totals.Fats,
		TotalFiber:    totals.Fiber,
		TotalSugar:    totals.Sugar,
	}
}
