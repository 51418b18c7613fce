package food

import (
	"context"
	"errors"

	"nutrition-tracker/domain"
	"nutrition-tracker/entities"
	"nutrition-tracker/pkg/nutrition"

	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id uint) error
		GetFoodItems(ctx context.Context, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id uint) (domain.FoodItemResponse, error)
		GetFoodMetrics(ctx context.Context) (domain.FoodMetricsResponse, error)

		FixPrices(ctx context.Context, prices map[string]float64) (domain.PriceFixSummary, error)
		VerifyFoods(ctx context.Context) ([]domain.FoodIssue, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	servingSize := nutrition.ReferenceServing
	if req.ServingSize != nil {
		servingSize = *req.ServingSize
	}

	foodItem := &entities.FoodItem{
		Name:          req.Name,
		Brand:         req.Brand,
		ServingSize:   servingSize,
		Calories:      derefOrZero(req.Calories),
		Protein:       derefOrZero(req.Protein),
		Carbohydrates: derefOrZero(req.Carbohydrates),
		Fats:          derefOrZero(req.Fats),
		Fiber:         req.Fiber,
		Sugar:         req.Sugar,
		Price:         req.Price,
		Store:         req.Store,
	}

	if err := applyPricePerUnit(foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id uint, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.getFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if req.Name != nil {
		foodItem.Name = *req.Name
	}
	if req.Brand != nil {
		foodItem.Brand = req.Brand
	}
	if req.ServingSize != nil {
		foodItem.ServingSize = *req.ServingSize
	}
	if req.Calories != nil {
		foodItem.Calories = *req.Calories
	}
	if req.Protein != nil {
		foodItem.Protein = *req.Protein
	}
	if req.Carbohydrates != nil {
		foodItem.Carbohydrates = *req.Carbohydrates
	}
	if req.Fats != nil {
		foodItem.Fats = *req.Fats
	}
	if req.Fiber != nil {
		foodItem.Fiber = req.Fiber
	}
	if req.Sugar != nil {
		foodItem.Sugar = req.Sugar
	}
	if req.Price != nil {
		foodItem.Price = *req.Price
	}
	if req.Store != nil {
		foodItem.Store = req.Store
	}

	if err := applyPricePerUnit(foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id uint) error {
	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return nil
}

func (s *foodService) GetFoodItems(ctx context.Context, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, ToFoodItemResponse(item))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id uint) (domain.FoodItemResponse, error) {
	foodItem, err := s.getFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFoodMetrics(ctx context.Context) (domain.FoodMetricsResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return domain.FoodMetricsResponse{}, err
	}
	return computeMetrics(foodItems), nil
}

func (s *foodService) getFoodItem(ctx context.Context, id uint) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	return foodItem, nil
}

// applyPricePerUnit enforces the stored invariant price_per_unit = price / serving_size * 100.
func applyPricePerUnit(foodItem *entities.FoodItem) error {
	if foodItem.ServingSize <= 0 {
		return domain.ErrInvalidServingSize
	}
	if foodItem.Price <= 0 {
		return domain.ErrInvalidPrice
	}
	foodItem.PricePerUnit = nutrition.PriceUnit(foodItem.Price, foodItem.ServingSize)
	return nil
}

func ToFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Brand:             item.Brand,
		ServingSize:       item.ServingSize,
		Calories:          item.Calories,
		Protein:           item.Protein,
		Carbohydrates:     item.Carbohydrates,
		Fats:              item.Fats,
		Fiber:             item.Fiber,
		Sugar:             item.Sugar,
		Price:             item.Price,
		PricePerUnit:      item.PricePerUnit,
		Store:             item.Store,
		CaloriesPerDollar: nutrition.CaloriesPerDollar(item.Calories, item.Price),
		ProteinPerDollar:  nutrition.ProteinPerDollar(item.Protein, item.Price),
		FiberToSugarRatio: nutrition.FiberToSugarRatio(item.Fiber, item.Sugar),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
