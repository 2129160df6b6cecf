package store

import (
	"context"
	"errors"
	"fmt"

	"food4u-api/models"

	"gorm.io/gorm"
)

// FoodStore persists the food catalog. Only active rows are visible.
type FoodStore struct {
	db *gorm.DB
}

func NewFoodStore(db *gorm.DB) *FoodStore {
	return &FoodStore{db: db}
}

func (s *FoodStore) Create(ctx context.Context, food *models.Food) error {
	food.ID = 0
	food.IsActive = true
	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateFood
		}
		return fmt.Errorf("create food: %w", err)
	}
	return nil
}

// ListActive returns every active food ordered by name
func (s *FoodStore) ListActive(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("name asc").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (s *FoodStore) GetActive(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &food, nil
}

// Update replaces the editable fields of an active food
func (s *FoodStore) Update(ctx context.Context, id uint, food *models.Food) (*models.Food, error) {
	existing, err := s.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}
	food.ID = existing.ID
	food.IsActive = true
	food.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(food).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateFood
		}
		return nil, fmt.Errorf("update food: %w", err)
	}
	return food, nil
}

// Deactivate hides a food from the catalog without removing the row
func (s *FoodStore) Deactivate(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Food{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate food: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrFoodNotFound
	}
	return nil
}
