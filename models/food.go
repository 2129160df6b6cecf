package models

import (
	"time"

	"gorm.io/datatypes"
)

type Serving struct {
	Size float64 `json:"size" binding:"required,gt=0"`
	Unit string  `json:"unit" binding:"required"`
}

type Nutrition struct {
	Calories float64 `json:"calories" binding:"required,gte=0"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type PrepMethod struct {
	Method             string  `json:"method" binding:"required"`
	PrepTimeMultiplier float64 `json:"prepTimeMultiplier" binding:"required"`
	NutritionRetention float64 `json:"nutritionRetention" binding:"required"`
}

// Food is a catalog entry; deletes only clear IsActive
type Food struct {
	ID            uint                            `json:"id" gorm:"primaryKey"`
	Name          string                          `json:"name" gorm:"not null;uniqueIndex:idx_food_name_category"`
	ImageURL      string                          `json:"imageUrl"`
	Category      string                          `json:"category" gorm:"not null;uniqueIndex:idx_food_name_category;index"`
	DietaryTags   datatypes.JSONSlice[string]     `json:"dietaryTags"`
	Allergens     datatypes.JSONSlice[string]     `json:"allergens"`
	Serving       Serving                         `json:"serving" gorm:"embedded;embeddedPrefix:serving_"`
	BasePrepTime  int                             `json:"basePrepTime" gorm:"not null"`
	PrepMethods   datatypes.JSONSlice[PrepMethod] `json:"prepMethods"`
	Nutrition     Nutrition                       `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
	GlycemicIndex *float64                        `json:"glycemicIndex,omitempty"`
	IsActive      bool                            `json:"isActive" gorm:"not null;default:true"`
	CreatedAt     time.Time                       `json:"createdAt"`
	UpdatedAt     time.Time                       `json:"updatedAt"`
}

// FoodSummary is the projection returned by catalog listings
type FoodSummary struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	BasePrepTime  int      `json:"basePrepTime"`
	Calories      float64  `json:"calories"`
	DietaryTags   []string `json:"dietaryTags"`
	Allergens     []string `json:"allergens"`
	GlycemicIndex *float64 `json:"glycemicIndex,omitempty"`
}

func (f *Food) Summary() FoodSummary {
	return FoodSummary{
		ID:            f.ID,
		Name:          f.Name,
		Category:      f.Category,
		BasePrepTime:  f.BasePrepTime,
		Calories:      f.Nutrition.Calories,
		DietaryTags:   f.DietaryTags,
		Allergens:     f.Allergens,
		GlycemicIndex: f.GlycemicIndex,
	}
}
