package handlers

import (
	"context"
	"net/http"
	"strconv"

	"food4u-api/models"

	"github.com/gin-gonic/gin"
)

// FoodCatalog is the persistence behind the food routes
type FoodCatalog interface {
	Create(ctx context.Context, food *models.Food) error
	ListActive(ctx context.Context) ([]models.Food, error)
	GetActive(ctx context.Context, id uint) (*models.Food, error)
	Update(ctx context.Context, id uint, food *models.Food) (*models.Food, error)
	Deactivate(ctx context.Context, id uint) error
}

type FoodHandler struct {
	foods FoodCatalog
}

func NewFoodHandler(foods FoodCatalog) *FoodHandler {
	return &FoodHandler{foods: foods}
}

type FoodRequest struct {
	Name          string              `json:"name" binding:"required"`
	ImageURL      string              `json:"imageUrl"`
	Category      string              `json:"category" binding:"required"`
	DietaryTags   []string            `json:"dietaryTags"`
	Allergens     []string            `json:"allergens"`
	Serving       models.Serving      `json:"serving" binding:"required"`
	BasePrepTime  int                 `json:"basePrepTime" binding:"required,gte=0"`
	PrepMethods   []models.PrepMethod `json:"prepMethods" binding:"dive"`
	Nutrition     models.Nutrition    `json:"nutrition" binding:"required"`
	GlycemicIndex *float64            `json:"glycemicIndex"`
}

func (r FoodRequest) toModel() *models.Food {
	return &models.Food{
		Name:          r.Name,
		ImageURL:      r.ImageURL,
		Category:      r.Category,
		DietaryTags:   nonNil(r.DietaryTags),
		Allergens:     nonNil(r.Allergens),
		Serving:       r.Serving,
		BasePrepTime:  r.BasePrepTime,
		PrepMethods:   nonNil(r.PrepMethods),
		Nutrition:     r.Nutrition,
		GlycemicIndex: r.GlycemicIndex,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// CreateFood adds a catalog entry
func (h *FoodHandler) CreateFood(c *gin.Context) {
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	food := req.toModel()
	if err := h.foods.Create(c.Request.Context(), food); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// ListFoods returns the summary of every active food
func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.foods.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.FoodSummary, 0, len(foods))
	for i := range foods {
		out = append(out, foods[i].Summary())
	}
	c.JSON(http.StatusOK, out)
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}
	food, err := h.foods.GetActive(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// UpdateFood replaces the editable fields of a food
func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	food, err := h.foods.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DeleteFood hides a food from the catalog
func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}
	if err := h.foods.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func foodID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": models.ErrFoodNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}
