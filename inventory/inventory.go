// Package inventory is the admin console's view of the five ingredient
// catalogs: stock and threshold updates, availability toggles, item
// creation, restock reports and spreadsheet export.
package inventory

import (
	"context"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// List fetches one category, including hidden and out-of-stock items.
func (s *Service) List(ctx context.Context, category models.IngredientCategory) ([]models.Ingredient, error) {
	return s.api.ListInventory(ctx, category)
}

// All fetches every category keyed by name.
func (s *Service) All(ctx context.Context) (map[models.IngredientCategory][]models.Ingredient, error) {
	out := make(map[models.IngredientCategory][]models.Ingredient, 5)
	for _, category := range models.Categories() {
		items, err := s.api.ListInventory(ctx, category)
		if err != nil {
			return nil, err
		}
		out[category] = items
	}
	return out, nil
}

// Add creates a new item. A zero threshold takes the category default.
func (s *Service) Add(ctx context.Context, category models.IngredientCategory, req api.CreateIngredientRequest) (models.Ingredient, error) {
	if req.Threshold <= 0 {
		req.Threshold = models.DefaultThreshold(category)
	}
	return s.api.CreateIngredient(ctx, category, req)
}

// UpdateStock sets stock and threshold for an item.
func (s *Service) UpdateStock(ctx context.Context, category models.IngredientCategory, id string, stock, threshold int) (models.Ingredient, error) {
	return s.api.UpdateStock(ctx, category, id, stock, threshold)
}

// Toggle flips an item's availability.
func (s *Service) Toggle(ctx context.Context, category models.IngredientCategory, id string) (models.Ingredient, error) {
	return s.api.ToggleAvailability(ctx, category, id)
}

// LowStock reports items at or below their restock threshold.
func (s *Service) LowStock(ctx context.Context) (map[models.IngredientCategory][]models.Ingredient, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[models.IngredientCategory][]models.Ingredient)
	for category, items := range all {
		for _, item := range items {
			if item.LowStock() {
				out[category] = append(out[category], item)
			}
		}
	}
	return out, nil
}
