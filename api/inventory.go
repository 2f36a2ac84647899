package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

type CreateIngredientRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Threshold   int     `json:"threshold"`
}

// AllOptions fetches the five ingredient catalogs for the builder.
func (c *Client) AllOptions(ctx context.Context) (models.PizzaOptions, error) {
	var resp struct {
		Success bool                `json:"success"`
		Data    models.PizzaOptions `json:"data"`
	}
	if err := c.get(ctx, "/api/pizza/all-options", &resp, "Failed to fetch pizza options"); err != nil {
		return models.PizzaOptions{}, err
	}
	return resp.Data, nil
}

// ListInventory fetches one category's catalog (admin view includes
// unavailable and out-of-stock items).
func (c *Client) ListInventory(ctx context.Context, category models.IngredientCategory) ([]models.Ingredient, error) {
	var resp struct {
		Success bool                `json:"success"`
		Data    []models.Ingredient `json:"data"`
	}
	path := "/api/inventory/" + url.PathEscape(string(category))
	if err := c.get(ctx, path, &resp, "Failed to fetch inventory"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateIngredient adds a new item to a category (admin).
func (c *Client) CreateIngredient(ctx context.Context, category models.IngredientCategory, req CreateIngredientRequest) (models.Ingredient, error) {
	var resp struct {
		Success bool              `json:"success"`
		Data    models.Ingredient `json:"data"`
	}
	path := "/api/inventory/" + url.PathEscape(string(category))
	if err := c.post(ctx, path, req, &resp, "Failed to add item"); err != nil {
		return models.Ingredient{}, err
	}
	return resp.Data, nil
}

// UpdateStock sets an item's stock count and restock threshold (admin).
func (c *Client) UpdateStock(ctx context.Context, category models.IngredientCategory, id string, stock, threshold int) (models.Ingredient, error) {
	var resp struct {
		Success bool              `json:"success"`
		Data    models.Ingredient `json:"data"`
	}
	body := map[string]int{"stock": stock, "threshold": threshold}
	path := fmt.Sprintf("/api/inventory/%s/%s", url.PathEscape(string(category)), url.PathEscape(id))
	if err := c.put(ctx, path, body, &resp, "Failed to update stock"); err != nil {
		return models.Ingredient{}, err
	}
	return resp.Data, nil
}

// ToggleAvailability flips an item's availability flag (admin).
func (c *Client) ToggleAvailability(ctx context.Context, category models.IngredientCategory, id string) (models.Ingredient, error) {
	var resp struct {
		Success bool              `json:"success"`
		Data    models.Ingredient `json:"data"`
	}
	path := fmt.Sprintf("/api/inventory/%s/%s/toggle", url.PathEscape(string(category)), url.PathEscape(id))
	if err := c.patch(ctx, path, nil, &resp, "Failed to toggle availability"); err != nil {
		return models.Ingredient{}, err
	}
	return resp.Data, nil
}
