// Package catalog fetches and caches the ingredient catalogs the pizza
// builder renders from.
package catalog

import (
	"context"
	"sync"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

type Service struct {
	api *api.Client

	mu      sync.RWMutex
	options models.PizzaOptions
	fetched bool
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Options returns the catalog, fetching it on first use.
func (s *Service) Options(ctx context.Context) (models.PizzaOptions, error) {
	s.mu.RLock()
	if s.fetched {
		opts := s.options
		s.mu.RUnlock()
		return opts, nil
	}
	s.mu.RUnlock()
	return s.Refresh(ctx)
}

// Refresh re-fetches the catalog from the backend.
func (s *Service) Refresh(ctx context.Context) (models.PizzaOptions, error) {
	opts, err := s.api.AllOptions(ctx)
	if err != nil {
		return models.PizzaOptions{}, err
	}
	s.mu.Lock()
	s.options = opts
	s.fetched = true
	s.mu.Unlock()
	return opts, nil
}

// Available filters the cached catalog to items the builder may offer.
func (s *Service) Available(ctx context.Context) (models.PizzaOptions, error) {
	opts, err := s.Options(ctx)
	if err != nil {
		return models.PizzaOptions{}, err
	}
	return models.PizzaOptions{
		Bases:   sellable(opts.Bases),
		Sauces:  sellable(opts.Sauces),
		Cheeses: sellable(opts.Cheeses),
		Veggies: sellable(opts.Veggies),
		Meats:   sellable(opts.Meats),
	}, nil
}

// Find locates an ingredient by ID across all five catalogs.
func (s *Service) Find(ctx context.Context, id string) (models.Ingredient, models.IngredientCategory, bool) {
	opts, err := s.Options(ctx)
	if err != nil {
		return models.Ingredient{}, "", false
	}
	for _, category := range models.Categories() {
		for _, item := range opts.ByCategory(category) {
			if item.ID == id {
				item.Category = category
				return item, category, true
			}
		}
	}
	return models.Ingredient{}, "", false
}

func sellable(items []models.Ingredient) []models.Ingredient {
	var out []models.Ingredient
	for _, item := range items {
		if item.Sellable() {
			out = append(out, item)
		}
	}
	return out
}
