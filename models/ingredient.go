package models

import "errors"

type IngredientCategory string

const (
	CategoryBase   IngredientCategory = "base"
	CategorySauce  IngredientCategory = "sauce"
	CategoryCheese IngredientCategory = "cheese"
	CategoryVeggie IngredientCategory = "veggie"
	CategoryMeat   IngredientCategory = "meat"
)

// Categories lists the five ingredient catalogs in menu order.
func Categories() []IngredientCategory {
	return []IngredientCategory{
		CategoryBase,
		CategorySauce,
		CategoryCheese,
		CategoryVeggie,
		CategoryMeat,
	}
}

// ParseCategory maps a raw string to an IngredientCategory.
func ParseCategory(s string) (IngredientCategory, error) {
	switch s {
	case string(CategoryBase):
		return CategoryBase, nil
	case string(CategorySauce):
		return CategorySauce, nil
	case string(CategoryCheese):
		return CategoryCheese, nil
	case string(CategoryVeggie):
		return CategoryVeggie, nil
	case string(CategoryMeat):
		return CategoryMeat, nil
	default:
		return "", errors.New("invalid ingredient category")
	}
}

// DefaultThreshold returns the stock level below which the kitchen
// wants a restock alert for a freshly created item.
func DefaultThreshold(c IngredientCategory) int {
	switch c {
	case CategoryBase:
		return 20
	case CategorySauce:
		return 15
	case CategoryCheese:
		return 10
	case CategoryVeggie:
		return 25
	default:
		return 15
	}
}

// Ingredient is a purchasable pizza component. The backend owns every
// field; the client only reads them (or mutates via admin endpoints).
type Ingredient struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Stock       int                `json:"stock"`
	Threshold   int                `json:"threshold"`
	IsAvailable bool               `json:"isAvailable"`
	Category    IngredientCategory `json:"category,omitempty"`
}

// LowStock reports whether the item has fallen to its restock threshold.
func (i Ingredient) LowStock() bool {
	return i.Stock <= i.Threshold
}

// Sellable reports whether the item can be offered in the builder.
func (i Ingredient) Sellable() bool {
	return i.IsAvailable && i.Stock > 0
}

// PizzaOptions is the full ingredient catalog served to the builder.
type PizzaOptions struct {
	Bases   []Ingredient `json:"bases"`
	Sauces  []Ingredient `json:"sauces"`
	Cheeses []Ingredient `json:"cheeses"`
	Veggies []Ingredient `json:"veggies"`
	Meats   []Ingredient `json:"meats"`
}

// ByCategory returns the catalog slice for a category.
func (o PizzaOptions) ByCategory(c IngredientCategory) []Ingredient {
	switch c {
	case CategoryBase:
		return o.Bases
	case CategorySauce:
		return o.Sauces
	case CategoryCheese:
		return o.Cheeses
	case CategoryVeggie:
		return o.Veggies
	case CategoryMeat:
		return o.Meats
	default:
		return nil
	}
}
