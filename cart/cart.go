// Package cart holds the in-progress pizza composition. It is pure
// state: no network calls, no persistence, session-scoped only. Total
// price and completeness are derived from the selections on every read
// and never stored.
package cart

import "github.com/Rahulkholi70/Pizza-delivery-app/models"

type Cart struct {
	base    *models.Ingredient
	sauce   *models.Ingredient
	cheeses []models.Ingredient
	veggies []models.Ingredient
	meats   []models.Ingredient
}

// Summary is a read-only snapshot of the cart for display.
type Summary struct {
	Base       *models.Ingredient
	Sauce      *models.Ingredient
	Cheeses    []models.Ingredient
	Veggies    []models.Ingredient
	Meats      []models.Ingredient
	TotalPrice float64
	IsComplete bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// SetBase replaces the selected base unconditionally.
func (c *Cart) SetBase(item models.Ingredient) {
	c.base = &item
}

// SetSauce replaces the selected sauce unconditionally.
func (c *Cart) SetSauce(item models.Ingredient) {
	c.sauce = &item
}

// ToggleCheese adds the cheese if absent, removes it if present.
// Returns whether the item is selected afterwards.
func (c *Cart) ToggleCheese(item models.Ingredient) bool {
	c.cheeses = toggle(c.cheeses, item)
	return contains(c.cheeses, item.ID)
}

// ToggleVeggie adds the veggie if absent, removes it if present.
func (c *Cart) ToggleVeggie(item models.Ingredient) bool {
	c.veggies = toggle(c.veggies, item)
	return contains(c.veggies, item.ID)
}

// ToggleMeat adds the meat if absent, removes it if present.
func (c *Cart) ToggleMeat(item models.Ingredient) bool {
	c.meats = toggle(c.meats, item)
	return contains(c.meats, item.ID)
}

// Clear resets to the empty cart.
func (c *Cart) Clear() {
	*c = Cart{}
}

// TotalPrice sums the unit price of every selected item.
func (c *Cart) TotalPrice() float64 {
	var total float64
	if c.base != nil {
		total += c.base.Price
	}
	if c.sauce != nil {
		total += c.sauce.Price
	}
	for _, item := range c.cheeses {
		total += item.Price
	}
	for _, item := range c.veggies {
		total += item.Price
	}
	for _, item := range c.meats {
		total += item.Price
	}
	return total
}

// IsComplete reports whether the pizza can be ordered: a base, a sauce
// and at least one cheese.
func (c *Cart) IsComplete() bool {
	return c.base != nil && c.sauce != nil && len(c.cheeses) > 0
}

// IsSelected reports whether the ingredient is currently in the cart.
func (c *Cart) IsSelected(id string, category models.IngredientCategory) bool {
	switch category {
	case models.CategoryBase:
		return c.base != nil && c.base.ID == id
	case models.CategorySauce:
		return c.sauce != nil && c.sauce.ID == id
	case models.CategoryCheese:
		return contains(c.cheeses, id)
	case models.CategoryVeggie:
		return contains(c.veggies, id)
	case models.CategoryMeat:
		return contains(c.meats, id)
	default:
		return false
	}
}

// OrderItems materializes the selection as order lines in the fixed
// order base, sauce, cheeses, veggies, meats. Quantity is always 1.
func (c *Cart) OrderItems() []models.OrderItem {
	var items []models.OrderItem
	if c.base != nil {
		items = append(items, line(*c.base, models.CategoryBase))
	}
	if c.sauce != nil {
		items = append(items, line(*c.sauce, models.CategorySauce))
	}
	for _, item := range c.cheeses {
		items = append(items, line(item, models.CategoryCheese))
	}
	for _, item := range c.veggies {
		items = append(items, line(item, models.CategoryVeggie))
	}
	for _, item := range c.meats {
		items = append(items, line(item, models.CategoryMeat))
	}
	return items
}

// Summary returns the current selections with the derived values.
func (c *Cart) Summary() Summary {
	return Summary{
		Base:       c.base,
		Sauce:      c.sauce,
		Cheeses:    append([]models.Ingredient(nil), c.cheeses...),
		Veggies:    append([]models.Ingredient(nil), c.veggies...),
		Meats:      append([]models.Ingredient(nil), c.meats...),
		TotalPrice: c.TotalPrice(),
		IsComplete: c.IsComplete(),
	}
}

func line(item models.Ingredient, category models.IngredientCategory) models.OrderItem {
	return models.OrderItem{
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Category: category,
		ItemID:   item.ID,
	}
}

func toggle(items []models.Ingredient, item models.Ingredient) []models.Ingredient {
	for i := range items {
		if items[i].ID == item.ID {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return append(items, item)
}

func contains(items []models.Ingredient, id string) bool {
	for i := range items {
		if items[i].ID == id {
			return true
		}
	}
	return false
}
