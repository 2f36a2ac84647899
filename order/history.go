package order

import (
	"context"
	"sync"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// History caches the caller's orders. The backend stays authoritative;
// every mutation here just reflects a server response into the cache.
type History struct {
	api *api.Client

	mu     sync.RWMutex
	orders []models.Order
}

// Stats summarizes the cached history for the dashboard.
type Stats struct {
	Total     int
	Pending   int
	Delivered int
	Cancelled int
}

func NewHistory(client *api.Client) *History {
	return &History{api: client}
}

// Refresh re-fetches the order list, newest first.
func (h *History) Refresh(ctx context.Context) ([]models.Order, error) {
	orders, err := h.api.MyOrders(ctx)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.orders = orders
	h.mu.Unlock()
	return h.Orders(), nil
}

// RefreshAll re-fetches every order in the system (admin).
func (h *History) RefreshAll(ctx context.Context) ([]models.Order, error) {
	orders, err := h.api.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.orders = orders
	h.mu.Unlock()
	return h.Orders(), nil
}

// Orders returns a copy of the cached list.
func (h *History) Orders() []models.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]models.Order(nil), h.orders...)
}

// Get fetches one order and folds it into the cache.
func (h *History) Get(ctx context.Context, id string) (models.Order, error) {
	ord, err := h.api.OrderByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	h.upsert(ord)
	return ord, nil
}

// Cancel asks the backend to cancel the order. Only offered for
// non-terminal statuses; the backend still has the final say.
func (h *History) Cancel(ctx context.Context, id string) (models.Order, error) {
	ord, err := h.api.CancelOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	h.upsert(ord)
	return ord, nil
}

// UpdateStatus sets the kitchen status (admin).
func (h *History) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	ord, err := h.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, err
	}
	h.upsert(ord)
	return ord, nil
}

// ByStatus filters the cached list; "all" returns everything.
func (h *History) ByStatus(status string) []models.Order {
	if status == "all" {
		return h.Orders()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []models.Order
	for _, ord := range h.orders {
		if string(ord.OrderStatus) == status {
			out = append(out, ord)
		}
	}
	return out
}

// Stats counts the cached orders by bucket.
func (h *History) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s := Stats{Total: len(h.orders)}
	for _, ord := range h.orders {
		switch {
		case ord.OrderStatus == models.OrderStatusDelivered:
			s.Delivered++
		case ord.OrderStatus == models.OrderStatusCancelled:
			s.Cancelled++
		case ord.Pending():
			s.Pending++
		}
	}
	return s
}

func (h *History) upsert(ord models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.orders {
		if h.orders[i].ID == ord.ID {
			h.orders[i] = ord
			return
		}
	}
	h.orders = append([]models.Order{ord}, h.orders...)
}
