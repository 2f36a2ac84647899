package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

func optionsServer(t *testing.T, hits *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pizza/all-options", r.URL.Path)
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"bases": []map[string]any{
					{"_id": "b1", "name": "Thin Crust", "price": 80, "stock": 40, "threshold": 20, "isAvailable": true},
					{"_id": "b2", "name": "Cheese Burst", "price": 120, "stock": 0, "threshold": 20, "isAvailable": true},
				},
				"sauces": []map[string]any{
					{"_id": "s1", "name": "Marinara", "price": 30, "stock": 25, "threshold": 15, "isAvailable": true},
					{"_id": "s2", "name": "Pesto", "price": 45, "stock": 25, "threshold": 15, "isAvailable": false},
				},
				"cheeses": []map[string]any{
					{"_id": "c1", "name": "Mozzarella", "price": 50, "stock": 30, "threshold": 10, "isAvailable": true},
				},
				"veggies": []map[string]any{},
				"meats": []map[string]any{
					{"_id": "m1", "name": "Chicken Tikka", "price": 90, "stock": 18, "threshold": 15, "isAvailable": true},
				},
			},
		})
	}))
}

func TestOptionsFetchesOnce(t *testing.T) {
	hits := 0
	srv := optionsServer(t, &hits)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	ctx := context.Background()

	first, err := svc.Options(ctx)
	require.NoError(t, err)
	require.Len(t, first.Bases, 2)

	_, err = svc.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestAvailableFiltersHiddenAndOutOfStock(t *testing.T) {
	srv := optionsServer(t, nil)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	avail, err := svc.Available(context.Background())
	require.NoError(t, err)

	// b2 is out of stock, s2 is hidden.
	require.Len(t, avail.Bases, 1)
	assert.Equal(t, "b1", avail.Bases[0].ID)
	require.Len(t, avail.Sauces, 1)
	assert.Equal(t, "s1", avail.Sauces[0].ID)
	assert.Empty(t, avail.Veggies)
	require.Len(t, avail.Meats, 1)
}

func TestFindResolvesCategory(t *testing.T) {
	srv := optionsServer(t, nil)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	ctx := context.Background()

	item, category, ok := svc.Find(ctx, "m1")
	require.True(t, ok)
	assert.Equal(t, "Chicken Tikka", item.Name)
	assert.Equal(t, models.CategoryMeat, category)
	assert.Equal(t, models.CategoryMeat, item.Category)

	_, _, ok = svc.Find(ctx, "nope")
	assert.False(t, ok)
}

func TestOptionsPropagatesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"message": "database unreachable"})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	_, err := svc.Options(context.Background())
	require.Error(t, err)
	assert.Equal(t, "database unreachable", api.UserMessage(err, "fallback"))
}
