package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// inventoryServer serves one item per category, with the base running
// low and the meat hidden.
func inventoryServer(t *testing.T) *httptest.Server {
	items := map[string][]map[string]any{
		"base":   {{"_id": "b1", "name": "Thin Crust", "price": 80, "stock": 5, "threshold": 20, "isAvailable": true}},
		"sauce":  {{"_id": "s1", "name": "Marinara", "price": 30, "stock": 25, "threshold": 15, "isAvailable": true}},
		"cheese": {{"_id": "c1", "name": "Mozzarella", "price": 50, "stock": 30, "threshold": 10, "isAvailable": true}},
		"veggie": {{"_id": "v1", "name": "Capsicum", "price": 20, "stock": 40, "threshold": 25, "isAvailable": true}},
		"meat":   {{"_id": "m1", "name": "Pepperoni", "price": 90, "stock": 18, "threshold": 15, "isAvailable": false}},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimPrefix(r.URL.Path, "/api/inventory/")
		data, ok := items[category]
		if !ok {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
	}))
}

func TestAllFetchesEveryCategory(t *testing.T) {
	srv := inventoryServer(t)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	all, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Thin Crust", all[models.CategoryBase][0].Name)
	assert.Equal(t, "Pepperoni", all[models.CategoryMeat][0].Name)
}

func TestLowStockReport(t *testing.T) {
	srv := inventoryServer(t)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	low, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	// Only the base (5 <= 20) is at or below threshold.
	require.Len(t, low, 1)
	require.Len(t, low[models.CategoryBase], 1)
	assert.Equal(t, "b1", low[models.CategoryBase][0].ID)
}

func TestAddDefaultsThreshold(t *testing.T) {
	var got api.CreateIngredientRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/inventory/veggie", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"_id": "v9", "name": got.Name, "price": got.Price,
				"stock": got.Stock, "threshold": got.Threshold, "isAvailable": true,
			},
		})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	item, err := svc.Add(context.Background(), models.CategoryVeggie, api.CreateIngredientRequest{
		Name:  "Olives",
		Price: 25,
		Stock: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultThreshold(models.CategoryVeggie), got.Threshold)
	assert.Equal(t, "v9", item.ID)
}

func TestAddKeepsExplicitThreshold(t *testing.T) {
	var got api.CreateIngredientRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "v9"}})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	_, err := svc.Add(context.Background(), models.CategoryVeggie, api.CreateIngredientRequest{
		Name: "Olives", Price: 25, Stock: 60, Threshold: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Threshold)
}

func TestUpdateStockAndToggle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/inventory/cheese/c1":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"stock": 50, "threshold": 12}`, string(body))
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"_id": "c1", "stock": 50, "threshold": 12},
			})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/inventory/cheese/c1/toggle":
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"_id": "c1", "isAvailable": false},
			})
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))
	ctx := context.Background()

	updated, err := svc.UpdateStock(ctx, models.CategoryCheese, "c1", 50, 12)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock)
	assert.Equal(t, 12, updated.Threshold)

	toggled, err := svc.Toggle(ctx, models.CategoryCheese, "c1")
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)
}

func TestExportXLSX(t *testing.T) {
	srv := inventoryServer(t)
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, time.Second))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(context.Background(), &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 5)

	bases := file.Sheet["Bases"]
	require.NotNil(t, bases)
	require.Len(t, bases.Rows, 2)
	assert.Equal(t, "Name", bases.Rows[0].Cells[1].String())
	assert.Equal(t, "Thin Crust", bases.Rows[1].Cells[1].String())
	// Stock 5 against threshold 20 flags as low.
	assert.True(t, bases.Rows[1].Cells[7].Bool())

	meats := file.Sheet["Meats"]
	require.NotNil(t, meats)
	assert.Equal(t, "Pepperoni", meats.Rows[1].Cells[1].String())
	assert.False(t, meats.Rows[1].Cells[6].Bool())
}
