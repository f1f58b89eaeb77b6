package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"platter-guest/internal/domain"
	"platter-guest/internal/platter"

	"github.com/stretchr/testify/assert"
)

func TestClientGetBusiness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/account/business/bistro", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": domain.Restaurant{ID: "biz1", Name: "Bistro", Subdomain: "bistro"},
		})
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	restaurant, err := client.GetBusiness(context.Background(), "bistro")
	assert.NoError(t, err)
	assert.Equal(t, "biz1", restaurant.ID)
	assert.Equal(t, "Bistro", restaurant.Name)
}

func TestClientGetBusinessNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	_, err := client.GetBusiness(context.Background(), "nowhere")
	assert.ErrorIs(t, err, platter.ErrNotFound)
}

func TestClientPlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/order/biz1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.OrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok-1", req.Customer)
		assert.Equal(t, "T1", req.Table)
		assert.Len(t, req.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": domain.Order{ID: "ord1", Status: "pending"},
		})
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	order, err := client.PlaceOrder(context.Background(), "biz1", domain.OrderRequest{
		Customer: "tok-1",
		Table:    "T1",
		Items:    []domain.OrderItemRequest{{Item: "X", Variety: "S", Quantity: 2}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "ord1", order.ID)
}

func TestClientPlaceOrderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	_, err := client.PlaceOrder(context.Background(), "biz1", domain.OrderRequest{Customer: "tok-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientListCustomerOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/customer/tok-1/biz1", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "pending", query.Get("status"))
		assert.Empty(t, query.Get("search"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": domain.OrderPage{TotalItems: 12, CurrentPage: 2},
		})
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	page, err := client.ListCustomerOrders(context.Background(), "tok-1", "biz1", domain.OrderListOptions{
		Page:   2,
		Limit:  10,
		Status: "pending",
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, page.TotalItems)
}

func TestClientEditOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/order/business/biz1/customer/tok-1", r.URL.Path)

		var payload struct {
			Order string                    `json:"order"`
			Items []domain.OrderItemRequest `json:"items"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ord1", payload.Order)
		assert.Len(t, payload.Items, 2)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": domain.Order{ID: "ord1", Status: "pending"},
		})
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	order, err := client.EditOrder(context.Background(), "biz1", "tok-1", "ord1", []domain.OrderItemRequest{
		{Item: "X", Variety: "S", Quantity: 1},
		{Item: "Y", Variety: "", Quantity: 3},
	})
	assert.NoError(t, err)
	assert.Equal(t, "ord1", order.ID)
}

func TestClientCancelOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/order/customer/status/cancel", r.URL.Path)

		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ord1", payload["order"])
		assert.Equal(t, "tok-1", payload["customer"])
		assert.Equal(t, "biz1", payload["business"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	assert.NoError(t, client.CancelOrder(context.Background(), "ord1", "tok-1", "biz1"))
}

func TestClientGetMenuItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/business/subdomain/bistro/menu-items", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": domain.MenuPage{
				Docs:       []domain.MenuItem{{ID: "X", Name: "Jollof Rice", Price: 400}},
				TotalItems: 1,
			},
		})
	}))
	defer srv.Close()

	client := platter.NewClient(srv.URL, srv.Client())
	menu, err := client.GetMenuItems(context.Background(), "bistro")
	assert.NoError(t, err)
	assert.Equal(t, 1, menu.TotalItems)
	assert.Equal(t, "Jollof Rice", menu.Docs[0].Name)
}
