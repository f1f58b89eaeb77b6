package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"platter-guest/internal/cart"
	"platter-guest/internal/domain"
	"platter-guest/internal/platter"
	"platter-guest/internal/service"
	"platter-guest/internal/session"
	"platter-guest/internal/tenant"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Orders      service.OrderServiceInterface
	Carts       *cart.Store
	QR          service.QRGenerator
}

func NewHandler(restSvc service.RestaurantServiceInterface, orderSvc service.OrderServiceInterface, carts *cart.Store, qr service.QRGenerator) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Orders:      orderSvc,
		Carts:       carts,
		QR:          qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	s := r.PathPrefix("/{subdomain}").Subrouter()
	s.HandleFunc("/api/restaurant", h.getRestaurant).Methods("GET")
	s.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	s.HandleFunc("/api/table/{qr}", h.getTable).Methods("GET")
	s.HandleFunc("/api/table/{qr}/qrcode", h.getTableQRCode).Methods("GET")

	s.HandleFunc("/api/cart", h.getCart).Methods("GET")
	s.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	s.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	s.HandleFunc("/api/cart/items", h.updateCartItem).Methods("PATCH")
	s.HandleFunc("/api/cart/items", h.removeCartItem).Methods("DELETE")

	s.HandleFunc("/api/table/{qr}/orders", h.placeOrder).Methods("POST")
	s.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	s.HandleFunc("/api/orders/{orderId}", h.getOrder).Methods("GET")
	s.HandleFunc("/api/orders/{orderId}", h.editOrder).Methods("PATCH")
	s.HandleFunc("/api/orders/{orderId}/cancel", h.cancelOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "guest-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]
	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), sub)
	if err != nil {
		writeRestaurantError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]
	menu, err := h.Restaurants.GetMenu(r.Context(), sub)
	if err != nil {
		if errors.Is(err, platter.ErrNotFound) {
			http.Error(w, "Menu not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load menu", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"menu":       menu,
		"categories": service.GroupMenuByCategory(menu),
	})
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	table := tenant.ParseTable(vars["qr"])

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), vars["subdomain"])
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"table":       table,
		"restaurant":  restaurant.Name,
		"today_hours": service.TodayHours(restaurant.Hours, time.Now()),
	})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	png, err := h.QR.Generate(vars["subdomain"], vars["qr"])
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

type cartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	VarietyID  string `json:"variety_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]
	writeJSON(w, http.StatusOK, h.Carts.Get(sub, customerToken(r)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.MenuItemID == "" {
		http.Error(w, "menu_item_id is required", http.StatusBadRequest)
		return
	}

	menu, err := h.Restaurants.GetMenu(r.Context(), sub)
	if err != nil {
		http.Error(w, "Failed to load menu", http.StatusBadGateway)
		return
	}

	var item *domain.MenuItem
	for i := range menu.Docs {
		if menu.Docs[i].ID == req.MenuItemID {
			item = &menu.Docs[i]
			break
		}
	}
	if item == nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	var variety *domain.Variety
	if req.VarietyID != "" {
		if variety = item.FindVariety(req.VarietyID); variety == nil {
			http.Error(w, "Unknown variety for menu item", http.StatusBadRequest)
			return
		}
	}
	if !item.IsAvailable || (variety != nil && !variety.IsAvailable) {
		http.Error(w, "Item is not available", http.StatusConflict)
		return
	}

	updated := h.Carts.Dispatch(sub, customerToken(r), cart.AddItem{
		Item:     *item,
		Variety:  variety,
		Quantity: req.Quantity,
		Note:     req.Note,
	})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.MenuItemID == "" {
		http.Error(w, "menu_item_id is required", http.StatusBadRequest)
		return
	}

	updated := h.Carts.Dispatch(sub, customerToken(r), cart.UpdateQuantity{
		MenuItemID: req.MenuItemID,
		VarietyID:  req.VarietyID,
		Quantity:   req.Quantity,
	})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated := h.Carts.Dispatch(sub, customerToken(r), cart.RemoveItem{
		MenuItemID: req.MenuItemID,
		VarietyID:  req.VarietyID,
	})
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sub := mux.Vars(r)["subdomain"]
	writeJSON(w, http.StatusOK, h.Carts.Dispatch(sub, customerToken(r), cart.Clear{}))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sub := vars["subdomain"]
	table := tenant.ParseTable(vars["qr"])

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), sub)
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	order, err := h.Orders.Place(r.Context(), restaurant.ID, customerToken(r), table.ID, sub)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), vars["subdomain"])
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	order, err := h.Orders.Get(r.Context(), vars["orderId"], restaurant.ID)
	if err != nil {
		if errors.Is(err, platter.ErrNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), vars["subdomain"])
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	query := r.URL.Query()
	opts := domain.OrderListOptions{
		Sort:   query.Get("sort"),
		Search: query.Get("search"),
		Status: query.Get("status"),
	}
	opts.Page, _ = strconv.Atoi(query.Get("page"))
	opts.Limit, _ = strconv.Atoi(query.Get("limit"))

	orders, err := h.Orders.List(r.Context(), customerToken(r), restaurant.ID, opts)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) editOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sub := vars["subdomain"]

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), sub)
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	order, err := h.Orders.Edit(r.Context(), restaurant.ID, customerToken(r), vars["orderId"], sub)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurant, err := h.Restaurants.GetRestaurant(r.Context(), vars["subdomain"])
	if err != nil {
		writeRestaurantError(w, err)
		return
	}

	if err := h.Orders.Cancel(r.Context(), vars["orderId"], customerToken(r), restaurant.ID); err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// writeRestaurantError distinguishes an unknown tenant from an upstream
// failure when the restaurant lookup fails.
func writeRestaurantError(w http.ResponseWriter, err error) {
	if errors.Is(err, platter.ErrNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Failed to load restaurant", http.StatusBadGateway)
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingIdentifier):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, platter.ErrNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, service.ErrOrderSubmission):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// customerToken reads the anonymous session token, preferring the HTTP-only
// cookie over the client-readable copy.
func customerToken(r *http.Request) string {
	if c, err := r.Cookie(session.CookieName); err == nil {
		return c.Value
	}
	if c, err := r.Cookie(session.ClientCookieName); err == nil {
		return c.Value
	}
	return ""
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
