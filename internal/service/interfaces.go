package service

import (
	"context"

	"platter-guest/internal/cart"
	"platter-guest/internal/domain"
)

type RestaurantServiceInterface interface {
	GetRestaurant(ctx context.Context, subdomain string) (*domain.Restaurant, error)
	GetMenu(ctx context.Context, subdomain string) (*domain.MenuPage, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, businessID, customerID, tableID, tenant string) (*domain.Order, error)
	Get(ctx context.Context, orderID, businessID string) (*domain.Order, error)
	List(ctx context.Context, customerID, businessID string, opts domain.OrderListOptions) (*domain.OrderPage, error)
	Edit(ctx context.Context, businessID, customerID, orderID, tenant string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, customerID, businessID string) error
}

// PlatterAPI is the slice of the external backend this service consumes.
type PlatterAPI interface {
	GetBusiness(ctx context.Context, subdomain string) (*domain.Restaurant, error)
	GetMenuItems(ctx context.Context, subdomain string) (*domain.MenuPage, error)
	PlaceOrder(ctx context.Context, businessID string, req domain.OrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID, businessID string) (*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID, businessID string, opts domain.OrderListOptions) (*domain.OrderPage, error)
	EditOrder(ctx context.Context, businessID, customerID, orderID string, items []domain.OrderItemRequest) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, customerID, businessID string) error
}

type RestaurantCache interface {
	RestaurantKey(subdomain string) string
	MenuKey(subdomain string) string
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// CartAccess is the slice of the cart store the order flow needs.
type CartAccess interface {
	Get(tenant, token string) domain.Cart
	Dispatch(tenant, token string, action cart.Action) domain.Cart
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ CartAccess                 = (*cart.Store)(nil)
)
