package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"platter-guest/internal/cart"
	"platter-guest/internal/domain"
)

var (
	// ErrMissingIdentifier means the customer, table or business id was empty.
	// No network call is made in that case.
	ErrMissingIdentifier = errors.New("missing customer, table, or business id")
	// ErrEmptyCart means there was nothing to submit.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderSubmission wraps upstream failures of the submit/edit/cancel
	// calls. Single attempt, the guest resubmits manually.
	ErrOrderSubmission = errors.New("order submission failed")
)

// OrderService turns the session cart into upstream order calls. The cart is
// cleared only after the upstream accepted the order.
type OrderService struct {
	api       PlatterAPI
	carts     CartAccess
	publisher OrderPublisher
}

func NewOrderService(api PlatterAPI, carts CartAccess, publisher OrderPublisher) *OrderService {
	return &OrderService{api: api, carts: carts, publisher: publisher}
}

// Place submits the session's cart as a new order and returns the created
// order for navigation to the status view.
func (s *OrderService) Place(ctx context.Context, businessID, customerID, tableID, tenant string) (*domain.Order, error) {
	if businessID == "" || customerID == "" || tableID == "" {
		return nil, ErrMissingIdentifier
	}

	current := s.carts.Get(tenant, customerID)
	if len(current.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.api.PlaceOrder(ctx, businessID, domain.OrderRequest{
		Customer: customerID,
		Table:    tableID,
		Items:    orderItems(current.Lines),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderSubmission, err)
	}

	s.carts.Dispatch(tenant, customerID, cart.Clear{})
	s.publish(ctx, domain.OrderEvent{
		Type:     domain.EventOrderPlaced,
		Order:    order.ID,
		Business: businessID,
		Customer: customerID,
		Table:    tableID,
		Amount:   current.Total,
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID, businessID string) (*domain.Order, error) {
	if orderID == "" || businessID == "" {
		return nil, ErrMissingIdentifier
	}
	return s.api.GetOrder(ctx, orderID, businessID)
}

func (s *OrderService) List(ctx context.Context, customerID, businessID string, opts domain.OrderListOptions) (*domain.OrderPage, error) {
	if customerID == "" || businessID == "" {
		return nil, ErrMissingIdentifier
	}
	return s.api.ListCustomerOrders(ctx, customerID, businessID, opts)
}

// Edit replaces a not-yet-confirmed order's items with the session's current
// cart lines.
func (s *OrderService) Edit(ctx context.Context, businessID, customerID, orderID, tenant string) (*domain.Order, error) {
	if businessID == "" || customerID == "" || orderID == "" {
		return nil, ErrMissingIdentifier
	}

	current := s.carts.Get(tenant, customerID)
	if len(current.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.api.EditOrder(ctx, businessID, customerID, orderID, orderItems(current.Lines))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderSubmission, err)
	}

	s.carts.Dispatch(tenant, customerID, cart.Clear{})
	s.publish(ctx, domain.OrderEvent{
		Type:     domain.EventOrderUpdated,
		Order:    orderID,
		Business: businessID,
		Customer: customerID,
		Amount:   current.Total,
	})
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, orderID, customerID, businessID string) error {
	if orderID == "" || customerID == "" || businessID == "" {
		return ErrMissingIdentifier
	}
	if err := s.api.CancelOrder(ctx, orderID, customerID, businessID); err != nil {
		return fmt.Errorf("%w: %v", ErrOrderSubmission, err)
	}
	s.publish(ctx, domain.OrderEvent{
		Type:     domain.EventOrderCancelled,
		Order:    orderID,
		Business: businessID,
		Customer: customerID,
	})
	return nil
}

// publish is fire-and-forget: a missing broker never fails an order.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[guest-svc] failed to publish %s event for order %s: %v", event.Type, event.Order, err)
	}
}

func orderItems(lines []domain.CartLine) []domain.OrderItemRequest {
	items := make([]domain.OrderItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItemRequest{
			Item:     l.MenuItemID,
			Variety:  l.VarietyID,
			Quantity: l.Quantity,
		})
	}
	return items
}
