package platter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"platter-guest/internal/domain"
)

// ErrNotFound is returned when the upstream answers 404 for a business or
// order lookup.
var ErrNotFound = errors.New("resource not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a thin consumer of the external Platter API. Every call is a
// single attempt; retrying is left to the guest.
type Client struct {
	baseURL string
	http    HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: client}
}

// GetBusiness fetches the tenant profile for a subdomain.
func (c *Client) GetBusiness(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	var body struct {
		Data domain.Restaurant `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/account/business/"+url.PathEscape(subdomain), nil, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// GetMenuItems fetches the menu collection for a subdomain.
func (c *Client) GetMenuItems(ctx context.Context, subdomain string) (*domain.MenuPage, error) {
	var body struct {
		Data domain.MenuPage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/business/subdomain/"+url.PathEscape(subdomain)+"/menu-items", nil, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// PlaceOrder submits a new order for a business.
func (c *Client) PlaceOrder(ctx context.Context, businessID string, req domain.OrderRequest) (*domain.Order, error) {
	var body struct {
		Data domain.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/order/"+url.PathEscape(businessID), req, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID, businessID string) (*domain.Order, error) {
	var body struct {
		Data domain.Order `json:"data"`
	}
	path := "/order/" + url.PathEscape(orderID) + "/" + url.PathEscape(businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// ListCustomerOrders fetches a customer's order history with optional
// pagination, sorting, search and status filters.
func (c *Client) ListCustomerOrders(ctx context.Context, customerID, businessID string, opts domain.OrderListOptions) (*domain.OrderPage, error) {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}

	path := "/order/customer/" + url.PathEscape(customerID) + "/" + url.PathEscape(businessID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var body struct {
		Data domain.OrderPage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// EditOrder replaces the items of a previously placed, not-yet-confirmed
// order.
func (c *Client) EditOrder(ctx context.Context, businessID, customerID, orderID string, items []domain.OrderItemRequest) (*domain.Order, error) {
	payload := map[string]interface{}{
		"order": orderID,
		"items": items,
	}
	var body struct {
		Data domain.Order `json:"data"`
	}
	path := "/order/business/" + url.PathEscape(businessID) + "/customer/" + url.PathEscape(customerID)
	if err := c.do(ctx, http.MethodPatch, path, payload, &body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// CancelOrder asks the upstream to cancel an order.
func (c *Client) CancelOrder(ctx context.Context, orderID, customerID, businessID string) error {
	payload := map[string]string{
		"order":    orderID,
		"customer": customerID,
		"business": businessID,
	}
	return c.do(ctx, http.MethodPost, "/order/customer/status/cancel", payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("platter api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("platter api %s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
