package domain

import "time"

// Restaurant is the tenant profile as served by the Platter API. It is
// read-only from this service's point of view.
type Restaurant struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	ResolvedName string         `json:"resolvedName"`
	Description  string         `json:"description"`
	Subdomain    string         `json:"subdomain"`
	Website      string         `json:"website,omitempty"`
	Address      *Address       `json:"address,omitempty"`
	Contacts     Contacts       `json:"contacts"`
	Hours        []OpeningHours `json:"hours"`
	Logo         string         `json:"logo,omitempty"`
	Image        string         `json:"image,omitempty"`
	Socials      []string       `json:"socials,omitempty"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

type Contacts struct {
	Email ContactEmail `json:"email"`
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
}

type ContactEmail struct {
	Value    string `json:"value"`
	Verified bool   `json:"verified"`
}

type OpeningHours struct {
	Day     string `json:"day"`
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

// Variety is a priced sub-option of a menu item (e.g. a size).
type Variety struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

type MenuCategory struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MenuItem prices are in minor currency units.
type MenuItem struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	ResolvedName string       `json:"resolvedName,omitempty"`
	Description  string       `json:"description,omitempty"`
	Price        int64        `json:"price"`
	Image        string       `json:"image,omitempty"`
	IsAvailable  bool         `json:"isAvailable"`
	Category     MenuCategory `json:"category"`
	Varieties    []Variety    `json:"varieties,omitempty"`
}

// FindVariety returns the variety with the given id, or nil.
func (m *MenuItem) FindVariety(varietyID string) *Variety {
	for i := range m.Varieties {
		if m.Varieties[i].ID == varietyID {
			return &m.Varieties[i]
		}
	}
	return nil
}

// MenuPage is one page of the upstream menu-items collection.
type MenuPage struct {
	Docs         []MenuItem `json:"docs"`
	TotalItems   int        `json:"totalItems"`
	TotalPages   int        `json:"totalPages"`
	CurrentPage  int        `json:"currentPage"`
	ItemsPerPage int        `json:"itemsPerPage"`
}

// MenuSection groups menu items under one category for display.
type MenuSection struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// CartLine is one cart entry, identified by (menu item, variety). The menu
// item and variety are snapshots taken at add time so the cart stays valid
// even if the menu changes upstream.
type CartLine struct {
	MenuItemID string   `json:"menu_item_id"`
	VarietyID  string   `json:"variety_id,omitempty"`
	Quantity   int      `json:"quantity"`
	MenuItem   MenuItem `json:"menu_item"`
	Variety    *Variety `json:"variety,omitempty"`
	Note       string   `json:"note,omitempty"`
}

// UnitPrice is the selected variety's price if one is set, else the item's
// base price.
func (l CartLine) UnitPrice() int64 {
	if l.Variety != nil {
		return l.Variety.Price
	}
	return l.MenuItem.Price
}

// Cart holds the lines plus the derived aggregates. ItemCount and Total are
// recomputed from the lines after every mutation.
type Cart struct {
	Lines     []CartLine `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     int64      `json:"total"`
}

// Table is the identity parsed from a scanned QR path segment.
type Table struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// OrderItemRequest is one line of an order submission payload.
type OrderItemRequest struct {
	Item     string `json:"item"`
	Variety  string `json:"variety"`
	Quantity int    `json:"quantity"`
}

type OrderRequest struct {
	Customer string             `json:"customer"`
	Table    string             `json:"table"`
	Items    []OrderItemRequest `json:"items"`
}

type OrderItem struct {
	Item         string `json:"item"`
	Variety      string `json:"variety,omitempty"`
	Status       string `json:"status,omitempty"`
	Name         string `json:"name"`
	ResolvedName string `json:"resolvedName,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
	Total        int64  `json:"total"`
	Image        string `json:"image,omitempty"`
	Description  string `json:"description,omitempty"`
}

type OrderTable struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	ResolvedName string `json:"resolvedName,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Order is the transient echo of the authoritative order record held by the
// Platter API.
type Order struct {
	ID            string      `json:"_id"`
	Customer      string      `json:"customer"`
	OrderNumber   int         `json:"orderNumber"`
	Amount        int64       `json:"amount"`
	VAT           int64       `json:"vat"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Table         OrderTable  `json:"table"`
	Items         []OrderItem `json:"items"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
}

// OrderPage is one page of a customer's order history.
type OrderPage struct {
	Docs         []Order `json:"docs"`
	TotalItems   int     `json:"totalItems"`
	TotalPages   int     `json:"totalPages"`
	CurrentPage  int     `json:"currentPage"`
	ItemsPerPage int     `json:"itemsPerPage"`
}

// OrderListOptions are the passthrough query parameters for order history.
type OrderListOptions struct {
	Page   int
	Limit  int
	Sort   string
	Search string
	Status string
}

// OrderEvent is published to Kafka on order lifecycle changes.
type OrderEvent struct {
	Type      string    `json:"type"`
	Order     string    `json:"order"`
	Business  string    `json:"business"`
	Customer  string    `json:"customer"`
	Table     string    `json:"table,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced    = "order_placed"
	EventOrderUpdated   = "order_updated"
	EventOrderCancelled = "order_cancelled"
)
