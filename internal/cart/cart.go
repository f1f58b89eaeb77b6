package cart

import "platter-guest/internal/domain"

// Action is a cart transition. Apply is the only way a cart changes.
type Action interface {
	isAction()
}

// AddItem appends a new line or, when a line with the same
// (menu item, variety) key exists, increments its quantity. A non-empty note
// overwrites the existing one.
type AddItem struct {
	Item     domain.MenuItem
	Variety  *domain.Variety
	Quantity int
	Note     string
}

// RemoveItem deletes the matching line entirely.
type RemoveItem struct {
	MenuItemID string
	VarietyID  string
}

// UpdateQuantity sets the line's quantity to exactly Quantity. Zero or
// negative behaves as RemoveItem.
type UpdateQuantity struct {
	MenuItemID string
	VarietyID  string
	Quantity   int
}

// Clear empties the cart.
type Clear struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}

// Apply produces the next cart state. The input cart is never mutated, and
// the aggregates are always recomputed by folding over the full line list so
// they cannot drift from the lines.
func Apply(c domain.Cart, action Action) domain.Cart {
	switch a := action.(type) {
	case AddItem:
		quantity := a.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		varietyID := ""
		if a.Variety != nil {
			varietyID = a.Variety.ID
		}

		lines := cloneLines(c.Lines)
		merged := false
		for i := range lines {
			if lines[i].MenuItemID == a.Item.ID && lines[i].VarietyID == varietyID {
				lines[i].Quantity += quantity
				if a.Note != "" {
					lines[i].Note = a.Note
				}
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, domain.CartLine{
				MenuItemID: a.Item.ID,
				VarietyID:  varietyID,
				Quantity:   quantity,
				MenuItem:   a.Item,
				Variety:    a.Variety,
				Note:       a.Note,
			})
		}
		return recompute(lines)

	case RemoveItem:
		lines := make([]domain.CartLine, 0, len(c.Lines))
		for _, l := range c.Lines {
			if l.MenuItemID == a.MenuItemID && l.VarietyID == a.VarietyID {
				continue
			}
			lines = append(lines, l)
		}
		return recompute(lines)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Apply(c, RemoveItem{MenuItemID: a.MenuItemID, VarietyID: a.VarietyID})
		}
		lines := cloneLines(c.Lines)
		for i := range lines {
			if lines[i].MenuItemID == a.MenuItemID && lines[i].VarietyID == a.VarietyID {
				lines[i].Quantity = a.Quantity
			}
		}
		return recompute(lines)

	case Clear:
		return domain.Cart{Lines: []domain.CartLine{}}

	default:
		return c
	}
}

// Quantity reports the quantity currently in the cart for a composite key,
// zero when the line is absent.
func Quantity(c domain.Cart, menuItemID, varietyID string) int {
	for _, l := range c.Lines {
		if l.MenuItemID == menuItemID && l.VarietyID == varietyID {
			return l.Quantity
		}
	}
	return 0
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

func recompute(lines []domain.CartLine) domain.Cart {
	count := 0
	var total int64
	for _, l := range lines {
		count += l.Quantity
		total += l.UnitPrice() * int64(l.Quantity)
	}
	return domain.Cart{Lines: lines, ItemCount: count, Total: total}
}
