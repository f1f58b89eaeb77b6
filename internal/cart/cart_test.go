package cart

import (
	"testing"

	"platter-guest/internal/domain"

	"github.com/stretchr/testify/assert"
)

func menuItem(id string, price int64, varieties ...domain.Variety) domain.MenuItem {
	return domain.MenuItem{
		ID:          id,
		Name:        "item " + id,
		Price:       price,
		IsAvailable: true,
		Varieties:   varieties,
	}
}

func variety(id string, price int64) domain.Variety {
	return domain.Variety{ID: id, Name: "variety " + id, Price: price, IsAvailable: true}
}

// aggregates must always equal the fold over the lines.
func assertAggregates(t *testing.T, c domain.Cart) {
	t.Helper()
	count := 0
	var total int64
	for _, l := range c.Lines {
		count += l.Quantity
		total += l.UnitPrice() * int64(l.Quantity)
	}
	assert.Equal(t, count, c.ItemCount)
	assert.Equal(t, total, c.Total)
}

func TestAddMergesSameCompositeKey(t *testing.T) {
	small := variety("S", 500)
	item := menuItem("A", 700, small)

	c := Apply(domain.Cart{}, AddItem{Item: item, Variety: &small, Quantity: 1})
	c = Apply(c, AddItem{Item: item, Variety: &small, Quantity: 2})

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, 3, c.ItemCount)
	assert.Equal(t, int64(1500), c.Total)
	assertAggregates(t, c)
}

func TestAddDifferentVarietiesStaySeparate(t *testing.T) {
	small := variety("S", 500)
	large := variety("L", 900)
	item := menuItem("A", 700, small, large)

	c := Apply(domain.Cart{}, AddItem{Item: item, Variety: &small})
	c = Apply(c, AddItem{Item: item, Variety: &large})
	c = Apply(c, AddItem{Item: item})

	assert.Len(t, c.Lines, 3)
	assert.Equal(t, 3, c.ItemCount)
	assert.Equal(t, int64(500+900+700), c.Total)
	assertAggregates(t, c)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := Apply(domain.Cart{}, AddItem{Item: menuItem("A", 700)})
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddOverwritesNoteOnlyWhenSupplied(t *testing.T) {
	item := menuItem("A", 700)

	c := Apply(domain.Cart{}, AddItem{Item: item, Note: "no onions"})
	c = Apply(c, AddItem{Item: item})
	assert.Equal(t, "no onions", c.Lines[0].Note)

	c = Apply(c, AddItem{Item: item, Note: "extra cheese"})
	assert.Equal(t, "extra cheese", c.Lines[0].Note)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	item := menuItem("A", 700)

	c := Apply(domain.Cart{}, AddItem{Item: item, Quantity: 5})
	c = Apply(c, UpdateQuantity{MenuItemID: "A", Quantity: 2})

	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, int64(1400), c.Total)
	assertAggregates(t, c)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	small := variety("S", 500)
	item := menuItem("A", 700, small)

	c := Apply(domain.Cart{}, AddItem{Item: item, Variety: &small})
	c = Apply(c, UpdateQuantity{MenuItemID: "A", VarietyID: "S", Quantity: 0})

	assert.Empty(t, c.Lines)
	assert.Equal(t, 0, c.ItemCount)
	assert.Equal(t, int64(0), c.Total)
}

func TestRemoveAbsentKeyIsNoOp(t *testing.T) {
	c := Apply(domain.Cart{}, AddItem{Item: menuItem("A", 700)})
	before := c

	c = Apply(c, RemoveItem{MenuItemID: "ghost"})
	assert.Equal(t, before.Lines, c.Lines)
	assert.Equal(t, before.ItemCount, c.ItemCount)
	assert.Equal(t, before.Total, c.Total)
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	item := menuItem("A", 700)

	c := Apply(domain.Cart{}, AddItem{Item: item, Quantity: 4})
	c = Apply(c, RemoveItem{MenuItemID: "A"})

	assert.Empty(t, c.Lines)
	assertAggregates(t, c)
}

func TestClearResetsEverything(t *testing.T) {
	c := Apply(domain.Cart{}, AddItem{Item: menuItem("A", 700), Quantity: 2})
	c = Apply(c, AddItem{Item: menuItem("B", 300)})
	c = Apply(c, Clear{})

	assert.Empty(t, c.Lines)
	assert.Equal(t, 0, c.ItemCount)
	assert.Equal(t, int64(0), c.Total)
}

func TestScenarioTotals(t *testing.T) {
	small := variety("S", 500)
	x := menuItem("X", 400, small)
	y := menuItem("Y", 1000)

	c := Apply(domain.Cart{}, AddItem{Item: x, Variety: &small, Quantity: 2})
	c = Apply(c, AddItem{Item: y, Quantity: 1})

	assert.Equal(t, int64(2000), c.Total)
	assert.Equal(t, 3, c.ItemCount)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	item := menuItem("A", 700)
	base := Apply(domain.Cart{}, AddItem{Item: item, Quantity: 1})

	_ = Apply(base, UpdateQuantity{MenuItemID: "A", Quantity: 9})
	assert.Equal(t, 1, base.Lines[0].Quantity)
	assert.Equal(t, 1, base.ItemCount)
}

func TestSnapshotSurvivesMenuChanges(t *testing.T) {
	item := menuItem("A", 700)
	c := Apply(domain.Cart{}, AddItem{Item: item, Quantity: 1})

	// Upstream price changes must not affect already-carted lines.
	item.Price = 9900
	assert.Equal(t, int64(700), c.Lines[0].UnitPrice())
	assert.Equal(t, int64(700), c.Total)
}

func TestQuantityLookup(t *testing.T) {
	small := variety("S", 500)
	item := menuItem("A", 700, small)

	c := Apply(domain.Cart{}, AddItem{Item: item, Variety: &small, Quantity: 3})
	assert.Equal(t, 3, Quantity(c, "A", "S"))
	assert.Equal(t, 0, Quantity(c, "A", ""))
	assert.Equal(t, 0, Quantity(c, "B", "S"))
}

func TestStoreKeepsTenantsApart(t *testing.T) {
	s := NewStore()
	item := menuItem("A", 700)

	s.Dispatch("bistro", "tok", AddItem{Item: item, Quantity: 2})
	s.Dispatch("cafe", "tok", AddItem{Item: item, Quantity: 1})

	assert.Equal(t, 2, s.Get("bistro", "tok").ItemCount)
	assert.Equal(t, 1, s.Get("cafe", "tok").ItemCount)
	assert.Equal(t, 0, s.Get("bistro", "other").ItemCount)
}

func TestStoreClearDropsCart(t *testing.T) {
	s := NewStore()

	s.Dispatch("bistro", "tok", AddItem{Item: menuItem("A", 700)})
	cleared := s.Dispatch("bistro", "tok", Clear{})

	assert.Empty(t, cleared.Lines)
	assert.Equal(t, 0, s.Get("bistro", "tok").ItemCount)
}
