package cart

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/surukutlaManoj/Food-Delivery/entity"
)

func testItem(restID uint, name string, price float64, qty int) Item {
	return Item{
		Name:           name,
		UnitPrice:      price,
		Quantity:       qty,
		RestaurantID:   restID,
		RestaurantName: "Restaurant",
	}
}

func mustAdd(t *testing.T, c Cart, it Item) Cart {
	t.Helper()
	next, err := c.AddItem(it)
	if err != nil {
		t.Fatalf("AddItem(%s): %v", it.Name, err)
	}
	return next
}

func checkInvariant(t *testing.T, c Cart) {
	t.Helper()
	if (c.RestaurantID == 0) != (len(c.Items) == 0) {
		t.Errorf("restaurant binding %d does not match %d items", c.RestaurantID, len(c.Items))
	}
	for _, line := range c.Items {
		if line.RestaurantID != c.RestaurantID {
			t.Errorf("line %q bound to restaurant %d, cart bound to %d", line.Name, line.RestaurantID, c.RestaurantID)
		}
	}
}

func TestAddItemBindsAndPrices(t *testing.T) {
	c := mustAdd(t, Empty(), testItem(1, "Margherita", 10.00, 2))

	if c.RestaurantID != 1 {
		t.Fatalf("cart not bound: restaurantId = %d", c.RestaurantID)
	}
	if len(c.Items) != 1 || c.Items[0].ID == "" {
		t.Fatalf("expected one line with generated id, got %+v", c.Items)
	}
	if c.Subtotal != 20.00 || c.DeliveryFee != 2.99 || c.Tax != 1.60 || c.Total != 24.59 {
		t.Errorf("totals = %v/%v/%v/%v, want 20.00/2.99/1.60/24.59",
			c.Subtotal, c.DeliveryFee, c.Tax, c.Total)
	}
	checkInvariant(t, c)
}

func TestAddItemMergesMatchingLines(t *testing.T) {
	sel := []entity.SelectedCustomization{{Name: "Large", PriceDelta: 2.00}}

	it := testItem(1, "Margherita", 12.00, 1)
	it.Customizations = sel
	c := mustAdd(t, Empty(), it)
	c = mustAdd(t, c, it)

	if len(c.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(c.Items))
	}
	if c.Items[0].Quantity != 2 {
		t.Errorf("merged quantity = %d, want 2", c.Items[0].Quantity)
	}

	// different customizations must not merge
	other := testItem(1, "Margherita", 10.00, 1)
	c = mustAdd(t, c, other)
	if len(c.Items) != 2 {
		t.Errorf("expected separate line for different customizations, got %d lines", len(c.Items))
	}
	checkInvariant(t, c)
}

func TestAddItemCrossRestaurantConflict(t *testing.T) {
	c := mustAdd(t, Empty(), testItem(1, "Margherita", 10.00, 1))
	before := c

	_, err := c.AddItem(testItem(2, "Pad Thai", 9.00, 1))
	if !errors.Is(err, ErrCrossRestaurantConflict) {
		t.Fatalf("expected ErrCrossRestaurantConflict, got %v", err)
	}
	if len(c.Items) != len(before.Items) || c.RestaurantID != before.RestaurantID || c.Total != before.Total {
		t.Error("cart changed after rejected add")
	}
}

func TestRemoveLastItemClearsBinding(t *testing.T) {
	c := mustAdd(t, Empty(), testItem(1, "Margherita", 10.00, 1))
	c = c.RemoveItem(c.Items[0].ID)

	if !c.IsEmpty() || c.RestaurantID != 0 || c.RestaurantName != "" {
		t.Errorf("expected unbound empty cart, got %+v", c)
	}
	if c.Total != 0 || c.DeliveryFee != 0 {
		t.Errorf("expected zero totals, got total=%v fee=%v", c.Total, c.DeliveryFee)
	}
	checkInvariant(t, c)
}

func TestUpdateQuantity(t *testing.T) {
	c := mustAdd(t, Empty(), testItem(1, "Margherita", 10.00, 1))
	id := c.Items[0].ID

	c = c.UpdateQuantity(id, 3)
	if c.Items[0].Quantity != 3 || c.Subtotal != 30.00 {
		t.Errorf("quantity=%d subtotal=%v, want 3 / 30.00", c.Items[0].Quantity, c.Subtotal)
	}

	// zero quantity behaves as removal, down to an unbound cart
	c = c.UpdateQuantity(id, 0)
	if !c.IsEmpty() || c.RestaurantID != 0 {
		t.Errorf("expected empty unbound cart, got %+v", c)
	}
	checkInvariant(t, c)
}

func TestSetRestaurantClearsItems(t *testing.T) {
	c := mustAdd(t, Empty(), testItem(1, "Margherita", 10.00, 2))
	c = c.SetRestaurant(2, "Thai Garden")

	if len(c.Items) != 0 || c.RestaurantID != 2 {
		t.Errorf("expected empty cart bound to 2, got %+v", c)
	}
	if c.Total != 0 {
		t.Errorf("expected zero total after reset, got %v", c.Total)
	}
}

func TestInvariantAcrossOperationSequence(t *testing.T) {
	c := Empty()
	c = mustAdd(t, c, testItem(1, "Margherita", 10.00, 2))
	c = mustAdd(t, c, testItem(1, "Tiramisu", 6.50, 1))
	checkInvariant(t, c)

	c = c.UpdateQuantity(c.Items[0].ID, 1)
	checkInvariant(t, c)

	c = c.RemoveItem(c.Items[1].ID)
	checkInvariant(t, c)

	c = c.RemoveItem(c.Items[0].ID)
	checkInvariant(t, c)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionPersistsAcrossRestarts(t *testing.T) {
	store := NewMemoryStorage()

	s := NewSession(store, discardLogger())
	if _, err := s.AddItem(testItem(1, "Margherita", 10.00, 2)); err != nil {
		t.Fatal(err)
	}

	restored := NewSession(store, discardLogger())
	got := restored.Cart()
	if got.ItemCount() != 2 || got.RestaurantID != 1 || got.Total != 24.59 {
		t.Errorf("restored cart = %+v", got)
	}
}

type failingStorage struct{}

func (failingStorage) Get() (*Cart, error) { return nil, errors.New("corrupt snapshot") }
func (failingStorage) Set(Cart) error      { return errors.New("disk full") }
func (failingStorage) Remove() error       { return errors.New("disk full") }

func TestSessionSwallowsPersistenceFailures(t *testing.T) {
	s := NewSession(failingStorage{}, discardLogger())
	if !s.Cart().IsEmpty() {
		t.Error("unreadable snapshot should restore as empty cart")
	}

	c, err := s.AddItem(testItem(1, "Margherita", 10.00, 1))
	if err != nil {
		t.Fatalf("persist failure leaked to caller: %v", err)
	}
	if c.ItemCount() != 1 {
		t.Errorf("mutation lost on persist failure: %+v", c)
	}
	if got := s.Clear(); !got.IsEmpty() {
		t.Errorf("clear failed in memory: %+v", got)
	}
}
