// Package cart implements the storefront cart as a set of pure transition
// functions over an immutable cart value, plus a Session that persists the
// result of every mutation to a Storage backend.
package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/surukutlaManoj/Food-Delivery/entity"
	"github.com/surukutlaManoj/Food-Delivery/pricing"
)

// ErrCrossRestaurantConflict is returned when an item from another
// restaurant is added to a bound cart. The cart is left unchanged.
var ErrCrossRestaurantConflict = errors.New("cart already has items from another restaurant")

// Item is one cart line. ID is unique per line, generated on insert.
type Item struct {
	ID             string                         `json:"id"`
	Name           string                         `json:"name"`
	UnitPrice      float64                        `json:"unitPrice"`
	Quantity       int                            `json:"quantity"`
	Customizations []entity.SelectedCustomization `json:"customizations,omitempty"`
	RestaurantID   uint                           `json:"restaurantId"`
	RestaurantName string                         `json:"restaurantName"`
}

// Cart is a snapshot of the not-yet-submitted order. RestaurantID is zero
// exactly when Items is empty; derived totals are recomputed after every
// transition, never set by hand.
type Cart struct {
	Items          []Item  `json:"items"`
	RestaurantID   uint    `json:"restaurantId,omitempty"`
	RestaurantName string  `json:"restaurantName,omitempty"`
	Subtotal       float64 `json:"subtotal"`
	DeliveryFee    float64 `json:"deliveryFee"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// Empty returns the initial cart state.
func Empty() Cart {
	return Cart{Items: []Item{}}
}

// SetRestaurant clears the cart and binds it to a restaurant.
func (c Cart) SetRestaurant(id uint, name string) Cart {
	c.Items = []Item{}
	c.RestaurantID = id
	c.RestaurantName = name
	return c.recompute()
}

// AddItem merges the item into an existing line when name and
// customizations match exactly, otherwise appends a new line with a fresh
// id. Adding across restaurants is rejected with ErrCrossRestaurantConflict.
func (c Cart) AddItem(item Item) (Cart, error) {
	if c.RestaurantID != 0 && c.RestaurantID != item.RestaurantID {
		return c, ErrCrossRestaurantConflict
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items := append([]Item(nil), c.Items...)
	merged := false
	for i, line := range items {
		if line.Name == item.Name && sameCustomizations(line.Customizations, item.Customizations) {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		item.ID = uuid.NewString()
		items = append(items, item)
	}

	c.Items = items
	c.RestaurantID = item.RestaurantID
	c.RestaurantName = item.RestaurantName
	return c.recompute(), nil
}

// RemoveItem drops the line with the given id. When the last line goes,
// the restaurant binding is cleared too.
func (c Cart) RemoveItem(id string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, line := range c.Items {
		if line.ID != id {
			items = append(items, line)
		}
	}
	c.Items = items
	if len(items) == 0 {
		c.RestaurantID = 0
		c.RestaurantName = ""
	}
	return c.recompute()
}

// UpdateQuantity sets the quantity on a line; quantity <= 0 removes it.
func (c Cart) UpdateQuantity(id string, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}
	items := append([]Item(nil), c.Items...)
	for i, line := range items {
		if line.ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	c.Items = items
	return c.recompute()
}

// Clear resets to the empty initial cart.
func (c Cart) Clear() Cart {
	return Empty().recompute()
}

// ItemCount is the total quantity across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, line := range c.Items {
		n += line.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// recompute derives subtotal, delivery fee, tax and total from the lines.
// A non-empty bound cart carries the flat delivery fee.
func (c Cart) recompute() Cart {
	subtotal := 0.0
	for _, line := range c.Items {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	fee := 0.0
	if len(c.Items) > 0 && c.RestaurantID != 0 {
		fee = pricing.DefaultDeliveryFee
	}
	t := pricing.ComputeTotals(subtotal, fee, pricing.DefaultTaxRate)
	c.Subtotal = t.Subtotal
	c.DeliveryFee = t.DeliveryFee
	c.Tax = t.Tax
	c.Total = t.Total
	return c
}

// sameCustomizations compares selections as an ordered list, the same way
// two lines are considered mergeable at add time.
func sameCustomizations(a, b []entity.SelectedCustomization) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
