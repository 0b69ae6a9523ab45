package cart

import (
	"log/slog"
)

// Storage is the durable key-value capability a cart session persists to.
// Implementations must treat Get on an absent cart as (nil, nil).
type Storage interface {
	Get() (*Cart, error)
	Set(Cart) error
	Remove() error
}

// Session binds a cart to its storage. Every mutation persists the new
// snapshot; the cart is a convenience cache, so persistence failures are
// logged and swallowed rather than surfaced to the caller.
type Session struct {
	cart  Cart
	store Storage
	log   *slog.Logger
}

// NewSession restores the persisted cart, falling back to an empty cart
// when nothing is stored or the snapshot cannot be read. Restored
// snapshots get a defensive totals recompute.
func NewSession(store Storage, log *slog.Logger) *Session {
	s := &Session{cart: Empty(), store: store, log: log}
	saved, err := store.Get()
	if err != nil {
		log.Warn("cart restore failed, starting empty", "error", err)
		return s
	}
	if saved != nil {
		s.cart = saved.recompute()
	}
	return s
}

// Cart returns the current snapshot.
func (s *Session) Cart() Cart {
	return s.cart
}

func (s *Session) SetRestaurant(id uint, name string) Cart {
	s.cart = s.cart.SetRestaurant(id, name)
	s.persist()
	return s.cart
}

func (s *Session) AddItem(item Item) (Cart, error) {
	next, err := s.cart.AddItem(item)
	if err != nil {
		return s.cart, err
	}
	s.cart = next
	s.persist()
	return s.cart, nil
}

func (s *Session) RemoveItem(id string) Cart {
	s.cart = s.cart.RemoveItem(id)
	s.persist()
	return s.cart
}

func (s *Session) UpdateQuantity(id string, quantity int) Cart {
	s.cart = s.cart.UpdateQuantity(id, quantity)
	s.persist()
	return s.cart
}

func (s *Session) Clear() Cart {
	s.cart = s.cart.Clear()
	if err := s.store.Remove(); err != nil {
		s.log.Warn("cart clear persist failed", "error", err)
	}
	return s.cart
}

func (s *Session) persist() {
	if err := s.store.Set(s.cart); err != nil {
		s.log.Warn("cart persist failed", "error", err)
	}
}
