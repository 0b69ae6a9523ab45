// Package ws pushes order lifecycle events to websocket subscribers.
// Subscribers join the room of a single order; delivery is best effort,
// at most once, and never blocks the publisher.
package ws

import (
	"log/slog"
	"sync"

	"github.com/surukutlaManoj/Food-Delivery/services"
)

const subscriberBuffer = 8

// OrderHub is the room registry: orderID -> set of subscribers.
// It implements services.Notifier.
type OrderHub struct {
	mu    sync.Mutex
	rooms map[uint]map[*Subscriber]struct{}
	log   *slog.Logger
}

// Subscriber receives the events of one order on a buffered channel.
type Subscriber struct {
	orderID uint
	events  chan services.Event
}

// Events is the subscriber's receive side. It is closed on Unsubscribe.
func (s *Subscriber) Events() <-chan services.Event {
	return s.events
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	return &OrderHub{
		rooms: make(map[uint]map[*Subscriber]struct{}),
		log:   log,
	}
}

// Subscribe joins the order's room. Events published before the join are
// not replayed.
func (h *OrderHub) Subscribe(orderID uint) *Subscriber {
	sub := &Subscriber{orderID: orderID, events: make(chan services.Event, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[orderID] == nil {
		h.rooms[orderID] = make(map[*Subscriber]struct{})
	}
	h.rooms[orderID][sub] = struct{}{}
	return sub
}

// Unsubscribe leaves the room and closes the subscriber's channel.
func (h *OrderHub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[sub.orderID]
	if !ok {
		return
	}
	if _, ok := room[sub]; !ok {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, sub.orderID)
	}
	close(sub.events)
}

// Publish fans the event out to the order's room. A subscriber that has
// fallen behind loses the event rather than stalling the order flow.
func (h *OrderHub) Publish(orderID uint, event services.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.rooms[orderID] {
		select {
		case sub.events <- event:
		default:
			h.log.Warn("dropping event for slow subscriber",
				"orderId", orderID, "type", event.Type)
		}
	}
}
