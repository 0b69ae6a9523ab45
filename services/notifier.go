package services

// Event is a notification pushed to subscribers of an order topic.
// Types follow the wire names the storefront listens for.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

const (
	EventOrderCreated = "order:created"
	EventOrderStatus  = "order:status"
	EventOrderPayment = "order:payment"
)

// Notifier delivers events to subscribers of an order, at most once and
// best effort. Publish must never block or fail the calling operation.
type Notifier interface {
	Publish(orderID uint, event Event)
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Publish(uint, Event) {}
