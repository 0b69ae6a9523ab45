package ws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/surukutlaManoj/Food-Delivery/services"
)

func testHub() *OrderHub {
	return NewOrderHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishReachesOnlyTheOrderRoom(t *testing.T) {
	hub := testHub()
	a := hub.Subscribe(1)
	b := hub.Subscribe(2)

	hub.Publish(1, services.Event{Type: services.EventOrderStatus})

	select {
	case ev := <-a.Events():
		if ev.Type != services.EventOrderStatus {
			t.Errorf("got event %q", ev.Type)
		}
	default:
		t.Fatal("subscriber of order 1 received nothing")
	}

	select {
	case ev := <-b.Events():
		t.Errorf("subscriber of order 2 received %q", ev.Type)
	default:
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := testHub()
	// no one joined; the publisher must not care
	hub.Publish(42, services.Event{Type: services.EventOrderCreated})
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	hub := testHub()
	hub.Publish(1, services.Event{Type: services.EventOrderCreated})

	sub := hub.Subscribe(1)
	select {
	case ev := <-sub.Events():
		t.Errorf("late subscriber got replayed event %q", ev.Type)
	default:
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe(1)

	// overflow the buffer; publishes past capacity are dropped
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(1, services.Event{Type: services.EventOrderStatus})
	}

	received := 0
	for {
		select {
		case <-sub.Events():
			received++
			continue
		default:
		}
		break
	}
	if received != subscriberBuffer {
		t.Errorf("received %d events, want %d buffered", received, subscriberBuffer)
	}
}

func TestUnsubscribeClosesChannelOnce(t *testing.T) {
	hub := testHub()
	sub := hub.Subscribe(1)

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub) // second leave is a no-op

	if _, open := <-sub.Events(); open {
		t.Error("channel still open after unsubscribe")
	}

	// room is gone; publishing must still be safe
	hub.Publish(1, services.Event{Type: services.EventOrderStatus})
}
