package services

import (
	"errors"
	"testing"

	"github.com/surukutlaManoj/Food-Delivery/entity"
)

func seedOrder(fx *fixture, t *testing.T, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o, err := fx.svc.Create(7, validCreateIn())
	if err != nil {
		t.Fatal(err)
	}
	fx.orders.byID[o.ID].Status = status
	return o
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		wantErr bool
	}{
		{"pending to confirmed", entity.StatusPending, entity.StatusConfirmed, false},
		{"pending to cancelled", entity.StatusPending, entity.StatusCancelled, false},
		{"pending skips to preparing", entity.StatusPending, entity.StatusPreparing, true},
		{"confirmed to preparing", entity.StatusConfirmed, entity.StatusPreparing, false},
		{"confirmed to cancelled", entity.StatusConfirmed, entity.StatusCancelled, false},
		{"preparing to ready", entity.StatusPreparing, entity.StatusReady, false},
		{"preparing cannot cancel", entity.StatusPreparing, entity.StatusCancelled, true},
		{"ready to delivering", entity.StatusReady, entity.StatusDelivering, false},
		{"delivering to delivered", entity.StatusDelivering, entity.StatusDelivered, false},
		{"delivered is terminal", entity.StatusDelivered, entity.StatusPending, true},
		{"delivered cannot repeat", entity.StatusDelivered, entity.StatusDelivered, true},
		{"cancelled is terminal", entity.StatusCancelled, entity.StatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(0.95)
			o := seedOrder(fx, t, tt.from)

			_, err := fx.svc.UpdateStatus(o.ID, tt.to, nil)
			if tt.wantErr {
				var invalid *entity.InvalidTransitionError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidTransitionError, got %v", err)
				}
				if invalid.From != tt.from || invalid.To != tt.to {
					t.Errorf("error identifies %s->%s, want %s->%s",
						invalid.From, invalid.To, tt.from, tt.to)
				}
				stored, _ := fx.orders.FindByID(o.ID)
				if stored.Status != tt.from {
					t.Errorf("order mutated on rejected transition: %s", stored.Status)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			stored, _ := fx.orders.FindByID(o.ID)
			if stored.Status != tt.to {
				t.Errorf("status = %s, want %s", stored.Status, tt.to)
			}
		})
	}
}

func TestDeliveredStampsActualDeliveryTime(t *testing.T) {
	fx := newFixture(0.95)
	o := seedOrder(fx, t, entity.StatusDelivering)

	updated, err := fx.svc.UpdateStatus(o.ID, entity.StatusDelivered, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ActualDeliveryTime == nil || !updated.ActualDeliveryTime.Equal(fixedNow) {
		t.Errorf("actualDeliveryTime = %v, want %v", updated.ActualDeliveryTime, fixedNow)
	}
	if ev := fx.events.last(); ev == nil || ev.event.Type != EventOrderStatus {
		t.Errorf("expected %s event, got %+v", EventOrderStatus, ev)
	}
	if ev := fx.events.last(); ev.event.Payload["actualDeliveryTime"] == nil {
		t.Error("status event missing actualDeliveryTime")
	}
}

func TestCancelAllowedStates(t *testing.T) {
	for _, from := range []entity.OrderStatus{entity.StatusPending, entity.StatusConfirmed} {
		fx := newFixture(0.95)
		o := seedOrder(fx, t, from)

		cancelled, err := fx.svc.Cancel(7, o.ID, "changed my mind")
		if err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if cancelled.Status != entity.StatusCancelled {
			t.Errorf("status = %s, want cancelled", cancelled.Status)
		}
		ev := fx.events.last()
		if ev == nil || ev.event.Type != EventOrderStatus {
			t.Fatalf("expected %s event, got %+v", EventOrderStatus, ev)
		}
		if ev.event.Payload["reason"] != "changed my mind" {
			t.Errorf("event missing cancel reason: %+v", ev.event.Payload)
		}
	}
}

func TestCancelRejectedStates(t *testing.T) {
	for _, from := range []entity.OrderStatus{
		entity.StatusPreparing, entity.StatusReady, entity.StatusDelivering,
		entity.StatusDelivered, entity.StatusCancelled,
	} {
		fx := newFixture(0.95)
		o := seedOrder(fx, t, from)

		if _, err := fx.svc.Cancel(7, o.ID, ""); !errors.Is(err, ErrInvalidState) {
			t.Errorf("cancel from %s: got %v, want ErrInvalidState", from, err)
		}
		stored, _ := fx.orders.FindByID(o.ID)
		if stored.Status != from {
			t.Errorf("order mutated on rejected cancel: %s", stored.Status)
		}
	}
}
