package services

import (
	"time"

	"github.com/surukutlaManoj/Food-Delivery/entity"
)

// UpdateStatus moves an order through the lifecycle table. The write is
// guarded on the status the transition was validated against, so a
// concurrent transition makes this one fail rather than double-apply.
// Entering delivered stamps the actual delivery time.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus, estimated *time.Time) (*entity.Order, error) {
	o, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(to) {
		return nil, &entity.InvalidTransitionError{From: o.Status, To: to}
	}

	fields := map[string]any{}
	if estimated != nil {
		fields["estimated_delivery_time"] = *estimated
	}
	if to == entity.StatusDelivered {
		fields["actual_delivery_time"] = s.now()
	}

	ok, err := s.Orders.UpdateStatusGuard(o.ID, o.Status, to, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		// lost a race; report against the status that won
		current, err := s.Orders.FindByID(o.ID)
		if err != nil {
			return nil, err
		}
		return nil, &entity.InvalidTransitionError{From: current.Status, To: to}
	}

	o, err = s.Orders.FindByID(o.ID)
	if err != nil {
		return nil, err
	}
	s.publishStatus(o, "")
	return o, nil
}

// Cancel is the customer-side transition to cancelled, allowed only while
// the order is pending or confirmed.
func (s *OrderService) Cancel(userID, orderID uint, reason string) (*entity.Order, error) {
	o, err := s.Orders.FindForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.StatusPending && o.Status != entity.StatusConfirmed {
		return nil, ErrInvalidState
	}

	ok, err := s.Orders.UpdateStatusGuard(o.ID, o.Status, entity.StatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidState
	}

	o, err = s.Orders.FindByID(o.ID)
	if err != nil {
		return nil, err
	}
	s.publishStatus(o, reason)
	return o, nil
}

func (s *OrderService) publishStatus(o *entity.Order, reason string) {
	payload := map[string]any{
		"orderId":               o.ID,
		"status":                o.Status,
		"estimatedDeliveryTime": o.EstimatedDeliveryTime,
	}
	if o.ActualDeliveryTime != nil {
		payload["actualDeliveryTime"] = o.ActualDeliveryTime
	}
	if reason != "" {
		payload["reason"] = reason
	}
	s.Notify.Publish(o.ID, Event{Type: EventOrderStatus, Payload: payload})
}
