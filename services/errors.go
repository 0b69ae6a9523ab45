package services

import (
	"errors"
	"fmt"
)

// Domain errors returned to controllers. Each maps to a user-facing
// message; none is retried automatically.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found or unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidState       = errors.New("order cannot be cancelled at this stage")
	ErrAlreadyPaid        = errors.New("payment already processed")
	ErrPaymentFailed      = errors.New("payment failed, please try again")
)

// MinimumOrderError is returned when the item subtotal is below the
// restaurant's minimum order amount.
type MinimumOrderError struct {
	MinOrder float64
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order amount is $%.2f", e.MinOrder)
}
