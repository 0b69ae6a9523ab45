package pricing

import "github.com/shopspring/decimal"

const (
	// DefaultTaxRate is the flat 8% sales tax applied to every order.
	DefaultTaxRate = 0.08
	// DefaultDeliveryFee is charged on any non-empty cart bound to a restaurant.
	DefaultDeliveryFee = 2.99
)

// Totals holds the priced breakdown of a cart or order. Each field is
// rounded to cents independently so the displayed subtotal, tax and total
// never drift apart.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// ComputeTotals prices an order: tax = subtotal * taxRate,
// total = subtotal + deliveryFee + tax. Negative inputs are clamped to zero.
func ComputeTotals(subtotal, deliveryFee, taxRate float64) Totals {
	if subtotal < 0 {
		subtotal = 0
	}
	if deliveryFee < 0 {
		deliveryFee = 0
	}

	sub := decimal.NewFromFloat(subtotal)
	fee := decimal.NewFromFloat(deliveryFee)
	tax := sub.Mul(decimal.NewFromFloat(taxRate))
	total := sub.Add(fee).Add(tax)

	return Totals{
		Subtotal:    roundCents(sub),
		DeliveryFee: roundCents(fee),
		Tax:         roundCents(tax),
		Total:       roundCents(total),
	}
}

// roundCents rounds half away from zero on the cent boundary.
func roundCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
