package pricing

import (
	"math"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name        string
		subtotal    float64
		deliveryFee float64
		taxRate     float64
		want        Totals
	}{
		{
			name:     "checkout example",
			subtotal: 20.00, deliveryFee: 2.99, taxRate: DefaultTaxRate,
			want: Totals{Subtotal: 20.00, DeliveryFee: 2.99, Tax: 1.60, Total: 24.59},
		},
		{
			name:     "zero cart",
			subtotal: 0, deliveryFee: 0, taxRate: DefaultTaxRate,
			want: Totals{},
		},
		{
			name:     "tax rounds half away from zero",
			subtotal: 10.31, deliveryFee: 0, taxRate: DefaultTaxRate,
			// 10.31 * 0.08 = 0.8248 -> 0.82, total 11.1348 -> 11.13
			want: Totals{Subtotal: 10.31, Tax: 0.82, Total: 11.13},
		},
		{
			name:     "half cent rounds up",
			subtotal: 10.625, deliveryFee: 0, taxRate: 0,
			want: Totals{Subtotal: 10.63, Total: 10.63},
		},
		{
			name:     "negative inputs clamped",
			subtotal: -5, deliveryFee: -1, taxRate: DefaultTaxRate,
			want: Totals{},
		},
		{
			name:     "fee only",
			subtotal: 0, deliveryFee: 2.99, taxRate: DefaultTaxRate,
			want: Totals{DeliveryFee: 2.99, Total: 2.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.subtotal, tt.deliveryFee, tt.taxRate)
			if got != tt.want {
				t.Errorf("ComputeTotals(%v, %v, %v) = %+v, want %+v",
					tt.subtotal, tt.deliveryFee, tt.taxRate, got, tt.want)
			}
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	a := ComputeTotals(13.37, 2.99, DefaultTaxRate)
	b := ComputeTotals(13.37, 2.99, DefaultTaxRate)
	if a != b {
		t.Errorf("same inputs gave different totals: %+v vs %+v", a, b)
	}
}

func TestComputeTotalsSumsExactly(t *testing.T) {
	cases := []struct{ subtotal, fee float64 }{
		{20.00, 2.99}, {15.55, 0}, {9.99, 1.49}, {100.01, 4.99},
	}
	for _, c := range cases {
		got := ComputeTotals(c.subtotal, c.fee, DefaultTaxRate)
		sum := math.Round((got.Subtotal+got.DeliveryFee+got.Tax)*100) / 100
		if sum != got.Total {
			t.Errorf("subtotal %v fee %v: %v + %v + %v != total %v",
				c.subtotal, c.fee, got.Subtotal, got.DeliveryFee, got.Tax, got.Total)
		}
	}
}
