package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem is an immutable priced snapshot of one cart line at checkout.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`

	// Customizations holds the selected option names with their price
	// deltas as JSON, shaped like []SelectedCustomization.
	Customizations datatypes.JSON `json:"customizations,omitempty"`
}

// SelectedCustomization is one chosen option on an order or cart line.
type SelectedCustomization struct {
	Name       string  `json:"name"`
	PriceDelta float64 `json:"priceDelta"`
}
