package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	// TotalAmount is the item subtotal; FinalAmount adds fee and tax.
	TotalAmount float64 `json:"totalAmount"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	FinalAmount float64 `json:"finalAmount"`

	DeliveryAddress DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`

	Status        OrderStatus   `gorm:"type:varchar(16);default:pending;index" json:"status"`
	PaymentID     string        `gorm:"not null" json:"paymentId"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);default:pending;index" json:"paymentStatus"`

	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`

	SpecialInstructions string `gorm:"size:500" json:"specialInstructions,omitempty"`
}

type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}
