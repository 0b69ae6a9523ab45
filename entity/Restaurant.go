package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Cuisine     string  `gorm:"index" json:"cuisine"`
	Rating      float64 `json:"rating"`
	// DeliveryTime is the advertised window, e.g. "25-35 min".
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  float64 `json:"deliveryFee"`
	MinOrder     float64 `json:"minOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`

	Street string `json:"street"`
	City   string `json:"city"`

	// Menu holds the nested category/item/customization document as JSON,
	// shaped like []MenuCategory.
	Menu datatypes.JSON `json:"menu"`

	Orders []Order `json:"-"`
}

// MenuCategory groups menu items under a named section.
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

type MenuItem struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Image          string          `json:"image,omitempty"`
	Dietary        []string        `json:"dietary,omitempty"`
	Customizations []Customization `json:"customizations,omitempty"`
	IsAvailable    bool            `json:"isAvailable"`
}

// Customization is a named option group on a menu item, e.g. "Size".
type Customization struct {
	Name    string                `json:"name"`
	Options []CustomizationValue `json:"options"`
}

// CustomizationValue is one selectable option with its price delta.
type CustomizationValue struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
