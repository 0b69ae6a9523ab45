package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartSnapshot is the durable copy of a user's session cart. The cart
// itself lives in the cart package; this row is only its serialized form.
type CartSnapshot struct {
	gorm.Model
	UserID   uint           `gorm:"uniqueIndex" json:"userId"`
	Snapshot datatypes.JSON `json:"snapshot"`
}
