package models

import "time"

// Coupon aplica un descuento porcentual a una sesión. No es consumible:
// usarlo no lo decrementa ni lo desactiva.
type Coupon struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Code               string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	IsActive           bool    `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
