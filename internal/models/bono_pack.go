package models

import "time"

// BonoPack define un tramo de compra de bonos: tamaño del paquete en horas
// y descuento aplicado. El descuento debe ser no decreciente con las horas;
// eso se valida al escribir la tabla, no aquí.
type BonoPack struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Hours              float64 `gorm:"uniqueIndex" json:"hours"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Name               string  `gorm:"size:100" json:"name"`
	Description        string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
