package models

import "time"

// Extra es un añadido opcional por sesión; el precio es por hora.
type Extra struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `json:"price"`
	Icon  string  `gorm:"size:20" json:"icon"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
