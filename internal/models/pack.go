package models

import "time"

type Pack struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string     `gorm:"size:100;not null" json:"name"`
	Description  string     `gorm:"size:255" json:"description"`
	PricePerHour float64    `json:"pricePerHour"`
	Features     StringList `gorm:"type:text" json:"features"`
	Icon         string     `gorm:"size:20" json:"icon"`

	// Los packs inactivos no se ofertan pero siguen siendo FK válida
	// en reservas históricas.
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
