package models

import "time"

// HourBono es un saldo prepagado de horas de estudio. Se crea una sola vez
// (al confirmarse la reserva de compra) y solo decrementa a partir de ahí.
// Invariante: 0 <= RemainingHours <= TotalHours.
type HourBono struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Code           string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	CustomerName   string  `gorm:"size:100" json:"customerName"`
	TotalHours     float64 `json:"totalHours"`
	RemainingHours float64 `json:"remainingHours"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
