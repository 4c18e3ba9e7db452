package models

import "time"

// StudioHours es la franja de apertura semanal: una fila por día.
// Las horas son decimales sobre rejilla de media hora (10.5 = 10:30).
// Si IsOpen es false, StartHour/EndHour se ignoran por completo.
type StudioHours struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// 0=domingo .. 6=sábado, como time.Weekday.
	Weekday   int     `gorm:"uniqueIndex" json:"weekday"`
	IsOpen    bool    `json:"isOpen"`
	StartHour float64 `json:"start"`
	EndHour   float64 `json:"end"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
