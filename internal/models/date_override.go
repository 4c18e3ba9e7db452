package models

import "time"

// DateOverride es una excepción para una fecha concreta (cierre u horario
// especial). Si existe, sustituye por completo a la fila semanal de ese
// día; nunca se mezclan campos de ambas.
type DateOverride struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Date      string  `gorm:"size:20;uniqueIndex;not null" json:"date"`
	IsOpen    bool    `json:"isOpen"`
	StartHour float64 `json:"start"`
	EndHour   float64 `json:"end"`
	Reason    string  `gorm:"size:255" json:"reason,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
