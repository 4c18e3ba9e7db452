package models

import "time"

// DateBonoPurchase es el valor centinela de Booking.Date para las compras
// de bono: no ocupan hueco en la agenda (StartTime = 0).
const DateBonoPurchase = "bono-purchase"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Fecha YYYY-MM-DD, o DateBonoPurchase para compras de bono.
	Date      string  `gorm:"size:20;index" json:"date"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`

	// Puede quedar colgando si el pack se elimina después; se conserva
	// como referencia histórica.
	PackID            string     `gorm:"size:36" json:"packId"`
	SelectedExtrasIDs StringList `gorm:"type:text" json:"selectedExtrasIds"`

	CustomerName  string `gorm:"size:100" json:"customerName"`
	CustomerEmail string `gorm:"size:100" json:"customerEmail"`
	CustomerPhone string `gorm:"size:30" json:"customerPhone,omitempty"`

	TotalPrice float64 `json:"totalPrice"`

	Status        string `gorm:"size:30;default:'pending_verification'" json:"status"`
	PaymentMethod string `gorm:"size:20" json:"paymentMethod"`

	AppliedCouponCode string `gorm:"size:50" json:"appliedCouponCode,omitempty"`
	AppliedBonoCode   string `gorm:"size:50" json:"appliedBonoCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// IsBonoPurchase indica si la reserva es una compra de bono en lugar de
// una sesión con horario.
func (b *Booking) IsBonoPurchase() bool {
	return b.Date == DateBonoPurchase
}
