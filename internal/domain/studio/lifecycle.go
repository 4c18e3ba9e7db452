package studio

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dgrstudio/streampulse-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm pasa la reserva a confirmada (acción de admin, o callback de
// éxito de la pasarela).
func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusConfirmed)
	return nil
}

// Cancel marca la reserva como cancelada. Se conserva la fila: una reserva
// cancelada deja de contar en toda comprobación de conflictos pero sigue
// visible para el admin.
func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusCancelled)
	return nil
}

// MintBono crea el bono de horas a partir de una reserva de compra
// confirmada. Es el único camino por el que nace un HourBono: la compra
// pendiente no da saldo utilizable hasta que el admin la confirma.
func MintBono(b *models.Booking) models.HourBono {
	return models.HourBono{
		ID:             uuid.NewString(),
		Code:           NewBonoCode(),
		CustomerName:   b.CustomerName,
		TotalHours:     b.Duration,
		RemainingHours: b.Duration,
		IsActive:       true,
	}
}

// NewBonoCode genera un código de canje corto y único.
func NewBonoCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BONO-" + raw[:8]
}
