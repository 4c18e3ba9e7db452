package studio

import "github.com/dgrstudio/streampulse-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusConfirmed           Status = "confirmed"
	StatusCancelled           Status = "cancelled"
)

type PaymentMethod string

const (
	MethodBizum   PaymentMethod = "bizum"
	MethodRevolut PaymentMethod = "revolut"
	MethodCard    PaymentMethod = "card"
	MethodBono    PaymentMethod = "bono"
)

// InitialStatus aplica la regla de asignación: el pago con tarjeta llega
// aquí únicamente tras el callback de éxito de la pasarela y el canje de
// bono se verifica en el acto, así que ambos nacen confirmados. Los métodos
// manuales (bizum, revolut) quedan pendientes de verificación humana.
func InitialStatus(method PaymentMethod) Status {
	if method == MethodCard || method == MethodBono {
		return StatusConfirmed
	}
	return StatusPendingVerification
}

// CanConfirm define si una reserva puede pasar a confirmada.
func CanConfirm(current Status) error {
	if current != StatusPendingVerification {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define si una reserva puede cancelarse.
func CanCancel(current Status) error {
	if current != StatusPendingVerification && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// IsManualMethod indica si el método requiere verificación por contacto
// (y por tanto teléfono obligatorio).
func IsManualMethod(method PaymentMethod) bool {
	return method == MethodBizum || method == MethodRevolut
}
