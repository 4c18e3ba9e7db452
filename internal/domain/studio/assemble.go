package studio

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// Selection es lo que el cliente ha elegido. Para una sesión con horario,
// Slot es el hueco elegido tal y como lo emitió GenerateSlots; para una
// compra de bono no hay hueco y Date lleva el centinela.
type Selection struct {
	Date     string
	Slot     *Slot
	Duration float64
	Pack     models.Pack
	ExtraIDs []string
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

// PricingResult es la salida del motor de precios que el ensamblador
// incorpora tal cual; nunca recalcula.
type PricingResult struct {
	Total              float64
	AppliedCouponCode  string
	AppliedBonoCode    string
	BonoID             string
	BonoRemainderAfter float64
}

// BonoUpdate es el decremento de saldo que acompaña a una reserva con
// canje de bono. Ambas escrituras deben aplicarse juntas o ninguna.
type BonoUpdate struct {
	BonoID         string
	RemainingHours float64
}

// Assemble valida la selección y construye la reserva. No persiste ni
// envía nada: las validaciones fallidas son errores de negocio corregibles
// por el cliente, no excepciones.
func Assemble(sel Selection, cust Customer, pricing PricingResult, method PaymentMethod, now time.Time) (*models.Booking, *BonoUpdate, error) {
	bonoPurchase := sel.Date == models.DateBonoPurchase

	if !bonoPurchase {
		if sel.Slot == nil {
			return nil, nil, httperr.ErrBusiness("no_slot_selected")
		}
		if sel.Slot.IsOccupied {
			return nil, nil, httperr.ErrBusiness("slot_occupied")
		}
	}

	if strings.TrimSpace(cust.Name) == "" {
		return nil, nil, httperr.ErrBusiness("missing_name")
	}
	if strings.TrimSpace(cust.Email) == "" {
		return nil, nil, httperr.ErrBusiness("missing_email")
	}
	if IsManualMethod(method) && strings.TrimSpace(cust.Phone) == "" {
		return nil, nil, httperr.ErrBusiness("missing_phone")
	}

	var startTime float64
	if !bonoPurchase {
		startTime = sel.Slot.Hour
	}

	booking := &models.Booking{
		ID:                uuid.NewString(),
		Date:              sel.Date,
		StartTime:         startTime,
		Duration:          sel.Duration,
		PackID:            sel.Pack.ID,
		SelectedExtrasIDs: sel.ExtraIDs,
		CustomerName:      strings.TrimSpace(cust.Name),
		CustomerEmail:     strings.TrimSpace(cust.Email),
		CustomerPhone:     strings.TrimSpace(cust.Phone),
		TotalPrice:        pricing.Total,
		Status:            string(InitialStatus(method)),
		PaymentMethod:     string(method),
		AppliedCouponCode: pricing.AppliedCouponCode,
		AppliedBonoCode:   pricing.AppliedBonoCode,
		CreatedAt:         now,
	}

	var update *BonoUpdate
	if method == MethodBono {
		update = &BonoUpdate{
			BonoID:         pricing.BonoID,
			RemainingHours: pricing.BonoRemainderAfter,
		}
	}

	return booking, update, nil
}
