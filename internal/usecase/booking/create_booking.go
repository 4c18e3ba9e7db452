package booking

import (
	"context"
	"time"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// Sesión con horario. Ignorados si BonoPurchase es true.
	Date      string   `json:"date"`
	StartTime *float64 `json:"startTime"`

	// Horas de sesión, o tamaño del paquete si BonoPurchase.
	Duration float64 `json:"duration"`

	PackID   string   `json:"packId"`
	ExtraIDs []string `json:"extraIds"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Method studio.PaymentMethod `json:"method"`

	// Código de cupón o de bono, opcional.
	Code string `json:"code"`

	BonoPurchase bool `json:"bonoPurchase"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo studio.Repository,
	dispatcher *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b, update, err := uc.Prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	// Reserva y decremento de bono viajan en la misma transacción; el
	// hueco se re-valida dentro de ella contra el estado actual.
	if err := uc.repo.CreateBooking(ctx, b, update); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"date":      b.Date,
			"startTime": b.StartTime,
			"duration":  b.Duration,
			"method":    b.PaymentMethod,
		},
	})

	return b, nil
}

// Prepare valida la entrada, resuelve códigos, calcula el precio y
// ensambla la reserva sin persistir nada. El flujo de tarjeta lo usa para
// validar el borrador antes de redirigir a la pasarela.
func (uc *CreateBooking) Prepare(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, *studio.BonoUpdate, error) {

	if err := validateDuration(in.Duration); err != nil {
		return nil, nil, err
	}

	pack, err := uc.repo.GetPack(ctx, in.PackID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("pack_not_found")
	}
	if !pack.IsActive {
		return nil, nil, httperr.ErrBusiness("pack_not_found")
	}

	extras, err := uc.repo.ListExtrasByIDs(ctx, in.ExtraIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(extras) != len(in.ExtraIDs) {
		return nil, nil, httperr.ErrBusiness("extra_not_found")
	}

	if in.BonoPurchase {
		return uc.prepareBonoPurchase(ctx, in, *pack, extras)
	}
	return uc.prepareSession(ctx, in, *pack, extras)
}

// --------------------------------------------------
// Sesión con horario
// --------------------------------------------------

func (uc *CreateBooking) prepareSession(
	ctx context.Context,
	in CreateBookingInput,
	pack models.Pack,
	extras []models.Extra,
) (*models.Booking, *studio.BonoUpdate, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date")
	}

	method := in.Method

	// Un único código: cupón o bono, nunca ambos. Un fallo de
	// resolución aborta sin dejar aplicado ningún descuento.
	var resolution *studio.CodeResolution
	if in.Code != "" {
		coupons, err := uc.repo.ListCoupons(ctx)
		if err != nil {
			return nil, nil, err
		}
		bonos, err := uc.repo.ListHourBonos(ctx)
		if err != nil {
			return nil, nil, err
		}

		resolution, err = studio.ResolveCode(in.Code, coupons, bonos, in.Duration)
		if err != nil {
			return nil, nil, err
		}

		if resolution.Kind == studio.CodeBono {
			method = studio.MethodBono
		}
	}

	if method == studio.MethodBono && (resolution == nil || resolution.Kind != studio.CodeBono) {
		return nil, nil, httperr.ErrBusiness("bono_code_required")
	}

	var pricing studio.PricingResult
	if resolution != nil && resolution.Kind == studio.CodeBono {
		total, remainder, err := studio.BonoSessionTotal(extras, in.Duration, *resolution.Bono)
		if err != nil {
			return nil, nil, err
		}
		pricing = studio.PricingResult{
			Total:              total,
			AppliedBonoCode:    resolution.Bono.Code,
			BonoID:             resolution.Bono.ID,
			BonoRemainderAfter: remainder,
		}
	} else {
		var coupon *models.Coupon
		if resolution != nil {
			coupon = resolution.Coupon
			pricing.AppliedCouponCode = resolution.Coupon.Code
		}
		pricing.Total = studio.SessionTotal(pack, extras, in.Duration, coupon)
	}

	slot, err := uc.findSlot(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	return studio.Assemble(
		studio.Selection{
			Date:     in.Date,
			Slot:     slot,
			Duration: in.Duration,
			Pack:     pack,
			ExtraIDs: in.ExtraIDs,
		},
		studio.Customer{
			Name:  in.CustomerName,
			Email: in.CustomerEmail,
			Phone: in.CustomerPhone,
		},
		pricing,
		method,
		time.Now(),
	)
}

// findSlot localiza el hueco pedido dentro de la salida del generador.
// Una hora fuera de la rejilla del día es un error corregible, no un 500.
func (uc *CreateBooking) findSlot(
	ctx context.Context,
	in CreateBookingInput,
) (*studio.Slot, error) {

	if in.StartTime == nil {
		return nil, httperr.ErrBusiness("no_slot_selected")
	}

	av, err := uc.repo.GetAvailability(ctx)
	if err != nil {
		return nil, err
	}

	schedule := studio.ResolveSchedule(in.Date, av)
	if !schedule.IsOpen {
		return nil, httperr.ErrBusiness("slot_out_of_hours")
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	for _, s := range studio.GenerateSlots(in.Duration, bookings, schedule) {
		if s.Hour == *in.StartTime {
			slot := s
			return &slot, nil
		}
	}

	return nil, httperr.ErrBusiness("slot_out_of_hours")
}

// --------------------------------------------------
// Compra de bono
// --------------------------------------------------

func (uc *CreateBooking) prepareBonoPurchase(
	ctx context.Context,
	in CreateBookingInput,
	pack models.Pack,
	extras []models.Extra,
) (*models.Booking, *studio.BonoUpdate, error) {

	if in.Code != "" {
		// Las compras de paquete ya llevan su descuento por tramo.
		return nil, nil, httperr.ErrBusiness("code_not_allowed")
	}
	if in.Method == studio.MethodBono {
		return nil, nil, httperr.ErrBusiness("invalid_payment_method")
	}

	tier, err := uc.repo.GetBonoPackByHours(ctx, in.Duration)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("bono_pack_not_found")
	}

	pricing := studio.PricingResult{
		Total: studio.BonoPurchaseTotal(pack, extras, *tier),
	}

	// La compra no acuña el bono: el saldo nace al confirmarla.
	return studio.Assemble(
		studio.Selection{
			Date:     models.DateBonoPurchase,
			Duration: in.Duration,
			Pack:     pack,
			ExtraIDs: in.ExtraIDs,
		},
		studio.Customer{
			Name:  in.CustomerName,
			Email: in.CustomerEmail,
			Phone: in.CustomerPhone,
		},
		pricing,
		in.Method,
		time.Now(),
	)
}
