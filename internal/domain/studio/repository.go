package studio

import (
	"context"

	"github.com/dgrstudio/streampulse-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetPack(
		ctx context.Context,
		id string,
	) (*models.Pack, error)

	ListPacks(
		ctx context.Context,
		onlyActive bool,
	) ([]models.Pack, error)

	ListExtrasByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Extra, error)

	ListCoupons(
		ctx context.Context,
	) ([]models.Coupon, error)

	ListHourBonos(
		ctx context.Context,
	) ([]models.HourBono, error)

	GetBonoPackByHours(
		ctx context.Context,
		hours float64,
	) (*models.BonoPack, error)

	// -------- Horario --------
	GetAvailability(
		ctx context.Context,
	) (Availability, error)

	// -------- Reservas --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// CreateBooking persiste la reserva y, si update no es nil, el
	// decremento de saldo del bono en la misma transacción. Para
	// reservas con horario re-valida el hueco (con buffer) dentro de
	// la transacción y devuelve slot_occupied si otro cliente se
	// adelantó.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		update *BonoUpdate,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ConfirmBooking guarda el cambio de estado y, si bono no es nil,
	// acuña el bono en la misma transacción.
	ConfirmBooking(
		ctx context.Context,
		b *models.Booking,
		bono *models.HourBono,
	) error
}
