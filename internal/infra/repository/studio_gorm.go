package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

type StudioGormRepository struct {
	db *gorm.DB
}

func NewStudioGormRepository(db *gorm.DB) *StudioGormRepository {
	return &StudioGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *StudioGormRepository) GetPack(
	ctx context.Context,
	id string,
) (*models.Pack, error) {

	var pack models.Pack
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pack).Error; err != nil {
		return nil, err
	}
	return &pack, nil
}

func (r *StudioGormRepository) ListPacks(
	ctx context.Context,
	onlyActive bool,
) ([]models.Pack, error) {

	q := r.db.WithContext(ctx).Order("price_per_hour ASC")
	if onlyActive {
		q = q.Where("is_active = true")
	}

	var packs []models.Pack
	if err := q.Find(&packs).Error; err != nil {
		return nil, err
	}
	return packs, nil
}

func (r *StudioGormRepository) ListExtrasByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Extra, error) {

	if len(ids) == 0 {
		return []models.Extra{}, nil
	}

	var extras []models.Extra
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (r *StudioGormRepository) ListCoupons(
	ctx context.Context,
) ([]models.Coupon, error) {

	var coupons []models.Coupon
	if err := r.db.WithContext(ctx).Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *StudioGormRepository) ListHourBonos(
	ctx context.Context,
) ([]models.HourBono, error) {

	var bonos []models.HourBono
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bonos).Error; err != nil {
		return nil, err
	}
	return bonos, nil
}

func (r *StudioGormRepository) GetBonoPackByHours(
	ctx context.Context,
	hours float64,
) (*models.BonoPack, error) {

	var tier models.BonoPack
	if err := r.db.WithContext(ctx).
		Where("hours = ?", hours).
		First(&tier).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

// --------------------------------------------------
// Horario
// --------------------------------------------------

func (r *StudioGormRepository) GetAvailability(
	ctx context.Context,
) (studio.Availability, error) {

	var av studio.Availability

	var rows []models.StudioHours
	if err := r.db.WithContext(ctx).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return av, err
	}

	// Día sin fila = cerrado; nunca es un error para el llamante.
	for _, row := range rows {
		if row.Weekday >= 0 && row.Weekday <= 6 {
			av.Days[row.Weekday] = row
		}
	}

	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&av.Overrides).Error; err != nil {
		return av, err
	}

	return av, nil
}

// --------------------------------------------------
// Reservas
// --------------------------------------------------

func (r *StudioGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *StudioGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *StudioGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	update *studio.BonoUpdate,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !b.IsBonoPurchase() {
			if err := assertNoSlotConflict(tx, b); err != nil {
				return err
			}
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		if update != nil {
			res := tx.Model(&models.HourBono{}).
				Where("id = ? AND remaining_hours >= ?", update.BonoID, b.Duration).
				Update("remaining_hours", update.RemainingHours)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("insufficient_bono_balance")
			}
		}

		return nil
	})
}

// assertNoSlotConflict re-valida el hueco contra el estado actual dentro
// de la transacción: dos clientes con instantáneas viejas no pueden
// quedarse el mismo hueco. Intervalo bloqueado con buffer de cortesía.
func assertNoSlotConflict(tx *gorm.DB, b *models.Booking) error {
	var count int64
	if err := tx.Model(&models.Booking{}).
		Where(
			"date = ? AND status <> 'cancelled' AND start_time < ? AND (start_time + duration + 0.5) > ?",
			b.Date,
			b.StartTime+b.Duration,
			b.StartTime,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_occupied")
	}
	return nil
}

func (r *StudioGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *StudioGormRepository) ConfirmBooking(
	ctx context.Context,
	b *models.Booking,
	bono *models.HourBono,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		if bono != nil {
			if err := tx.Create(bono).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Compile-time check
var _ studio.Repository = (*StudioGormRepository)(nil)
