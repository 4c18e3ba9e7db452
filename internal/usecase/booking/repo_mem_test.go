package booking

import (
	"context"
	"errors"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// memRepo es un Repository en memoria para los tests de casos de uso.
// Reproduce las dos garantías transaccionales del repositorio real: la
// re-validación del hueco al crear y el decremento de bono con guarda.
type memRepo struct {
	packs     map[string]models.Pack
	extras    map[string]models.Extra
	coupons   []models.Coupon
	bonos     map[string]*models.HourBono
	bonoPacks []models.BonoPack
	av        studio.Availability
	bookings  map[string]*models.Booking
}

func newMemRepo() *memRepo {
	var av studio.Availability
	for wd := 0; wd < 7; wd++ {
		av.Days[wd] = models.StudioHours{Weekday: wd, IsOpen: true, StartHour: 10, EndHour: 22}
	}
	av.Days[0] = models.StudioHours{Weekday: 0, IsOpen: false}

	return &memRepo{
		packs: map[string]models.Pack{
			"streaming": {ID: "streaming", Name: "Pack Streaming Pro", PricePerHour: 35, IsActive: true},
			"retired":   {ID: "retired", Name: "Antiguo", PricePerHour: 20, IsActive: false},
		},
		extras: map[string]models.Extra{
			"dj": {ID: "dj", Name: "Cabina DJ", Price: 10},
		},
		bonos:    map[string]*models.HourBono{},
		bookings: map[string]*models.Booking{},
		av:       av,
		bonoPacks: []models.BonoPack{
			{ID: "bono-3", Hours: 3, DiscountPercentage: 5},
			{ID: "bono-10", Hours: 10, DiscountPercentage: 20},
		},
	}
}

func (r *memRepo) GetPack(_ context.Context, id string) (*models.Pack, error) {
	p, ok := r.packs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &p, nil
}

func (r *memRepo) ListPacks(_ context.Context, onlyActive bool) ([]models.Pack, error) {
	var out []models.Pack
	for _, p := range r.packs {
		if !onlyActive || p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRepo) ListExtrasByIDs(_ context.Context, ids []string) ([]models.Extra, error) {
	var out []models.Extra
	for _, id := range ids {
		if e, ok := r.extras[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRepo) ListCoupons(_ context.Context) ([]models.Coupon, error) {
	return r.coupons, nil
}

func (r *memRepo) ListHourBonos(_ context.Context) ([]models.HourBono, error) {
	var out []models.HourBono
	for _, b := range r.bonos {
		out = append(out, *b)
	}
	return out, nil
}

func (r *memRepo) GetBonoPackByHours(_ context.Context, hours float64) (*models.BonoPack, error) {
	for _, t := range r.bonoPacks {
		if t.Hours == hours {
			tier := t
			return &tier, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *memRepo) GetAvailability(_ context.Context) (studio.Availability, error) {
	return r.av, nil
}

func (r *memRepo) ListBookingsForDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (r *memRepo) CreateBooking(_ context.Context, b *models.Booking, update *studio.BonoUpdate) error {
	if !b.IsBonoPurchase() {
		for _, other := range r.bookings {
			if other.Date != b.Date || other.Status == string(studio.StatusCancelled) {
				continue
			}
			blockedEnd := other.StartTime + other.Duration + studio.CourtesyBuffer
			if b.StartTime < blockedEnd && b.StartTime+b.Duration > other.StartTime {
				return httperr.ErrBusiness("slot_occupied")
			}
		}
	}

	if update != nil {
		bono, ok := r.bonos[update.BonoID]
		if !ok || update.RemainingHours < 0 || update.RemainingHours > bono.RemainingHours {
			return httperr.ErrBusiness("insufficient_bono_balance")
		}
		bono.RemainingHours = update.RemainingHours
	}

	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return errors.New("not found")
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *memRepo) ConfirmBooking(_ context.Context, b *models.Booking, bono *models.HourBono) error {
	if err := r.UpdateBooking(nil, b); err != nil {
		return err
	}
	if bono != nil {
		copied := *bono
		r.bonos[bono.ID] = &copied
	}
	return nil
}

var _ studio.Repository = (*memRepo)(nil)
