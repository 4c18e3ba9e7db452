package snapshot

import (
	"context"

	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// Snapshot es el estado completo que viaja por /api/sync: las tres
// colecciones de primer nivel. Cada una es opcional en un push; solo se
// reemplaza lo que viene presente.
type Snapshot struct {
	Packs       []models.Pack    `json:"packs,omitempty"`
	Bookings    []models.Booking `json:"bookings,omitempty"`
	HomeContent *HomeContent     `json:"homeContent,omitempty"`
}

// HomeContent en el cable lleva embebido todo lo que configura el
// estudio: disponibilidad, extras, cupones, bonos y tramos.
type HomeContent struct {
	models.HomeContent
	Availability Availability      `json:"availability"`
	Extras       []models.Extra    `json:"extras"`
	Coupons      []models.Coupon   `json:"coupons"`
	HourBonos    []models.HourBono `json:"hourBonos"`
	BonoPacks    []models.BonoPack `json:"bonoPacks"`
}

// Availability serializa el horario semanal por nombre de día, como lo
// espera el cliente, más las excepciones.
type Availability struct {
	Monday    DayJSON `json:"monday"`
	Tuesday   DayJSON `json:"tuesday"`
	Wednesday DayJSON `json:"wednesday"`
	Thursday  DayJSON `json:"thursday"`
	Friday    DayJSON `json:"friday"`
	Saturday  DayJSON `json:"saturday"`
	Sunday    DayJSON `json:"sunday"`

	Overrides []models.DateOverride `json:"overrides"`
}

type DayJSON struct {
	IsOpen bool    `json:"isOpen"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// --------------------------------------------------
// Build
// --------------------------------------------------

func Build(ctx context.Context, db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := db.WithContext(ctx).Order("price_per_hour ASC").Find(&snap.Packs).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&snap.Bookings).Error; err != nil {
		return nil, err
	}

	home, err := BuildHomeContent(ctx, db)
	if err != nil {
		return nil, err
	}
	snap.HomeContent = home

	return snap, nil
}

// BuildHomeContent monta el bloque de configuración completo; también lo
// sirve tal cual el endpoint público de portada.
func BuildHomeContent(ctx context.Context, db *gorm.DB) (*HomeContent, error) {
	var home HomeContent

	// Sin fila todavía = valores cero; nunca es fatal.
	if err := db.WithContext(ctx).First(&home.HomeContent).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var hours []models.StudioHours
	if err := db.WithContext(ctx).Order("weekday ASC").Find(&hours).Error; err != nil {
		return nil, err
	}
	for _, h := range hours {
		setWeekday(&home.Availability, h)
	}

	if err := db.WithContext(ctx).Order("date ASC").Find(&home.Availability.Overrides).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Find(&home.Extras).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Find(&home.Coupons).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Find(&home.HourBonos).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Order("hours ASC").Find(&home.BonoPacks).Error; err != nil {
		return nil, err
	}

	return &home, nil
}

func setWeekday(av *Availability, h models.StudioHours) {
	day := DayJSON{IsOpen: h.IsOpen, Start: h.StartHour, End: h.EndHour}
	switch h.Weekday {
	case 0:
		av.Sunday = day
	case 1:
		av.Monday = day
	case 2:
		av.Tuesday = day
	case 3:
		av.Wednesday = day
	case 4:
		av.Thursday = day
	case 5:
		av.Friday = day
	case 6:
		av.Saturday = day
	}
}

// --------------------------------------------------
// Apply
// --------------------------------------------------

// Apply reemplaza y persiste cada colección presente en el push.
// Reemplazo completo, no patch: así funciona la consola de admin y el
// cliente de sync. Último escritor gana; la carrera entre dos clientes
// con instantáneas viejas queda asumida y documentada, no detectada.
func Apply(ctx context.Context, db *gorm.DB, snap *Snapshot) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if snap.Packs != nil {
			if err := replaceAll(tx, &models.Pack{}, snap.Packs); err != nil {
				return err
			}
		}

		if snap.Bookings != nil {
			if err := replaceAll(tx, &models.Booking{}, snap.Bookings); err != nil {
				return err
			}
		}

		if snap.HomeContent != nil {
			if err := applyHomeContent(tx, snap.HomeContent); err != nil {
				return err
			}
		}

		return nil
	})
}

func applyHomeContent(tx *gorm.DB, home *HomeContent) error {
	if err := studio.ValidateBonoPackTiers(home.BonoPacks); err != nil {
		return err
	}

	if err := tx.Where("1 = 1").Delete(&models.HomeContent{}).Error; err != nil {
		return err
	}
	home.HomeContent.ID = 0
	if err := tx.Create(&home.HomeContent).Error; err != nil {
		return err
	}

	hours := []models.StudioHours{
		weekdayRow(0, home.Availability.Sunday),
		weekdayRow(1, home.Availability.Monday),
		weekdayRow(2, home.Availability.Tuesday),
		weekdayRow(3, home.Availability.Wednesday),
		weekdayRow(4, home.Availability.Thursday),
		weekdayRow(5, home.Availability.Friday),
		weekdayRow(6, home.Availability.Saturday),
	}
	if err := replaceAll(tx, &models.StudioHours{}, hours); err != nil {
		return err
	}

	if err := replaceAll(tx, &models.DateOverride{}, home.Availability.Overrides); err != nil {
		return err
	}
	if err := replaceAll(tx, &models.Extra{}, home.Extras); err != nil {
		return err
	}
	if err := replaceAll(tx, &models.Coupon{}, home.Coupons); err != nil {
		return err
	}
	if err := replaceAll(tx, &models.HourBono{}, home.HourBonos); err != nil {
		return err
	}
	return replaceAll(tx, &models.BonoPack{}, home.BonoPacks)
}

// ApplyAvailability reemplaza solo el horario semanal y sus excepciones.
func ApplyAvailability(ctx context.Context, db *gorm.DB, av *Availability) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hours := []models.StudioHours{
			weekdayRow(0, av.Sunday),
			weekdayRow(1, av.Monday),
			weekdayRow(2, av.Tuesday),
			weekdayRow(3, av.Wednesday),
			weekdayRow(4, av.Thursday),
			weekdayRow(5, av.Friday),
			weekdayRow(6, av.Saturday),
		}
		if err := replaceAll(tx, &models.StudioHours{}, hours); err != nil {
			return err
		}
		return replaceAll(tx, &models.DateOverride{}, av.Overrides)
	})
}

func weekdayRow(weekday int, day DayJSON) models.StudioHours {
	return models.StudioHours{
		Weekday:   weekday,
		IsOpen:    day.IsOpen,
		StartHour: day.Start,
		EndHour:   day.End,
	}
}

func replaceAll[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
