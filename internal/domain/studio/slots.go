package studio

import (
	"fmt"
	"math"

	"github.com/dgrstudio/streampulse-api/internal/models"
)

// CourtesyBuffer es el margen obligatorio de 30 minutos que se aplica
// DESPUÉS de cada reserva existente, antes de que pueda empezar la
// siguiente sesión. Es unilateral a propósito: garantiza el cambio de
// cliente tras una sesión, pero no reserva hueco antes de su inicio.
const CourtesyBuffer = 0.5

const slotStep = 0.5

// Estados de un hueco. Cuando el hueco está bloqueado por una reserva,
// Status lleva el estado de esa reserva (pending_verification vs
// confirmed) para que el cliente distinga "retenido" de "ocupado".
const (
	SlotFree   = "free"
	SlotClosed = "closed"
)

// Agrupación puramente presentacional de los huecos.
const (
	PeriodMorning   = "morning"   // < 14:00
	PeriodAfternoon = "afternoon" // 14:00 – 20:00
	PeriodEvening   = "evening"   // >= 20:00
)

type Slot struct {
	Hour       float64 `json:"hour"`
	Label      string  `json:"label"`
	IsOccupied bool    `json:"isOccupied"`
	Status     string  `json:"status"`
	Period     string  `json:"period"`
}

// GenerateSlots calcula los huecos de inicio candidatos para una fecha.
// Candidatos: cada media hora en [Start, End). Un candidato queda ocupado si
// la sesión completa no cabe antes del cierre, o si el intervalo
// [h, h+duration) solapa con el intervalo bloqueado de alguna reserva
// [b.start, b.start+b.duration+CourtesyBuffer). Las reservas canceladas no
// bloquean nada.
func GenerateSlots(duration float64, bookingsOnDate []models.Booking, schedule DaySchedule) []Slot {
	if !schedule.IsOpen {
		return []Slot{}
	}

	active := make([]models.Booking, 0, len(bookingsOnDate))
	for _, b := range bookingsOnDate {
		if b.Status != string(StatusCancelled) {
			active = append(active, b)
		}
	}

	slots := make([]Slot, 0, int((schedule.End-schedule.Start)/slotStep))

	for h := schedule.Start; h < schedule.End; h += slotStep {
		slotEnd := h + duration
		fits := slotEnd <= schedule.End

		var blocking *models.Booking
		for i := range active {
			b := &active[i]
			blockedEnd := b.StartTime + b.Duration + CourtesyBuffer
			if h < blockedEnd && slotEnd > b.StartTime {
				blocking = b
				break
			}
		}

		status := SlotFree
		switch {
		case blocking != nil:
			status = blocking.Status
		case !fits:
			status = SlotClosed
		}

		slots = append(slots, Slot{
			Hour:       h,
			Label:      FormatHour(h),
			IsOccupied: blocking != nil || !fits,
			Status:     status,
			Period:     periodFor(h),
		})
	}

	return slots
}

// FormatHour convierte una hora decimal en etiqueta HH:MM.
func FormatHour(h float64) string {
	whole := math.Floor(h)
	minutes := int(math.Round((h - whole) * 60))
	return fmt.Sprintf("%02d:%02d", int(whole), minutes)
}

func periodFor(h float64) string {
	switch {
	case h < 14:
		return PeriodMorning
	case h < 20:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
