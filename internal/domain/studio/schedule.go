package studio

import (
	"time"

	"github.com/dgrstudio/streampulse-api/internal/models"
)

const dateLayout = "2006-01-02"

// DaySchedule es la franja efectiva de apertura de una fecha concreta.
type DaySchedule struct {
	IsOpen bool    `json:"isOpen"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Availability es el horario semanal más sus excepciones por fecha.
type Availability struct {
	Days      [7]models.StudioHours // indexado por time.Weekday
	Overrides []models.DateOverride
}

// ResolveSchedule devuelve la franja efectiva para una fecha.
// Una excepción con fecha exacta gana incondicionalmente y sustituye por
// completo a la fila semanal; no se mezclan campos. Sin excepción, se usa
// la fila del día de la semana. Toda fecha resuelve a algo: una fecha
// imparseable resuelve a cerrado.
func ResolveSchedule(date string, av Availability) DaySchedule {
	for _, o := range av.Overrides {
		if o.Date == date {
			return DaySchedule{IsOpen: o.IsOpen, Start: o.StartHour, End: o.EndHour}
		}
	}

	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return DaySchedule{IsOpen: false}
	}

	d := av.Days[int(t.Weekday())]
	return DaySchedule{IsOpen: d.IsOpen, Start: d.StartHour, End: d.EndHour}
}
