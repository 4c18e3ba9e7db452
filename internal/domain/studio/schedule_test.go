package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgrstudio/streampulse-api/internal/models"
)

func weeklyAvailability() Availability {
	var av Availability
	for wd := 1; wd <= 5; wd++ {
		av.Days[wd] = models.StudioHours{Weekday: wd, IsOpen: true, StartHour: 10, EndHour: 22}
	}
	av.Days[6] = models.StudioHours{Weekday: 6, IsOpen: true, StartHour: 12, EndHour: 20}
	av.Days[0] = models.StudioHours{Weekday: 0, IsOpen: false}
	return av
}

func TestResolveSchedule_WeekdayRow(t *testing.T) {
	av := weeklyAvailability()

	// 2026-03-02 es lunes.
	monday := ResolveSchedule("2026-03-02", av)
	assert.True(t, monday.IsOpen)
	assert.Equal(t, 10.0, monday.Start)
	assert.Equal(t, 22.0, monday.End)

	// 2026-03-07 es sábado.
	saturday := ResolveSchedule("2026-03-07", av)
	assert.True(t, saturday.IsOpen)
	assert.Equal(t, 12.0, saturday.Start)

	// 2026-03-08 es domingo.
	sunday := ResolveSchedule("2026-03-08", av)
	assert.False(t, sunday.IsOpen)
}

func TestResolveSchedule_OverrideReplacesEntireDay(t *testing.T) {
	av := weeklyAvailability()
	av.Overrides = []models.DateOverride{
		{Date: "2026-03-02", IsOpen: true, StartHour: 16, EndHour: 20},
	}

	day := ResolveSchedule("2026-03-02", av)
	assert.True(t, day.IsOpen)
	assert.Equal(t, 16.0, day.Start)
	assert.Equal(t, 20.0, day.End)
}

func TestResolveSchedule_OverrideCanClose(t *testing.T) {
	av := weeklyAvailability()
	av.Overrides = []models.DateOverride{
		{Date: "2026-03-02", IsOpen: false},
	}

	day := ResolveSchedule("2026-03-02", av)
	assert.False(t, day.IsOpen)
}

func TestResolveSchedule_UnparseableDateResolvesClosed(t *testing.T) {
	day := ResolveSchedule("not-a-date", weeklyAvailability())
	assert.False(t, day.IsOpen)
}
