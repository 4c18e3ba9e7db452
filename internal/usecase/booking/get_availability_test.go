package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

func TestGetAvailability_OpenDay(t *testing.T) {
	uc := NewGetAvailability(newMemRepo())

	slots, err := uc.Execute(context.Background(), "2026-03-02", 1)

	require.NoError(t, err)
	// 10:00 a 21:30, cada media hora.
	assert.Len(t, slots, 24)
	assert.Equal(t, 10.0, slots[0].Hour)
}

func TestGetAvailability_ClosedDayReturnsEmpty(t *testing.T) {
	uc := NewGetAvailability(newMemRepo())

	// Domingo.
	slots, err := uc.Execute(context.Background(), "2026-03-08", 1)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_OverrideWins(t *testing.T) {
	repo := newMemRepo()
	repo.av.Overrides = []models.DateOverride{
		{ID: "o1", Date: "2026-03-02", IsOpen: false, Reason: "Mantenimiento"},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), "2026-03-02", 1)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ExistingBookingBlocks(t *testing.T) {
	repo := newMemRepo()
	create := NewCreateBooking(repo, testDispatcher())
	uc := NewGetAvailability(repo)

	_, err := create.Execute(context.Background(), sessionInput())
	require.NoError(t, err)

	slots, err := uc.Execute(context.Background(), "2026-03-02", 1)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Hour+1 > 22 {
			// No cabe antes del cierre; ocupado por otro motivo.
			continue
		}
		// Intervalo bloqueado [16, 18.5); una sesión de 1h que empiece
		// a las 15:30 ya lo pisaría.
		blocked := s.Hour >= 15.5 && s.Hour < 18.5
		assert.Equalf(t, blocked, s.IsOccupied, "hour %.1f", s.Hour)
		if blocked {
			assert.Equal(t, "pending_verification", s.Status)
		}
	}
}

func TestGetAvailability_InvalidInput(t *testing.T) {
	uc := NewGetAvailability(newMemRepo())

	_, err := uc.Execute(context.Background(), "03/02/2026", 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), "2026-03-02", 0.25)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}
