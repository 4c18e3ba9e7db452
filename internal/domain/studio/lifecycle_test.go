package studio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

func TestConfirm(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingVerification)}

	require.NoError(t, Confirm(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)

	// Confirmar dos veces no es válido.
	err := Confirm(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	cancelled := &models.Booking{Status: string(StatusCancelled)}
	err = Confirm(cancelled)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	pending := &models.Booking{Status: string(StatusPendingVerification)}
	require.NoError(t, Cancel(pending))
	assert.Equal(t, string(StatusCancelled), pending.Status)

	confirmed := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(confirmed))
	assert.Equal(t, string(StatusCancelled), confirmed.Status)

	err := Cancel(pending)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMintBono(t *testing.T) {
	b := &models.Booking{
		ID:           "bk1",
		Date:         models.DateBonoPurchase,
		Duration:     10,
		CustomerName: "Laura",
	}

	bono := MintBono(b)

	assert.NotEmpty(t, bono.ID)
	assert.Equal(t, 10.0, bono.TotalHours)
	assert.Equal(t, 10.0, bono.RemainingHours)
	assert.Equal(t, "Laura", bono.CustomerName)
	assert.True(t, bono.IsActive)
	assert.True(t, strings.HasPrefix(bono.Code, "BONO-"))
}

func TestNewBonoCode(t *testing.T) {
	code := NewBonoCode()

	assert.Len(t, code, len("BONO-")+8)
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, NewBonoCode())
}
