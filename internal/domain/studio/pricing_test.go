package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

var (
	packStreaming = models.Pack{ID: "streaming", PricePerHour: 35, IsActive: true}
	extraDJBooth  = models.Extra{ID: "dj", Price: 10}
	extraLights   = models.Extra{ID: "lights", Price: 5}
)

func TestSessionTotal(t *testing.T) {
	tests := []struct {
		name     string
		extras   []models.Extra
		duration float64
		coupon   *models.Coupon
		want     float64
	}{
		{"pack solo", nil, 2, nil, 70},
		{"con extras", []models.Extra{extraDJBooth, extraLights}, 2, nil, 100},
		{"media hora", nil, 0.5, nil, 17.5},
		{
			"cupon porcentual",
			[]models.Extra{extraDJBooth},
			2,
			&models.Coupon{Code: "DJ10", DiscountPercentage: 10, IsActive: true},
			81,
		},
		{
			"cupon cien por cien",
			nil,
			1,
			&models.Coupon{Code: "FREE", DiscountPercentage: 100, IsActive: true},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionTotal(packStreaming, tt.extras, tt.duration, tt.coupon)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBonoSessionTotal_OnlyExtrasCharged(t *testing.T) {
	bono := models.HourBono{RemainingHours: 5, IsActive: true}

	total, remainder, err := BonoSessionTotal([]models.Extra{extraDJBooth}, 2, bono)

	require.NoError(t, err)
	assert.Equal(t, 20.0, total)
	assert.Equal(t, 3.0, remainder)
}

func TestBonoSessionTotal_NoExtrasIsFree(t *testing.T) {
	bono := models.HourBono{RemainingHours: 2, IsActive: true}

	total, remainder, err := BonoSessionTotal(nil, 2, bono)

	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, remainder)
}

func TestBonoSessionTotal_InsufficientBalance(t *testing.T) {
	bono := models.HourBono{RemainingHours: 1.5, IsActive: true}

	_, _, err := BonoSessionTotal(nil, 2, bono)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "insufficient_bono_balance"))
}

func TestBonoPurchaseTotal(t *testing.T) {
	tier := models.BonoPack{Hours: 10, DiscountPercentage: 20}

	// 35 €/h * 10 h * 0.8
	assert.Equal(t, 280.0, BonoPurchaseTotal(packStreaming, nil, tier))

	// Los extras entran en la base por hora.
	assert.Equal(t, 360.0, BonoPurchaseTotal(packStreaming, []models.Extra{extraDJBooth}, tier))
}

func TestValidateBonoPackTiers(t *testing.T) {
	valid := []models.BonoPack{
		{Hours: 3, DiscountPercentage: 5},
		{Hours: 5, DiscountPercentage: 10},
		{Hours: 10, DiscountPercentage: 20},
	}
	assert.NoError(t, ValidateBonoPackTiers(valid))

	flat := []models.BonoPack{
		{Hours: 3, DiscountPercentage: 10},
		{Hours: 5, DiscountPercentage: 10},
	}
	assert.NoError(t, ValidateBonoPackTiers(flat))

	decreasing := []models.BonoPack{
		{Hours: 3, DiscountPercentage: 10},
		{Hours: 5, DiscountPercentage: 5},
	}
	err := ValidateBonoPackTiers(decreasing)
	assert.True(t, httperr.IsBusiness(err, "bono_pack_discount_decreasing"))

	duplicated := []models.BonoPack{
		{Hours: 5, DiscountPercentage: 5},
		{Hours: 5, DiscountPercentage: 10},
	}
	err = ValidateBonoPackTiers(duplicated)
	assert.True(t, httperr.IsBusiness(err, "bono_pack_hours_not_increasing"))
}
