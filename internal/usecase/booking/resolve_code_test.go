package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

func TestResolveCode_Coupon(t *testing.T) {
	repo := newMemRepo()
	repo.coupons = []models.Coupon{
		{ID: "c1", Code: "VERANO10", DiscountPercentage: 10, IsActive: true},
	}
	uc := NewResolveCode(repo)

	info, err := uc.Execute(context.Background(), "verano10", 1)

	require.NoError(t, err)
	assert.Equal(t, studio.CodeCoupon, info.Kind)
	assert.Equal(t, 10.0, info.DiscountPercentage)
	assert.Empty(t, info.CustomerName)
}

func TestResolveCode_Bono(t *testing.T) {
	repo := newMemRepo()
	repo.bonos["b1"] = &models.HourBono{
		ID: "b1", Code: "BONO-AB12CD34", CustomerName: "Laura",
		RemainingHours: 4, TotalHours: 10, IsActive: true,
	}
	uc := NewResolveCode(repo)

	info, err := uc.Execute(context.Background(), "BONO-AB12CD34", 2)

	require.NoError(t, err)
	assert.Equal(t, studio.CodeBono, info.Kind)
	assert.Equal(t, 4.0, info.RemainingHours)
	assert.Equal(t, "Laura", info.CustomerName)
}

func TestResolveCode_NotFound(t *testing.T) {
	uc := NewResolveCode(newMemRepo())

	_, err := uc.Execute(context.Background(), "NADA", 1)
	assert.True(t, httperr.IsBusiness(err, "code_not_found"))
}
