package studio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

func validSelection() Selection {
	return Selection{
		Date:     "2026-03-02",
		Slot:     &Slot{Hour: 16, Label: "16:00"},
		Duration: 2,
		Pack:     packStreaming,
		ExtraIDs: []string{"dj"},
	}
}

func validCustomer() Customer {
	return Customer{Name: "Laura", Email: "laura@example.com", Phone: "600111222"}
}

func TestAssemble_Session(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	b, update, err := Assemble(validSelection(), validCustomer(), PricingResult{Total: 90}, MethodBizum, now)

	require.NoError(t, err)
	require.Nil(t, update)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "2026-03-02", b.Date)
	assert.Equal(t, 16.0, b.StartTime)
	assert.Equal(t, 2.0, b.Duration)
	assert.Equal(t, 90.0, b.TotalPrice)
	assert.Equal(t, string(StatusPendingVerification), b.Status)
	assert.Equal(t, string(MethodBizum), b.PaymentMethod)
	assert.Equal(t, now, b.CreatedAt)
}

func TestAssemble_StatusByMethod(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		want   Status
	}{
		{MethodBizum, StatusPendingVerification},
		{MethodRevolut, StatusPendingVerification},
		{MethodCard, StatusConfirmed},
		{MethodBono, StatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			b, _, err := Assemble(validSelection(), validCustomer(), PricingResult{}, tt.method, time.Now())
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), b.Status)
		})
	}
}

func TestAssemble_OccupiedSlotRejected(t *testing.T) {
	sel := validSelection()
	sel.Slot = &Slot{Hour: 16, IsOccupied: true, Status: "confirmed"}

	_, _, err := Assemble(sel, validCustomer(), PricingResult{}, MethodBizum, time.Now())

	assert.True(t, httperr.IsBusiness(err, "slot_occupied"))
}

func TestAssemble_NoSlotSelected(t *testing.T) {
	sel := validSelection()
	sel.Slot = nil

	_, _, err := Assemble(sel, validCustomer(), PricingResult{}, MethodBizum, time.Now())

	assert.True(t, httperr.IsBusiness(err, "no_slot_selected"))
}

func TestAssemble_ContactValidation(t *testing.T) {
	noName := validCustomer()
	noName.Name = "  "
	_, _, err := Assemble(validSelection(), noName, PricingResult{}, MethodBizum, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_name"))

	noEmail := validCustomer()
	noEmail.Email = ""
	_, _, err = Assemble(validSelection(), noEmail, PricingResult{}, MethodBizum, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_email"))
}

func TestAssemble_PhoneOnlyForManualMethods(t *testing.T) {
	cust := validCustomer()
	cust.Phone = ""

	_, _, err := Assemble(validSelection(), cust, PricingResult{}, MethodBizum, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_phone"))

	_, _, err = Assemble(validSelection(), cust, PricingResult{}, MethodRevolut, time.Now())
	assert.True(t, httperr.IsBusiness(err, "missing_phone"))

	// Tarjeta y bono no exigen teléfono.
	_, _, err = Assemble(validSelection(), cust, PricingResult{}, MethodCard, time.Now())
	assert.NoError(t, err)

	_, _, err = Assemble(validSelection(), cust, PricingResult{BonoID: "b1"}, MethodBono, time.Now())
	assert.NoError(t, err)
}

func TestAssemble_BonoRedemptionCarriesUpdate(t *testing.T) {
	pricing := PricingResult{
		Total:              20,
		AppliedBonoCode:    "BONO-AB12CD34",
		BonoID:             "b1",
		BonoRemainderAfter: 3,
	}

	b, update, err := Assemble(validSelection(), validCustomer(), pricing, MethodBono, time.Now())

	require.NoError(t, err)
	require.NotNil(t, update)
	assert.Equal(t, "b1", update.BonoID)
	assert.Equal(t, 3.0, update.RemainingHours)
	assert.Equal(t, "BONO-AB12CD34", b.AppliedBonoCode)
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestAssemble_BonoPurchaseSkipsSlot(t *testing.T) {
	sel := Selection{
		Date:     models.DateBonoPurchase,
		Duration: 10,
		Pack:     packStreaming,
	}

	b, update, err := Assemble(sel, validCustomer(), PricingResult{Total: 280}, MethodBizum, time.Now())

	require.NoError(t, err)
	assert.Nil(t, update)
	assert.True(t, b.IsBonoPurchase())
	assert.Equal(t, 0.0, b.StartTime)
	assert.Equal(t, 10.0, b.Duration)
	assert.Equal(t, string(StatusPendingVerification), b.Status)
}
