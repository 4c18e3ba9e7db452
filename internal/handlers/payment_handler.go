package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgrstudio/streampulse-api/internal/config"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/httpresp"
	"github.com/dgrstudio/streampulse-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	cfg      *config.Config
	start    *booking.StartCardPayment
	complete *booking.CompleteCardPayment
}

func NewPaymentHandler(
	cfg *config.Config,
	start *booking.StartCardPayment,
	complete *booking.CompleteCardPayment,
) *PaymentHandler {
	return &PaymentHandler{
		cfg:      cfg,
		start:    start,
		complete: complete,
	}
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *PaymentHandler) StartCheckout(c *gin.Context) {
	if h.cfg.MPAccessToken == "" {
		httperr.BadRequest(c, "card_payments_disabled", "El pago con tarjeta no está habilitado.")
		return
	}

	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	returnURL := h.cfg.PublicBaseURL + "/api/public/payments/return"

	checkout, err := h.start.Execute(c.Request.Context(), in, returnURL)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, checkout)
}

// ======================================================
// RETORNO
// ======================================================

// Return es la vuelta de la pasarela. Solo el indicador "approved" crea
// la reserva; cualquier otro resultado descarta el borrador.
func (h *PaymentHandler) Return(c *gin.Context) {
	ref := c.Query("external_reference")
	if ref == "" {
		ref = c.Query("ref")
	}
	if ref == "" {
		httperr.BadRequest(c, "missing_reference", "Falta la referencia del pago.")
		return
	}

	status := c.Query("collection_status")
	if status == "" {
		status = c.Query("status")
	}
	approved := status == "approved"

	b, err := h.complete.Execute(c.Request.Context(), ref, approved)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(201, b)
}
