package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/httpresp"
	"github.com/dgrstudio/streampulse-api/internal/snapshot"
	"github.com/dgrstudio/streampulse-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db           *gorm.DB
	repo         studio.Repository
	availability *booking.GetAvailability
	create       *booking.CreateBooking
	resolveCode  *booking.ResolveCode
}

func NewPublicHandler(
	db *gorm.DB,
	repo studio.Repository,
	availability *booking.GetAvailability,
	create *booking.CreateBooking,
	resolveCode *booking.ResolveCode,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		availability: availability,
		create:       create,
		resolveCode:  resolveCode,
	}
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *PublicHandler) ListPacks(c *gin.Context) {
	packs, err := h.repo.ListPacks(c.Request.Context(), true)
	if err != nil {
		httperr.Internal(c, "list_packs_failed", "No se pudieron cargar los packs.")
		return
	}
	httpresp.List(c, packs)
}

func (h *PublicHandler) GetHome(c *gin.Context) {
	home, err := snapshot.BuildHomeContent(c.Request.Context(), h.db)
	if err != nil {
		httperr.Internal(c, "home_content_failed", "No se pudo cargar la configuración.")
		return
	}
	httpresp.OK(c, home)
}

// ======================================================
// DISPONIBILIDAD
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	duration, err := strconv.ParseFloat(c.DefaultQuery("duration", "1"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date, duration)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// RESERVA
// ======================================================

// CreateBooking atiende los métodos de pago directos. La tarjeta entra
// por el flujo de pasarela (PaymentHandler) y nunca por aquí.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if in.Method == studio.MethodCard {
		httperr.BadRequest(c, "invalid_payment_method", "El pago con tarjeta usa el flujo de pasarela.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(201, b)
}

// ======================================================
// CÓDIGOS
// ======================================================

type resolveCodeRequest struct {
	Code     string  `json:"code" binding:"required"`
	Duration float64 `json:"duration"`
}

func (h *PublicHandler) ResolveCode(c *gin.Context) {
	var req resolveCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	if req.Duration == 0 {
		req.Duration = 1
	}

	info, err := h.resolveCode.Execute(c.Request.Context(), req.Code, req.Duration)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, info)
}
