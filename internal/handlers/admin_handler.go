package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/httpresp"
	"github.com/dgrstudio/streampulse-api/internal/models"
	"github.com/dgrstudio/streampulse-api/internal/snapshot"
	"github.com/dgrstudio/streampulse-api/internal/syncmirror"
	"github.com/dgrstudio/streampulse-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db      *gorm.DB
	confirm *booking.ConfirmBooking
	cancel  *booking.CancelBooking
	mirror  *syncmirror.Mirror
}

func NewAdminHandler(
	db *gorm.DB,
	confirm *booking.ConfirmBooking,
	cancel *booking.CancelBooking,
	mirror *syncmirror.Mirror,
) *AdminHandler {
	return &AdminHandler{
		db:      db,
		confirm: confirm,
		cancel:  cancel,
		mirror:  mirror,
	}
}

// ======================================================
// RESERVAS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	var bookings []models.Booking
	err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		httperr.Internal(c, "list_bookings_failed", "No se pudieron cargar las reservas.")
		return
	}
	httpresp.List(c, bookings)
}

func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	b, err := h.confirm.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, b)
}

// CancelBooking marca la reserva como cancelada pero la conserva: deja
// de bloquear huecos y sigue visible en el panel.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	b, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, b)
}

// ReplaceBookings sustituye la colección entera de reservas. Lo usa el
// cliente de sync del panel; las altas normales van por la API pública.
func (h *AdminHandler) ReplaceBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := c.ShouldBindJSON(&bookings); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	snap := snapshot.Snapshot{Bookings: bookings}
	if err := snapshot.Apply(c.Request.Context(), h.db, &snap); err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, gin.H{"replaced": len(bookings)})
}

// ======================================================
// BONOS
// ======================================================

func (h *AdminHandler) ListBonos(c *gin.Context) {
	var bonos []models.HourBono
	err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&bonos).Error
	if err != nil {
		httperr.Internal(c, "list_bonos_failed", "No se pudieron cargar los bonos.")
		return
	}
	httpresp.List(c, bonos)
}

// ======================================================
// CONFIGURACIÓN (REEMPLAZO COMPLETO)
// ======================================================

// El panel edita colecciones enteras y las envía completas; cada PUT
// sustituye la colección, no la parchea.

func (h *AdminHandler) ReplacePacks(c *gin.Context) {
	var packs []models.Pack
	if err := c.ShouldBindJSON(&packs); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	snap := snapshot.Snapshot{Packs: packs}
	if err := snapshot.Apply(c.Request.Context(), h.db, &snap); err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, gin.H{"replaced": len(packs)})
}

func (h *AdminHandler) ReplaceHomeContent(c *gin.Context) {
	var home snapshot.HomeContent
	if err := c.ShouldBindJSON(&home); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	snap := snapshot.Snapshot{HomeContent: &home}
	if err := snapshot.Apply(c.Request.Context(), h.db, &snap); err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *AdminHandler) ReplaceAvailability(c *gin.Context) {
	var av snapshot.Availability
	if err := c.ShouldBindJSON(&av); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := snapshot.ApplyAvailability(c.Request.Context(), h.db, &av); err != nil {
		writeDomainError(c, err)
		return
	}

	h.mirror.Notify()
	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// AUDITORÍA
// ======================================================

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "list_audit_failed", "No se pudo cargar la auditoría.")
		return
	}
	httpresp.List(c, logs)
}
