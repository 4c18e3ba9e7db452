package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
)

// ======================================================
// MAPEO DE ERRORES DE NEGOCIO
// ======================================================

var notFoundCodes = map[string]bool{
	"pack_not_found":          true,
	"extra_not_found":         true,
	"booking_not_found":       true,
	"code_not_found":          true,
	"bono_pack_not_found":     true,
	"payment_draft_not_found": true,
}

var conflictCodes = map[string]bool{
	"slot_occupied": true,
	"invalid_state": true,
}

func writeDomainError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	switch {
	case notFoundCodes[code]:
		httperr.NotFound(c, code, "No encontrado.")
	case conflictCodes[code]:
		httperr.Conflict(c, code, "La operación entra en conflicto con el estado actual.")
	default:
		httperr.BadRequest(c, code, "Solicitud inválida.")
	}
}
