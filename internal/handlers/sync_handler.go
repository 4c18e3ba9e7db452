package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/httpresp"
	"github.com/dgrstudio/streampulse-api/internal/snapshot"
	"github.com/dgrstudio/streampulse-api/internal/syncmirror"
)

// ======================================================
// HANDLER
// ======================================================

// SyncHandler intercambia la instantánea completa del estudio. GET la
// entrega; POST la reemplaza entera (último escritor gana).
type SyncHandler struct {
	db      *gorm.DB
	auditor *audit.Dispatcher
	mirror  *syncmirror.Mirror
}

func NewSyncHandler(
	db *gorm.DB,
	auditor *audit.Dispatcher,
	mirror *syncmirror.Mirror,
) *SyncHandler {
	return &SyncHandler{
		db:      db,
		auditor: auditor,
		mirror:  mirror,
	}
}

// ======================================================
// PULL / PUSH
// ======================================================

func (h *SyncHandler) Pull(c *gin.Context) {
	snap, err := snapshot.Build(c.Request.Context(), h.db)
	if err != nil {
		httperr.Internal(c, "snapshot_failed", "No se pudo construir la instantánea.")
		return
	}
	httpresp.OK(c, snap)
}

func (h *SyncHandler) Push(c *gin.Context) {
	var snap snapshot.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		httperr.BadRequest(c, "invalid_request", "Instantánea inválida.")
		return
	}

	if err := snapshot.Apply(c.Request.Context(), h.db, &snap); err != nil {
		writeDomainError(c, err)
		return
	}

	h.auditor.Dispatch(audit.Event{
		Action: audit.ActionSnapshotReplaced,
		Entity: "snapshot",
	})
	h.mirror.Notify()

	httpresp.OK(c, gin.H{"status": "ok"})
}
