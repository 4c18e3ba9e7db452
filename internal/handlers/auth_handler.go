package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/config"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/lockout"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	db      *gorm.DB
	cfg     *config.Config
	guard   *lockout.Guard
	auditor *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	guard *lockout.Guard,
	auditor *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		cfg:     cfg,
		guard:   guard,
		auditor: auditor,
	}
}

// ======================================================
// LOGIN
// ======================================================

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.guard.Allowed(c.Request.Context(), email) {
		httperr.Write(c, http.StatusTooManyRequests, "too_many_attempts", "Demasiados intentos. Prueba más tarde.")
		return
	}

	var admin models.AdminUser
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&admin).Error
	if err != nil {
		h.guard.RegisterFailure(c.Request.Context(), email)
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		h.guard.RegisterFailure(c.Request.Context(), email)
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	h.guard.Reset(c.Request.Context(), email)

	claims := jwt.MapClaims{
		"sub":   float64(admin.ID),
		"email": admin.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "No se pudo generar el token.")
		return
	}

	h.auditor.Dispatch(audit.Event{
		Action:   audit.ActionAdminLogin,
		Entity:   "admin_user",
		EntityID: admin.Email,
	})

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"email": admin.Email,
	})
}
