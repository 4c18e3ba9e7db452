package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/config"
	"github.com/dgrstudio/streampulse-api/internal/handlers"
	infraRepo "github.com/dgrstudio/streampulse-api/internal/infra/repository"
	"github.com/dgrstudio/streampulse-api/internal/lockout"
	"github.com/dgrstudio/streampulse-api/internal/middleware"
	"github.com/dgrstudio/streampulse-api/internal/payments"
	"github.com/dgrstudio/streampulse-api/internal/syncmirror"
	ucBooking "github.com/dgrstudio/streampulse-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	studioRepo := infraRepo.NewStudioGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mirror := syncmirror.New(cfg.ReplicaURL, db)
	guard := lockout.NewGuard(rdb)
	drafts := payments.NewDraftStore(rdb)

	var gateway payments.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to init payment gateway: %v", err)
		}
		gateway = mp
	}

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(studioRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		studioRepo,
		auditDispatcher,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		studioRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		studioRepo,
		auditDispatcher,
	)

	resolveCodeUC := ucBooking.NewResolveCode(studioRepo)

	startCardUC := ucBooking.NewStartCardPayment(
		createBookingUC,
		drafts,
		gateway,
	)

	completeCardUC := ucBooking.NewCompleteCardPayment(
		createBookingUC,
		drafts,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		db,
		studioRepo,
		availabilityUC,
		createBookingUC,
		resolveCodeUC,
	)

	paymentHandler := handlers.NewPaymentHandler(cfg, startCardUC, completeCardUC)
	authHandler := handlers.NewAuthHandler(db, cfg, guard, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db, confirmBookingUC, cancelBookingUC, mirror)
	syncHandler := handlers.NewSyncHandler(db, auditDispatcher, mirror)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/packs", publicHandler.ListPacks)
			publicAPI.GET("/home", publicHandler.GetHome)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/codes/resolve", publicHandler.ResolveCode)

			publicAPI.POST("/payments/checkout", paymentHandler.StartCheckout)
			publicAPI.GET("/payments/return", paymentHandler.Return)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔄 SYNC (INSTANTÁNEA COMPLETA)
		// ------------------------------
		api.GET("/sync", syncHandler.Pull)
		api.POST("/sync", syncHandler.Push)

		// ------------------------------
		// 🔐 API PRIVADA (PANEL)
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", adminHandler.ListBookings)
			secured.PUT("/bookings", adminHandler.ReplaceBookings)
			secured.POST("/bookings/:id/confirm", adminHandler.ConfirmBooking)
			secured.DELETE("/bookings/:id", adminHandler.CancelBooking)

			secured.GET("/bonos", adminHandler.ListBonos)

			secured.PUT("/packs", adminHandler.ReplacePacks)
			secured.PUT("/home", adminHandler.ReplaceHomeContent)
			secured.PUT("/availability", adminHandler.ReplaceAvailability)

			secured.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}
}
