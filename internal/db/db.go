package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/config"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Pack{},
		&models.Extra{},
		&models.Coupon{},
		&models.HourBono{},
		&models.BonoPack{},
		&models.StudioHours{},
		&models.DateOverride{},
		&models.HomeContent{},
		&models.Booking{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seed(db, cfg)

	return db
}

// seed deja el estudio operativo en el primer arranque. Solo rellena
// tablas vacías; nunca pisa datos existentes.
func seed(db *gorm.DB, cfg *config.Config) {
	var count int64

	db.Model(&models.StudioHours{}).Count(&count)
	if count == 0 {
		hours := []models.StudioHours{
			{Weekday: 0, IsOpen: false},
			{Weekday: 1, IsOpen: true, StartHour: 10, EndHour: 22},
			{Weekday: 2, IsOpen: true, StartHour: 10, EndHour: 22},
			{Weekday: 3, IsOpen: true, StartHour: 10, EndHour: 22},
			{Weekday: 4, IsOpen: true, StartHour: 10, EndHour: 22},
			{Weekday: 5, IsOpen: true, StartHour: 10, EndHour: 22},
			{Weekday: 6, IsOpen: true, StartHour: 12, EndHour: 20},
		}
		db.Create(&hours)
	}

	db.Model(&models.Pack{}).Count(&count)
	if count == 0 {
		packs := []models.Pack{
			{
				ID:           "basic",
				Name:         "Estudio Solo",
				Description:  "Uso del espacio sin equipamiento técnico.",
				PricePerHour: 15,
				Features:     models.StringList{"Insonorización", "Aire Acondicionado", "WiFi Alta Velocidad"},
				Icon:         "🏠",
				IsActive:     true,
			},
			{
				ID:           "streaming",
				Name:         "Pack Streaming Pro",
				Description:  "Incluye cámaras 4K y PC de alto rendimiento configurado para OBS.",
				PricePerHour: 35,
				Features:     models.StringList{"2x Cámaras 4K Sony", "PC i9/RTX 4080", "Focos LED Elgato"},
				Icon:         "🎥",
				IsActive:     true,
			},
		}
		db.Create(&packs)
	}

	db.Model(&models.BonoPack{}).Count(&count)
	if count == 0 {
		tiers := []models.BonoPack{
			{ID: "bono-3", Hours: 3, DiscountPercentage: 5, Name: "Bono 3 Horas"},
			{ID: "bono-5", Hours: 5, DiscountPercentage: 10, Name: "Bono 5 Horas"},
			{ID: "bono-10", Hours: 10, DiscountPercentage: 20, Name: "Bono 10 Horas"},
		}
		db.Create(&tiers)
	}

	db.Model(&models.HomeContent{}).Count(&count)
	if count == 0 {
		home := models.HomeContent{
			StudioName:        "STREAMPULSE",
			HeroTitle:         "TU SET DE DJ\nAL NIVEL MUNDIAL",
			HeroSubtitle:      "Reserva el estudio de streaming más avanzado para DJs.",
			BannerTitle:       "TECNOLOGÍA PUNTA",
			StudioDescription: "No es solo un estudio, es tu marca personal.",
			AdminEmail:        cfg.AdminEmail,
			CardEnabled:       cfg.MPAccessToken != "",
			BizumEnabled:      true,
			BizumPhone:        "600 000 000",
			RevolutEnabled:    true,
			RevolutLink:       "https://revolut.me/tuusuario",
			RevolutTag:        "@tuusuario",
		}
		db.Create(&home)
	}

	db.Model(&models.AdminUser{}).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		db.Create(&models.AdminUser{
			Email:        cfg.AdminEmail,
			PasswordHash: string(hashed),
		})
	}
}
