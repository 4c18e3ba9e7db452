package models

import "time"

// HomeContent es la configuración editorial y de pagos del estudio.
// Hay una única fila.
type HomeContent struct {
	ID uint `gorm:"primaryKey" json:"-"`

	StudioName        string `gorm:"size:100" json:"studioName"`
	HeroTitle         string `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle      string `gorm:"size:500" json:"heroSubtitle"`
	HeroImageURL      string `gorm:"size:500" json:"heroImageUrl"`
	BannerTitle       string `gorm:"size:255" json:"bannerTitle"`
	StudioDescription string `gorm:"type:text" json:"studioDescription"`
	AdminEmail        string `gorm:"size:100" json:"adminEmail"`

	FooterText          string `gorm:"size:255" json:"footerText"`
	FooterSecondaryText string `gorm:"size:255" json:"footerSecondaryText"`

	// Métodos de pago manuales y pasarela
	CardEnabled    bool   `json:"cardEnabled"`
	BizumEnabled   bool   `json:"bizumEnabled"`
	BizumPhone     string `gorm:"size:30" json:"bizumPhone"`
	RevolutEnabled bool   `json:"revolutEnabled"`
	RevolutLink    string `gorm:"size:255" json:"revolutLink"`
	RevolutTag     string `gorm:"size:50" json:"revolutTag"`

	SeasonalDiscount float64 `json:"seasonalDiscount,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
