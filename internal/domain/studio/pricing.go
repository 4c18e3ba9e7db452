package studio

import (
	"math"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

// SessionTotal calcula el precio de una sesión sin bono:
// (pack + extras) por hora, por duración, y cupón porcentual si lo hay.
func SessionTotal(pack models.Pack, extras []models.Extra, duration float64, coupon *models.Coupon) float64 {
	total := (pack.PricePerHour + extrasPerHour(extras)) * duration
	if coupon != nil {
		total *= 1 - coupon.DiscountPercentage/100
	}
	return round2(total)
}

// BonoSessionTotal calcula el precio de una sesión canjeando bono: el bono
// cubre las horas del pack por completo y solo se cobran los extras.
// Precondición: el saldo debe cubrir la duración; un saldo insuficiente se
// rechaza aquí, nunca se recorta a cero después.
func BonoSessionTotal(extras []models.Extra, duration float64, bono models.HourBono) (total, remainderAfter float64, err error) {
	if bono.RemainingHours < duration {
		return 0, 0, httperr.ErrBusiness("insufficient_bono_balance")
	}
	return round2(extrasPerHour(extras) * duration), bono.RemainingHours - duration, nil
}

// BonoPurchaseTotal calcula el precio de compra de un paquete de horas con
// el descuento de su tramo.
func BonoPurchaseTotal(pack models.Pack, extras []models.Extra, tier models.BonoPack) float64 {
	hourlyBase := pack.PricePerHour + extrasPerHour(extras)
	return round2(hourlyBase * tier.Hours * (1 - tier.DiscountPercentage/100))
}

// ValidateBonoPackTiers comprueba que la curva de descuento sea no
// decreciente con el tamaño del paquete. tiers debe venir ordenado por
// horas ascendente.
func ValidateBonoPackTiers(tiers []models.BonoPack) error {
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Hours <= tiers[i-1].Hours {
			return httperr.ErrBusiness("bono_pack_hours_not_increasing")
		}
		if tiers[i].DiscountPercentage < tiers[i-1].DiscountPercentage {
			return httperr.ErrBusiness("bono_pack_discount_decreasing")
		}
	}
	return nil
}

func extrasPerHour(extras []models.Extra) float64 {
	var sum float64
	for _, e := range extras {
		sum += e.Price
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
