package studio

import (
	"strings"

	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

type CodeKind string

const (
	CodeCoupon CodeKind = "coupon"
	CodeBono   CodeKind = "bono"
)

// CodeResolution es el resultado de resolver un código introducido por el
// cliente: o un cupón o un bono, nunca ambos.
type CodeResolution struct {
	Kind   CodeKind
	Coupon *models.Coupon
	Bono   *models.HourBono
}

// ResolveCode busca el código primero entre los cupones (comparación sin
// distinguir mayúsculas) y después entre los bonos; gana la primera
// coincidencia. Cada fallo tiene su motivo propio:
//
//   - code_not_found: no coincide con nada
//   - code_inactive: coincide pero la entidad está desactivada
//   - insufficient_bono_balance: el bono no cubre la duración pedida
//
// Cualquier fallo invalida el descuento que hubiera aplicado antes: el
// llamante no debe conservar una resolución anterior tras un error.
func ResolveCode(code string, coupons []models.Coupon, bonos []models.HourBono, duration float64) (*CodeResolution, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return nil, httperr.ErrBusiness("code_not_found")
	}

	for i := range coupons {
		if strings.ToLower(coupons[i].Code) != normalized {
			continue
		}
		if !coupons[i].IsActive {
			return nil, httperr.ErrBusiness("code_inactive")
		}
		return &CodeResolution{Kind: CodeCoupon, Coupon: &coupons[i]}, nil
	}

	for i := range bonos {
		if strings.ToLower(bonos[i].Code) != normalized {
			continue
		}
		if !bonos[i].IsActive {
			return nil, httperr.ErrBusiness("code_inactive")
		}
		if bonos[i].RemainingHours < duration {
			return nil, httperr.ErrBusiness("insufficient_bono_balance")
		}
		return &CodeResolution{Kind: CodeBono, Bono: &bonos[i]}, nil
	}

	return nil, httperr.ErrBusiness("code_not_found")
}
