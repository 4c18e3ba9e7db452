package booking

import (
	"context"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
)

type ResolveCode struct {
	repo studio.Repository
}

func NewResolveCode(repo studio.Repository) *ResolveCode {
	return &ResolveCode{repo: repo}
}

// CodeInfo describe al cliente qué ha resuelto su código, sin exponer la
// entidad completa.
type CodeInfo struct {
	Kind               studio.CodeKind `json:"kind"`
	DiscountPercentage float64         `json:"discountPercentage,omitempty"`
	RemainingHours     float64         `json:"remainingHours,omitempty"`
	CustomerName       string          `json:"customerName,omitempty"`
}

func (uc *ResolveCode) Execute(
	ctx context.Context,
	code string,
	duration float64,
) (*CodeInfo, error) {

	if err := validateDuration(duration); err != nil {
		return nil, err
	}

	coupons, err := uc.repo.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	bonos, err := uc.repo.ListHourBonos(ctx)
	if err != nil {
		return nil, err
	}

	res, err := studio.ResolveCode(code, coupons, bonos, duration)
	if err != nil {
		return nil, err
	}

	if res.Kind == studio.CodeCoupon {
		return &CodeInfo{
			Kind:               studio.CodeCoupon,
			DiscountPercentage: res.Coupon.DiscountPercentage,
		}, nil
	}

	return &CodeInfo{
		Kind:           studio.CodeBono,
		RemainingHours: res.Bono.RemainingHours,
		CustomerName:   res.Bono.CustomerName,
	}, nil
}
