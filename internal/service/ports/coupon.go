package ports

import (
	"context"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

type CouponRepo interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
}
