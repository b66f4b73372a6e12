package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports"
)

type DiscountService struct {
	coupons ports.CouponRepo
}

func NewDiscountService(coupons ports.CouponRepo) *DiscountService {
	return &DiscountService{coupons: coupons}
}

// Quote checks a coupon code against active promotions. An unknown or
// inactive code is a normal invalid verdict, not an error.
func (s *DiscountService) Quote(ctx context.Context, code string, price float64) (domain.Quote, error) {
	coupon, err := s.coupons.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return domain.Quote{Valid: false}, nil
		}
		return domain.Quote{}, fmt.Errorf("get coupon: %w", err)
	}

	return domain.Quote{
		Valid:    true,
		Discount: price * coupon.Rate / 100,
	}, nil
}
