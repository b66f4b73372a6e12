package service

import (
	"context"
	"fmt"
	"math"

	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const paymentCurrency = "usd"

type PaymentService struct {
	gateway ports.PaymentGateway
	logger  logger.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, logger logger.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, logger: logger}
}

// CreateIntent converts the price from major to minor units and requests an
// intent from the gateway. Gateway failures are surfaced, never retried:
// a repeated call would mint another intent.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	amount := toMinorUnits(price)

	intent, err := s.gateway.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		s.logger.Error("payment intent creation failed",
			logger.Int64("amount", amount),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentGateway, err)
	}

	return intent, nil
}

// toMinorUnits усекает цену до целых центов. Поправка в 1e-6 съедает ошибку
// двоичного представления (19.99*100 == 1998.999...), но не доли цента:
// 19.999 остаётся 1999.
func toMinorUnits(price float64) int64 {
	return int64(math.Trunc(price*100 + 1e-6))
}
