package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CouponRepository reads promotion data; this service never writes it.
type CouponRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCouponRepo(db *dbpg.DB) *CouponRepository {
	return &CouponRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CouponRepository) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	// Точное сравнение кода, с учётом регистра
	query := `SELECT code, rate, active
			  FROM promotions
			  WHERE code = $1 AND active
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	var c domain.Coupon
	if err = row.Scan(&c.Code, &c.Rate, &c.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}

	return &c, nil
}
