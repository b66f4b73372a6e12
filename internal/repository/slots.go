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

// SlotRepository owns the slots column of the tests table. Both mutations
// are single conditional UPDATEs so that concurrent callers can never race
// the check against the decrement.
type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Reserve(ctx context.Context, testID string) error {
	query := `UPDATE tests
			  SET slots = slots - 1, updated_at = now()
			  WHERE id = $1 AND slots > 0`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, testID)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: тест не найден или мест нет
		return r.missReason(ctx, testID, domain.ErrNoSlotsLeft)
	}

	return nil
}

func (r *SlotRepository) Release(ctx context.Context, testID string) error {
	query := `UPDATE tests
			  SET slots = slots + 1, updated_at = now()
			  WHERE id = $1 AND slots < total_slots`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, testID)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		// Уже на максимуме — no-op, но отсутствие теста это ошибка
		return r.missReason(ctx, testID, nil)
	}

	return nil
}

func (r *SlotRepository) missReason(ctx context.Context, testID string, full error) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT 1 FROM tests WHERE id = $1`, testID)
	if err != nil {
		return fmt.Errorf("check test: %w", err)
	}

	var one int
	if err = row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTestNotFound
		}
		return fmt.Errorf("scan test: %w", err)
	}

	return full
}
