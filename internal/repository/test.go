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

type TestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTestRepo(db *dbpg.DB) *TestRepository {
	return &TestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TestRepository) Create(ctx context.Context, t *domain.Test) error {
	query := `INSERT INTO tests (id, title, details, image_url, price, total_slots, slots, available_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Title, t.Details, t.ImageURL, t.Price,
		t.TotalSlots, t.Slots, t.AvailableDate, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert test: %w", err)
	}

	return nil
}

func (r *TestRepository) GetByID(ctx context.Context, id string) (*domain.Test, error) {
	query := `SELECT id, title, details, image_url, price, total_slots, slots, available_date, created_at, updated_at
			  FROM tests
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}

	var t domain.Test
	if err = row.Scan(
		&t.ID, &t.Title, &t.Details, &t.ImageURL, &t.Price,
		&t.TotalSlots, &t.Slots, &t.AvailableDate, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTestNotFound
		}
		return nil, fmt.Errorf("scan test: %w", err)
	}

	return &t, nil
}

func (r *TestRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Test, error) {
	query := `SELECT id, title, details, image_url, price, total_slots, slots, available_date, created_at, updated_at
			  FROM tests
			  WHERE available_date >= $1
			  ORDER BY available_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Test
	for rows.Next() {
		var t domain.Test
		if err = rows.Scan(
			&t.ID, &t.Title, &t.Details, &t.ImageURL, &t.Price,
			&t.TotalSlots, &t.Slots, &t.AvailableDate, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan test: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

// Update never touches slots or total_slots, those belong to the slot ledger.
func (r *TestRepository) Update(ctx context.Context, id string, in domain.UpdateTestInput) error {
	query := `UPDATE tests
			  SET title = $2, details = $3, image_url = $4, price = $5, available_date = $6, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, in.Title, in.Details, in.ImageURL, in.Price, in.AvailableDate,
	)
	if err != nil {
		return fmt.Errorf("update test: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTestNotFound
	}

	return nil
}

func (r *TestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete test: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTestNotFound
	}

	return nil
}
