package ports

import (
	"context"
	"time"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

type TestRepo interface {
	Create(ctx context.Context, t *domain.Test) error
	GetByID(ctx context.Context, id string) (*domain.Test, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Test, error)
	Update(ctx context.Context, id string, in domain.UpdateTestInput) error
	Delete(ctx context.Context, id string) error
}
