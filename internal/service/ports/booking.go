package ports

import (
	"context"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetResult(ctx context.Context, id, result string) error
	Delete(ctx context.Context, id string) error
	ListByEmailAndStatus(ctx context.Context, email string, status domain.BookingStatus) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	SearchByEmail(ctx context.Context, query string) ([]*domain.Booking, error)
}
