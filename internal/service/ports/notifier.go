package ports

import (
	"context"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

type OpsNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyResultDelivered(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
}
