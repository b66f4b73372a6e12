package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	testRepo    ports.TestRepo
	slots       ports.SlotLedger
	notifier    ports.OpsNotifier
	authz       Authz
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	testRepo ports.TestRepo,
	slots ports.SlotLedger,
	notifier ports.OpsNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		testRepo:    testRepo,
		slots:       slots,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create reserves a slot and only then persists the booking. Reservation and
// insert are logically one transaction: a failed insert releases the slot it
// just consumed.
func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	test, err := s.testRepo.GetByID(ctx, in.TestID)
	if err != nil {
		return nil, fmt.Errorf("check test: %w", err)
	}

	if err = s.slots.Reserve(ctx, in.TestID); err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		TestID:      test.ID,
		TestTitle:   test.Title,
		Email:       in.Email,
		PatientName: in.PatientName,
		Price:       test.Price,
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		// Компенсация: возвращаем зарезервированное место
		if relErr := s.slots.Release(ctx, in.TestID); relErr != nil {
			s.logger.Error("failed to release slot after insert failure",
				logger.String("test_id", in.TestID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("test_id", test.ID),
		logger.String("email", booking.Email),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Fulfill attaches the result and moves the booking to delivered. The caller
// must have passed the CanFulfill gate. Calling it again overwrites the
// payload without reverting the status.
func (s *BookingService) Fulfill(ctx context.Context, id, result string) error {
	if err := s.bookingRepo.SetResult(ctx, id, result); err != nil {
		return fmt.Errorf("set result: %w", err)
	}

	s.logger.Info("booking result delivered",
		logger.String("booking_id", id),
	)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get booking for notification",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyResultDelivered(context.WithoutCancel(ctx), booking)

	return nil
}

// Cancel deletes a booking after the ownership check and restores the slot
// the booking was holding.
func (s *BookingService) Cancel(ctx context.Context, id string, p domain.Principal) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if !s.authz.CanDelete(p, booking) {
		return domain.ErrForbidden
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	// Место возвращается в пул; тест мог быть удалён из каталога
	if err = s.slots.Release(ctx, booking.TestID); err != nil {
		s.logger.Error("failed to release slot on cancel",
			logger.String("booking_id", id),
			logger.String("test_id", booking.TestID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("by", p.Email),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

func (s *BookingService) ListForPrincipal(ctx context.Context, email string, status domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEmailAndStatus(ctx, email, status)
}

func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *BookingService) SearchByEmail(ctx context.Context, query string) ([]*domain.Booking, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}

	return s.bookingRepo.SearchByEmail(ctx, query)
}
