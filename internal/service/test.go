package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports"
)

type TestService struct {
	repo ports.TestRepo
}

func NewTestService(repo ports.TestRepo) *TestService {
	return &TestService{repo: repo}
}

func (s *TestService) Create(ctx context.Context, in domain.CreateTestInput) (*domain.Test, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if in.TotalSlots <= 0 {
		return nil, fmt.Errorf("%w: total_slots must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	test := &domain.Test{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Details:       in.Details,
		ImageURL:      in.ImageURL,
		Price:         in.Price,
		TotalSlots:    in.TotalSlots,
		Slots:         in.TotalSlots,
		AvailableDate: in.AvailableDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("create test: %w", err)
	}

	return test, nil
}

func (s *TestService) GetByID(ctx context.Context, id string) (*domain.Test, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUpcoming returns offerings available from the start of today onward.
func (s *TestService) ListUpcoming(ctx context.Context) ([]*domain.Test, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.repo.ListUpcoming(ctx, from)
}

func (s *TestService) Update(ctx context.Context, id string, in domain.UpdateTestInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, in)
}

func (s *TestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
