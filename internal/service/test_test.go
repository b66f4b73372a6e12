package service

import (
	"context"
	"testing"
	"time"

	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestService_Create_Success(t *testing.T) {
	repo := mocks.NewMockTestRepo(t)
	svc := NewTestService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	test, err := svc.Create(context.Background(), domain.CreateTestInput{
		Title:         "Complete Blood Count",
		Price:         49.5,
		TotalSlots:    20,
		AvailableDate: time.Now().Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 20, test.TotalSlots)
	assert.Equal(t, 20, test.Slots, "a new offering starts with full capacity")
	assert.NotEmpty(t, test.ID)
}

func TestTestService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateTestInput
	}{
		{"missing title", domain.CreateTestInput{Price: 10, TotalSlots: 5}},
		{"negative price", domain.CreateTestInput{Title: "X", Price: -1, TotalSlots: 5}},
		{"zero slots", domain.CreateTestInput{Title: "X", Price: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockTestRepo(t)
			svc := NewTestService(repo)

			_, err := svc.Create(context.Background(), tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTestService_ListUpcoming_FromStartOfDay(t *testing.T) {
	repo := mocks.NewMockTestRepo(t)
	svc := NewTestService(repo)

	repo.EXPECT().ListUpcoming(mock.Anything, mock.MatchedBy(func(from time.Time) bool {
		now := time.Now().UTC()
		return from.Hour() == 0 && from.Minute() == 0 && from.Day() == now.Day()
	})).Return([]*domain.Test{{ID: "t1"}}, nil)

	tests, err := svc.ListUpcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, tests, 1)
}

func TestTestService_Update_Validation(t *testing.T) {
	repo := mocks.NewMockTestRepo(t)
	svc := NewTestService(repo)

	err := svc.Update(context.Background(), "t1", domain.UpdateTestInput{Title: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
