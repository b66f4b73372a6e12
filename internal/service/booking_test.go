package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockTestRepo, *mocks.MockSlotLedger, *mocks.MockOpsNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	testRepo := mocks.NewMockTestRepo(t)
	slots := mocks.NewMockSlotLedger(t)
	notifier := mocks.NewMockOpsNotifier(t)

	svc := NewBookingService(bookingRepo, testRepo, slots, notifier, newTestLogger(t))
	return svc, bookingRepo, testRepo, slots, notifier
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, testRepo, slots, notifier := newBookingService(t)

	test := &domain.Test{ID: "t1", Title: "CBC", Price: 49.5, TotalSlots: 10, Slots: 3}

	testRepo.EXPECT().GetByID(mock.Anything, "t1").Return(test, nil)
	slots.EXPECT().Reserve(mock.Anything, "t1").Return(nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		TestID:      "t1",
		Email:       "alice@example.com",
		PatientName: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "t1", booking.TestID)
	assert.Equal(t, "CBC", booking.TestTitle)
	assert.Equal(t, 49.5, booking.Price)
	assert.Nil(t, booking.Result)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_MissingEmail(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{TestID: "t1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_TestNotFound(t *testing.T) {
	svc, _, testRepo, _, _ := newBookingService(t)

	testRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTestNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		TestID: "missing",
		Email:  "alice@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}

func TestBookingService_Create_NoSlots(t *testing.T) {
	svc, _, testRepo, slots, _ := newBookingService(t)

	testRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Test{ID: "t1"}, nil)
	slots.EXPECT().Reserve(mock.Anything, "t1").Return(domain.ErrNoSlotsLeft)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		TestID: "t1",
		Email:  "alice@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSlotsLeft)
}

func TestBookingService_Create_InsertFailureReleasesSlot(t *testing.T) {
	svc, bookingRepo, testRepo, slots, _ := newBookingService(t)

	testRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Test{ID: "t1"}, nil)
	slots.EXPECT().Reserve(mock.Anything, "t1").Return(nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	slots.EXPECT().Release(mock.Anything, "t1").Return(nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		TestID: "t1",
		Email:  "alice@example.com",
	})

	require.Error(t, err)
}

func TestBookingService_Fulfill_Success(t *testing.T) {
	svc, bookingRepo, _, _, notifier := newBookingService(t)

	result := "hemoglobin 14.1"
	delivered := &domain.Booking{ID: "b1", TestTitle: "CBC", Email: "alice@example.com", Status: domain.BookingStatusDelivered, Result: &result}

	bookingRepo.EXPECT().SetResult(mock.Anything, "b1", result).Return(nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(delivered, nil)
	notifier.EXPECT().NotifyResultDelivered(mock.Anything, delivered).Return()

	err := svc.Fulfill(context.Background(), "b1", result)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Fulfill_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().SetResult(mock.Anything, "missing", "r").Return(domain.ErrBookingNotFound)

	err := svc.Fulfill(context.Background(), "missing", "r")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Fulfill_OverwriteKeepsDelivered(t *testing.T) {
	svc, bookingRepo, _, _, notifier := newBookingService(t)

	first := "preliminary"
	second := "final"
	delivered := &domain.Booking{ID: "b1", Status: domain.BookingStatusDelivered, Result: &second}

	bookingRepo.EXPECT().SetResult(mock.Anything, "b1", first).Return(nil)
	bookingRepo.EXPECT().SetResult(mock.Anything, "b1", second).Return(nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(delivered, nil).Times(2)
	notifier.EXPECT().NotifyResultDelivered(mock.Anything, delivered).Return().Times(2)

	require.NoError(t, svc.Fulfill(context.Background(), "b1", first))
	require.NoError(t, svc.Fulfill(context.Background(), "b1", second))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Owner(t *testing.T) {
	svc, bookingRepo, _, slots, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", TestID: "t1", Email: "alice@example.com"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	slots.EXPECT().Release(mock.Anything, "t1").Return(nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking).Return()

	err := svc.Cancel(context.Background(), "b1", domain.Principal{Email: "alice@example.com"})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Admin(t *testing.T) {
	svc, bookingRepo, _, slots, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", TestID: "t1", Email: "alice@example.com"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	slots.EXPECT().Release(mock.Anything, "t1").Return(nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking).Return()

	err := svc.Cancel(context.Background(), "b1", domain.Principal{Email: "admin@example.com", IsAdmin: true})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", TestID: "t1", Email: "alice@example.com"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", domain.Principal{Email: "mallory@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", domain.Principal{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListForPrincipal(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", Email: "alice@example.com", Status: domain.BookingStatusPending},
	}
	bookingRepo.EXPECT().
		ListByEmailAndStatus(mock.Anything, "alice@example.com", domain.BookingStatusPending).
		Return(bookings, nil)

	result, err := svc.ListForPrincipal(context.Background(), "alice@example.com", domain.BookingStatusPending)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_SearchByEmail_EmptyQuery(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.SearchByEmail(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- concurrency ---

// fakeLedger emulates the conditional-update semantics of the real slot
// repository: check and decrement are a single atomic step, release is
// capped at total and at-full is a silent no-op.
type fakeLedger struct {
	slots int32
	total int32
}

func (f *fakeLedger) Reserve(_ context.Context, _ string) error {
	for {
		cur := atomic.LoadInt32(&f.slots)
		if cur <= 0 {
			return domain.ErrNoSlotsLeft
		}
		if atomic.CompareAndSwapInt32(&f.slots, cur, cur-1) {
			return nil
		}
	}
}

func (f *fakeLedger) Release(_ context.Context, _ string) error {
	for {
		cur := atomic.LoadInt32(&f.slots)
		if cur >= f.total {
			return nil
		}
		if atomic.CompareAndSwapInt32(&f.slots, cur, cur+1) {
			return nil
		}
	}
}

type fakeBookingRepo struct {
	mocks.MockBookingRepo
	inserted int32
}

func (f *fakeBookingRepo) Create(_ context.Context, _ *domain.Booking) error {
	atomic.AddInt32(&f.inserted, 1)
	return nil
}

type fakeTestRepo struct {
	mocks.MockTestRepo
	test *domain.Test
}

func (f *fakeTestRepo) GetByID(_ context.Context, _ string) (*domain.Test, error) {
	return f.test, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyBookingCreated(context.Context, *domain.Booking)   {}
func (noopNotifier) NotifyResultDelivered(context.Context, *domain.Booking)  {}
func (noopNotifier) NotifyBookingCancelled(context.Context, *domain.Booking) {}

func TestBookingService_Create_OneSlotManyCallers(t *testing.T) {
	const callers = 25

	ledger := &fakeLedger{slots: 1, total: 1}
	bookingRepo := &fakeBookingRepo{}
	testRepo := &fakeTestRepo{test: &domain.Test{ID: "t1", Title: "CBC", TotalSlots: 1}}

	svc := NewBookingService(bookingRepo, testRepo, ledger, noopNotifier{}, newTestLogger(t))

	var wg sync.WaitGroup
	var succeeded, exhausted int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				TestID: "t1",
				Email:  "alice@example.com",
			})
			switch {
			case err == nil:
				atomic.AddInt32(&succeeded, 1)
			case errors.Is(err, domain.ErrNoSlotsLeft):
				atomic.AddInt32(&exhausted, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded)
	assert.Equal(t, int32(callers-1), exhausted)
	assert.Equal(t, int32(1), bookingRepo.inserted)
	assert.Equal(t, int32(0), ledger.slots)
}

func TestBookingService_ReserveReleaseRoundTrip(t *testing.T) {
	ledger := &fakeLedger{slots: 5, total: 5}

	require.NoError(t, ledger.Reserve(context.Background(), "t1"))
	require.NoError(t, ledger.Release(context.Background(), "t1"))

	assert.Equal(t, int32(5), ledger.slots)
}

func TestBookingService_ReleaseAtCapacityIsNoOp(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{slots: 4, total: 5}

	require.NoError(t, ledger.Release(ctx, "t1"))
	assert.Equal(t, int32(5), ledger.slots)

	// Повторный release на полном пуле молча ничего не делает
	require.NoError(t, ledger.Release(ctx, "t1"))
	require.NoError(t, ledger.Release(ctx, "t1"))
	assert.Equal(t, int32(5), ledger.slots)
}

func TestBookingService_CancelDoubleReleaseNeverExceedsTotal(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{slots: 3, total: 3}
	repo := newMemBookingRepo()
	testRepo := &fakeTestRepo{test: &domain.Test{ID: "t1", Title: "CBC", TotalSlots: 3}}

	svc := NewBookingService(repo, testRepo, ledger, noopNotifier{}, newTestLogger(t))

	booking, err := svc.Create(ctx, domain.CreateBookingInput{
		TestID: "t1",
		Email:  "alice@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, int32(2), ledger.slots)

	owner := domain.Principal{Email: "alice@example.com"}
	require.NoError(t, svc.Cancel(ctx, booking.ID, owner))
	assert.Equal(t, int32(3), ledger.slots)

	// Вторая отмена не находит брони и не трогает пул
	err = svc.Cancel(ctx, booking.ID, owner)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Equal(t, int32(3), ledger.slots)
}

// memBookingRepo хранит брони в памяти для сквозного теста жизненного цикла.
type memBookingRepo struct {
	mocks.MockBookingRepo
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (m *memBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookingRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(m.bookings, id)
	return nil
}

func (m *memBookingRepo) SetResult(_ context.Context, id, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Result = &result
	b.Status = domain.BookingStatusDelivered
	return nil
}

func (m *memBookingRepo) ListByEmailAndStatus(_ context.Context, email string, status domain.BookingStatus) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Booking
	for _, b := range m.bookings {
		if b.Email == email && b.Status == status {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

func TestBookingService_PendingToDeliveredFlow(t *testing.T) {
	ctx := context.Background()

	ledger := &fakeLedger{slots: 3, total: 3}
	repo := newMemBookingRepo()
	testRepo := &fakeTestRepo{test: &domain.Test{ID: "t1", Title: "CBC", Price: 49.5, TotalSlots: 3}}

	svc := NewBookingService(repo, testRepo, ledger, noopNotifier{}, newTestLogger(t))

	booking, err := svc.Create(ctx, domain.CreateBookingInput{
		TestID:      "t1",
		Email:       "alice@example.com",
		PatientName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, int32(2), ledger.slots)

	pending, err := svc.ListForPrincipal(ctx, "alice@example.com", domain.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].Result)

	require.NoError(t, svc.Fulfill(ctx, booking.ID, "hemoglobin 14.1"))

	pending, err = svc.ListForPrincipal(ctx, "alice@example.com", domain.BookingStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	delivered, err := svc.ListForPrincipal(ctx, "alice@example.com", domain.BookingStatusDelivered)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	require.NotNil(t, delivered[0].Result)
	assert.Equal(t, "hemoglobin 14.1", *delivered[0].Result)

	// Слот не возвращается при выдаче результата
	assert.Equal(t, int32(2), ledger.slots)
}
