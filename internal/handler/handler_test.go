package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/handler/dto"
	hmocks "github.com/satya-ranjon/doccureserver/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// asPrincipal stands in for the auth middleware in tests.
func asPrincipal(p domain.Principal) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("principal", p)
		c.Next()
	}
}

func setupRouter(t *testing.T, principal *domain.Principal) (*hmocks.MockBookingSvc, *hmocks.MockTestSvc, *hmocks.MockDiscountSvc, *hmocks.MockPaymentSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	testSvc := hmocks.NewMockTestSvc(t)
	discountSvc := hmocks.NewMockDiscountSvc(t)
	paymentSvc := hmocks.NewMockPaymentSvc(t)

	h := NewHandler(bookingSvc, testSvc, discountSvc, paymentSvc)

	r := ginext.New("test")
	if principal != nil {
		r.Use(asPrincipal(*principal))
	}

	r.POST("/booking-test", h.BookTest)
	r.POST("/coupon", h.QuoteCoupon)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.GET("/tests", h.ListTests)
	r.GET("/tests/:id", h.GetTest)
	r.POST("/tests", h.CreateTest)
	r.PUT("/tests/:id", h.UpdateTest)
	r.DELETE("/tests/:id", h.DeleteTest)
	r.PUT("/add-result/:id", h.AddResult)
	r.GET("/user-appointments", h.UserAppointments)
	r.GET("/user-appointments/result", h.UserAppointmentResults)
	r.GET("/all-appointments", h.AllAppointments)
	r.GET("/appointment/search", h.SearchAppointments)
	r.DELETE("/delete-appointment/:id", h.DeleteAppointment)
	r.DELETE("/delete-appointment/admin/:id", h.DeleteAppointment)

	return bookingSvc, testSvc, discountSvc, paymentSvc, r
}

var (
	alice = domain.Principal{Email: "alice@example.com"}
	admin = domain.Principal{Email: "admin@example.com", IsAdmin: true}
)

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Booking ---

func TestHandler_BookTest_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, nil)

	testID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		TestID:    testID,
		TestTitle: "CBC",
		Email:     "alice@example.com",
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		TestID:      testID,
		Email:       "alice@example.com",
		PatientName: "Alice",
	}).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/booking-test", dto.BookTestRequest{
		Test:        dto.BookedTest{ID: testID},
		Email:       "alice@example.com",
		PatientName: "Alice",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_BookTest_NoSlots(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, nil)

	testID := uuid.New().String()
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrNoSlotsLeft)

	w := doJSON(t, r, http.MethodPost, "/booking-test", dto.BookTestRequest{
		Test:  dto.BookedTest{ID: testID},
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookTest_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/booking-test", map[string]any{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddResult_Admin(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &admin)

	id := uuid.New().String()
	bookingSvc.EXPECT().Fulfill(mock.Anything, id, "all clear").Return(nil)

	w := doJSON(t, r, http.MethodPut, "/add-result/"+id, dto.AddResultRequest{Result: "all clear"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddResult_NonAdminForbidden(t *testing.T) {
	_, _, _, _, r := setupRouter(t, &alice)

	w := doJSON(t, r, http.MethodPut, "/add-result/"+uuid.New().String(), dto.AddResultRequest{Result: "r"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AddResult_NotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &admin)

	id := uuid.New().String()
	bookingSvc.EXPECT().Fulfill(mock.Anything, id, "r").Return(domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodPut, "/add-result/"+id, dto.AddResultRequest{Result: "r"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UserAppointments_Pending(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &alice)

	bookings := []*domain.Booking{
		{ID: "b1", Email: alice.Email, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().
		ListForPrincipal(mock.Anything, alice.Email, domain.BookingStatusPending).
		Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/user-appointments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "pending", resp[0].Status)
}

func TestHandler_UserAppointmentResults_Delivered(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &alice)

	result := "all clear"
	bookings := []*domain.Booking{
		{ID: "b1", Email: alice.Email, Status: domain.BookingStatusDelivered, Result: &result, CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().
		ListForPrincipal(mock.Anything, alice.Email, domain.BookingStatusDelivered).
		Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/user-appointments/result", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "delivered", resp[0].Status)
	require.NotNil(t, resp[0].Result)
	assert.Equal(t, "all clear", *resp[0].Result)
}

func TestHandler_AllAppointments_Admin(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &admin)

	bookingSvc.EXPECT().ListAll(mock.Anything).Return([]*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/all-appointments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_AllAppointments_NonAdminForbidden(t *testing.T) {
	_, _, _, _, r := setupRouter(t, &alice)

	w := doJSON(t, r, http.MethodGet, "/all-appointments", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SearchAppointments_Admin(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &admin)

	bookingSvc.EXPECT().SearchByEmail(mock.Anything, "alice").
		Return([]*domain.Booking{{ID: "b1", Email: alice.Email}}, nil)

	w := doJSON(t, r, http.MethodGet, "/appointment/search?searchQuery=alice", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SearchAppointments_NonAdminForbidden(t *testing.T) {
	_, _, _, _, r := setupRouter(t, &alice)

	w := doJSON(t, r, http.MethodGet, "/appointment/search?searchQuery=alice", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteAppointment_Owner(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &alice)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, alice).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/delete-appointment/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteAppointment_Forbidden(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &alice)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, alice).Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodDelete, "/delete-appointment/"+id, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteAppointment_NotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t, &admin)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, admin).Return(domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodDelete, "/delete-appointment/admin/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Tests catalog ---

func TestHandler_CreateTest_Admin(t *testing.T) {
	_, testSvc, _, _, r := setupRouter(t, &admin)

	available := time.Now().Add(72 * time.Hour)
	test := &domain.Test{
		ID:            uuid.New().String(),
		Title:         "CBC",
		Price:         49.5,
		TotalSlots:    20,
		Slots:         20,
		AvailableDate: available,
		CreatedAt:     time.Now(),
	}
	testSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(test, nil)

	w := doJSON(t, r, http.MethodPost, "/tests", dto.CreateTestRequest{
		Title:         "CBC",
		Price:         49.5,
		TotalSlots:    20,
		AvailableDate: available.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.Slots)
}

func TestHandler_CreateTest_NonAdminForbidden(t *testing.T) {
	_, _, _, _, r := setupRouter(t, &alice)

	w := doJSON(t, r, http.MethodPost, "/tests", dto.CreateTestRequest{
		Title:         "CBC",
		Price:         49.5,
		TotalSlots:    20,
		AvailableDate: time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetTest_NotFound(t *testing.T) {
	_, testSvc, _, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	testSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrTestNotFound)

	w := doJSON(t, r, http.MethodGet, "/tests/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetTest_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/tests/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListTests(t *testing.T) {
	_, testSvc, _, _, r := setupRouter(t, nil)

	tests := []*domain.Test{
		{ID: "t1", Title: "CBC", AvailableDate: time.Now(), CreatedAt: time.Now()},
		{ID: "t2", Title: "Lipid Panel", AvailableDate: time.Now(), CreatedAt: time.Now()},
	}
	testSvc.EXPECT().ListUpcoming(mock.Anything).Return(tests, nil)

	w := doJSON(t, r, http.MethodGet, "/tests", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Coupons and payments ---

func TestHandler_QuoteCoupon_Valid(t *testing.T) {
	_, _, discountSvc, _, r := setupRouter(t, nil)

	discountSvc.EXPECT().Quote(mock.Anything, "ACTIVE10", 200.0).
		Return(domain.Quote{Valid: true, Discount: 20}, nil)

	w := doJSON(t, r, http.MethodPost, "/coupon", dto.CouponRequest{Coupon: "ACTIVE10", Price: 200})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CouponResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "valid", resp.Coupon)
	require.NotNil(t, resp.Discount)
	assert.Equal(t, 20.0, *resp.Discount)
}

func TestHandler_QuoteCoupon_Invalid(t *testing.T) {
	_, _, discountSvc, _, r := setupRouter(t, nil)

	discountSvc.EXPECT().Quote(mock.Anything, "UNKNOWN", 200.0).
		Return(domain.Quote{Valid: false}, nil)

	w := doJSON(t, r, http.MethodPost, "/coupon", dto.CouponRequest{Coupon: "UNKNOWN", Price: 200})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CouponResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid", resp.Coupon)
	assert.Nil(t, resp.Discount)
}

func TestHandler_CreatePaymentIntent_Success(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t, nil)

	paymentSvc.EXPECT().CreateIntent(mock.Anything, 19.99).
		Return(&domain.PaymentIntent{Amount: 1999, Currency: "usd", ClientSecret: "pi_secret"}, nil)

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", dto.PaymentIntentRequest{Price: 19.99})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_secret", resp.ClientSecret)
}

func TestHandler_CreatePaymentIntent_MissingPrice(t *testing.T) {
	_, _, _, _, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreatePaymentIntent_GatewayError(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t, nil)

	paymentSvc.EXPECT().CreateIntent(mock.Anything, 20.0).
		Return(nil, domain.ErrPaymentGateway)

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", dto.PaymentIntentRequest{Price: 20})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	_, testSvc, _, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	testSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.New("boom"))

	w := doJSON(t, r, http.MethodGet, "/tests/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
