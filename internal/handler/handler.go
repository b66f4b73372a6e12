package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/satya-ranjon/doccureserver/internal/handler/dto"
	"github.com/satya-ranjon/doccureserver/internal/middleware"
	"github.com/satya-ranjon/doccureserver/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	Fulfill(ctx context.Context, id, result string) error
	Cancel(ctx context.Context, id string, p domain.Principal) error
	ListForPrincipal(ctx context.Context, email string, status domain.BookingStatus) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	SearchByEmail(ctx context.Context, query string) ([]*domain.Booking, error)
}

type TestSvc interface {
	Create(ctx context.Context, in domain.CreateTestInput) (*domain.Test, error)
	GetByID(ctx context.Context, id string) (*domain.Test, error)
	ListUpcoming(ctx context.Context) ([]*domain.Test, error)
	Update(ctx context.Context, id string, in domain.UpdateTestInput) error
	Delete(ctx context.Context, id string) error
}

type DiscountSvc interface {
	Quote(ctx context.Context, code string, price float64) (domain.Quote, error)
}

type PaymentSvc interface {
	CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error)
}

type Handler struct {
	bookingService  BookingSvc
	testService     TestSvc
	discountService DiscountSvc
	paymentService  PaymentSvc
	authz           service.Authz
}

func NewHandler(bookingService BookingSvc, testService TestSvc, discountService DiscountSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		testService:     testService,
		discountService: discountService,
		paymentService:  paymentService,
	}
}

// Bookings

func (h *Handler) BookTest(c *ginext.Context) {
	var req dto.BookTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		TestID:      req.Test.ID,
		Email:       req.Email,
		PatientName: req.PatientName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) AddResult(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanFulfill(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AddResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Fulfill(c.Request.Context(), id, req.Result); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "delivered"})
}

func (h *Handler) UserAppointments(c *ginext.Context) {
	h.listForPrincipal(c, domain.BookingStatusPending)
}

func (h *Handler) UserAppointmentResults(c *ginext.Context) {
	h.listForPrincipal(c, domain.BookingStatusDelivered)
}

func (h *Handler) listForPrincipal(c *ginext.Context, status domain.BookingStatus) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized access"})
		return
	}

	bookings, err := h.bookingService.ListForPrincipal(c.Request.Context(), principal.Email, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) AllAppointments(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanListAll(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	bookings, err := h.bookingService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) SearchAppointments(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanSearch(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	bookings, err := h.bookingService.SearchByEmail(c.Request.Context(), c.Query("searchQuery"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) DeleteAppointment(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized access"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Tests catalog

func (h *Handler) CreateTest(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanManageCatalog(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	availableDate, err := time.Parse(time.RFC3339, req.AvailableDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid available_date format, expected RFC3339",
		})
		return
	}

	test, err := h.testService.Create(c.Request.Context(), domain.CreateTestInput{
		Title:         req.Title,
		Details:       req.Details,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		TotalSlots:    req.TotalSlots,
		AvailableDate: availableDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTestResponse(test))
}

func (h *Handler) GetTest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid test id"})
		return
	}

	test, err := h.testService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTestResponse(test))
}

func (h *Handler) ListTests(c *ginext.Context) {
	tests, err := h.testService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TestResponse, 0, len(tests))
	for _, t := range tests {
		resp = append(resp, dto.ToTestResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateTest(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanManageCatalog(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid test id"})
		return
	}

	var req dto.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	availableDate, err := time.Parse(time.RFC3339, req.AvailableDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid available_date format, expected RFC3339",
		})
		return
	}

	if err := h.testService.Update(c.Request.Context(), id, domain.UpdateTestInput{
		Title:         req.Title,
		Details:       req.Details,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		AvailableDate: availableDate,
	}); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeleteTest(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !h.authz.CanManageCatalog(principal) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid test id"})
		return
	}

	if err := h.testService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Payments and coupons

func (h *Handler) QuoteCoupon(c *ginext.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.discountService.Quote(c.Request.Context(), req.Coupon, req.Price)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(quote))
}

func (h *Handler) CreatePaymentIntent(c *ginext.Context) {
	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTestNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoSlotsLeft):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
