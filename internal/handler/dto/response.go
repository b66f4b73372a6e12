package dto

import (
	"time"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

type TestResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Details       string  `json:"details"`
	ImageURL      string  `json:"image_url"`
	Price         float64 `json:"price"`
	TotalSlots    int     `json:"total_slots"`
	Slots         int     `json:"slots"`
	AvailableDate string  `json:"available_date"`
	CreatedAt     string  `json:"created_at"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	TestID      string  `json:"test_id"`
	TestTitle   string  `json:"test_title"`
	Email       string  `json:"email"`
	PatientName string  `json:"patient_name"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Result      *string `json:"result,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// CouponResponse mirrors the public coupon contract: "valid" or "invalid"
// verdict, discount present only when valid.
type CouponResponse struct {
	Coupon   string   `json:"coupon"`
	Discount *float64 `json:"discount,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTestResponse(t *domain.Test) TestResponse {
	return TestResponse{
		ID:            t.ID,
		Title:         t.Title,
		Details:       t.Details,
		ImageURL:      t.ImageURL,
		Price:         t.Price,
		TotalSlots:    t.TotalSlots,
		Slots:         t.Slots,
		AvailableDate: t.AvailableDate.Format(time.RFC3339),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		TestID:      b.TestID,
		TestTitle:   b.TestTitle,
		Email:       b.Email,
		PatientName: b.PatientName,
		Price:       b.Price,
		Status:      string(b.Status),
		Result:      b.Result,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, ToBookingResponse(b))
	}
	return res
}

func ToCouponResponse(q domain.Quote) CouponResponse {
	if !q.Valid {
		return CouponResponse{Coupon: "invalid"}
	}
	discount := q.Discount
	return CouponResponse{Coupon: "valid", Discount: &discount}
}
