package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusDelivered BookingStatus = "delivered"
)

type Booking struct {
	ID          string        `json:"id"`
	TestID      string        `json:"test_id"`
	TestTitle   string        `json:"test_title"`
	Email       string        `json:"email"`
	PatientName string        `json:"patient_name"`
	Price       float64       `json:"price"`
	Status      BookingStatus `json:"status"`
	Result      *string       `json:"result,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	TestID      string
	Email       string
	PatientName string
}
