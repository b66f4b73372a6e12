package domain

import "errors"

var (
	ErrTestNotFound    = errors.New("test not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrCouponNotFound  = errors.New("coupon not found")
)

var (
	ErrNoSlotsLeft = errors.New("no slots available")
	ErrForbidden   = errors.New("forbidden access")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrPaymentGateway = errors.New("payment gateway error")
)
