package dto

type BookTestRequest struct {
	Test        BookedTest `json:"test" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	PatientName string     `json:"patient_name"`
}

type BookedTest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type AddResultRequest struct {
	Result string `json:"result" binding:"required"`
}

type CreateTestRequest struct {
	Title         string  `json:"title" binding:"required"`
	Details       string  `json:"details"`
	ImageURL      string  `json:"image_url"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	TotalSlots    int     `json:"total_slots" binding:"required,gt=0"`
	AvailableDate string  `json:"available_date" binding:"required"`
}

type UpdateTestRequest struct {
	Title         string  `json:"title" binding:"required"`
	Details       string  `json:"details"`
	ImageURL      string  `json:"image_url"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	AvailableDate string  `json:"available_date" binding:"required"`
}

type CouponRequest struct {
	Coupon string  `json:"coupon" binding:"required"`
	Price  float64 `json:"price"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
