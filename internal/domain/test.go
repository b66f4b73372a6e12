package domain

import "time"

// Test is a bookable lab-test offering. Slots is the remaining capacity and
// is mutated only through the slot ledger; catalog updates never touch it.
type Test struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Details       string    `json:"details"`
	ImageURL      string    `json:"image_url"`
	Price         float64   `json:"price"`
	TotalSlots    int       `json:"total_slots"`
	Slots         int       `json:"slots"`
	AvailableDate time.Time `json:"available_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateTestInput struct {
	Title         string
	Details       string
	ImageURL      string
	Price         float64
	TotalSlots    int
	AvailableDate time.Time
}

type UpdateTestInput struct {
	Title         string
	Details       string
	ImageURL      string
	Price         float64
	AvailableDate time.Time
}
