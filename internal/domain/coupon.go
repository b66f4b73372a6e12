package domain

// Coupon is a discount rule owned by the promotions collaborator.
// Codes are compared case-sensitively against the stored value.
type Coupon struct {
	Code   string  `json:"code"`
	Rate   float64 `json:"rate"`
	Active bool    `json:"active"`
}

// Quote is the outcome of checking a coupon against a price. An unknown or
// inactive code yields Valid=false, it is not an error.
type Quote struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
}
