package domain

// PaymentIntent mirrors the gateway artifact; it is never persisted locally.
// Amount is in minor currency units.
type PaymentIntent struct {
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ClientSecret string `json:"client_secret"`
}
