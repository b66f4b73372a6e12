package domain

// Principal is the authenticated actor, resolved once per request by the
// auth middleware and passed explicitly into authorization decisions.
type Principal struct {
	Email   string
	IsAdmin bool
}
