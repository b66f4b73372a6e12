package service

import "github.com/satya-ranjon/doccureserver/internal/domain"

// Authz holds the access decisions for bookings. All methods are pure
// functions over an already-authenticated principal; nothing here talks to
// storage.
type Authz struct{}

func (Authz) CanDelete(p domain.Principal, b *domain.Booking) bool {
	return p.IsAdmin || p.Email == b.Email
}

func (Authz) CanFulfill(p domain.Principal) bool {
	return p.IsAdmin
}

func (Authz) CanSearch(p domain.Principal) bool {
	return p.IsAdmin
}

func (Authz) CanListAll(p domain.Principal) bool {
	return p.IsAdmin
}

func (Authz) CanManageCatalog(p domain.Principal) bool {
	return p.IsAdmin
}
