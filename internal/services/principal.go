package services

// Principal identifies the authenticated actor behind a request. The zero
// value is the anonymous caller. It is always passed explicitly into
// service calls; authorization never reads ambient state.
type Principal struct {
	UserID        uint
	Authenticated bool
}

// Anonymous is the principal of an unauthenticated request.
var Anonymous = Principal{}

// Is reports whether the principal is the authenticated user with the
// given id.
func (p Principal) Is(userID uint) bool {
	return p.Authenticated && p.UserID == userID
}
