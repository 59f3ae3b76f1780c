// Package session resolves the request's session view from the identity
// provider session cookie.
package session

import "strings"

// Identity describes the signed-in account as reported by the identity
// provider.
type Identity struct {
	UserID      string
	DisplayName string
	Email       string
	AvatarURL   string
}

// View is the session state rendered by web surfaces. It is either
// SignedIn or SignedOut; gating code switches over the concrete type so
// new states cannot be ignored silently.
type View interface {
	isSessionView()
}

// SignedIn is the session view for a verified identity.
type SignedIn struct {
	Identity Identity
}

func (SignedIn) isSessionView() {}

// SignedOut is the session view when no verified identity exists.
type SignedOut struct{}

func (SignedOut) isSessionView() {}

// IsSignedIn reports whether the view carries a verified identity.
func IsSignedIn(view View) bool {
	signedIn, ok := view.(SignedIn)
	if !ok {
		return false
	}
	return strings.TrimSpace(signedIn.Identity.UserID) != ""
}

// UserID returns the verified user id, or empty for signed-out views.
func UserID(view View) string {
	signedIn, ok := view.(SignedIn)
	if !ok {
		return ""
	}
	return strings.TrimSpace(signedIn.Identity.UserID)
}
