// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root         = "/"
	Health       = "/healthz"
	Theme        = "/theme"
	SignIn       = "/signin"
	SignUp       = "/signup"
	SignOut      = "/signout"
	AuthPrefix   = "/auth/"
	AuthCallback = "/auth/callback"
)
