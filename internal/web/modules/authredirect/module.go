// Package authredirect bridges the site to the hosted identity provider:
// sign-in and sign-up bounce to the provider, the callback establishes the
// local session cookie, and sign-out revokes the provider session.
package authredirect

import (
	"context"
	"net/http"
	"strings"

	"github.com/camply/camply/internal/web/module"
	"github.com/camply/camply/internal/web/platform/httpx"
	"github.com/camply/camply/internal/web/platform/requestmeta"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/session"
)

// Gateway is the narrow identity surface needed by auth redirects.
type Gateway interface {
	SignInURL(redirectURI string) string
	SignUpURL(redirectURI string) string
	VerifySession(ctx context.Context, token string) (session.Identity, error)
	RevokeSession(ctx context.Context, token string) error
}

// Module provides one auth redirect route group.
type Module struct {
	gateway        Gateway
	policy         requestmeta.SchemePolicy
	deps           module.Dependencies
	id             string
	prefix         string
	registerRoutes func(*http.ServeMux, handlers)
}

// Config carries shared auth redirect module settings.
type Config struct {
	Gateway      Gateway
	Policy       requestmeta.SchemePolicy
	Dependencies module.Dependencies
}

// NewSignIn returns the sign-in redirect module.
func NewSignIn(cfg Config) Module {
	return newModule("auth-signin", routepath.SignIn, registerSignInRoutes, cfg)
}

// NewSignUp returns the sign-up redirect module.
func NewSignUp(cfg Config) Module {
	return newModule("auth-signup", routepath.SignUp, registerSignUpRoutes, cfg)
}

// NewSignOut returns the sign-out module.
func NewSignOut(cfg Config) Module {
	return newModule("auth-signout", routepath.SignOut, registerSignOutRoutes, cfg)
}

// NewCallback returns the provider callback module.
func NewCallback(cfg Config) Module {
	return newModule("auth-callback", routepath.AuthPrefix, registerCallbackRoutes, cfg)
}

func newModule(id string, prefix string, register func(*http.ServeMux, handlers), cfg Config) Module {
	return Module{
		gateway:        cfg.Gateway,
		policy:         cfg.Policy,
		deps:           cfg.Dependencies,
		id:             strings.TrimSpace(id),
		prefix:         strings.TrimSpace(prefix),
		registerRoutes: register,
	}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return m.id }

// Healthy reports whether the identity gateway is configured.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	if reporter, ok := m.gateway.(module.HealthReporter); ok {
		return reporter.Healthy()
	}
	return true
}

// Mount wires the module's routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.gateway, m.policy, m.deps)
	if m.registerRoutes != nil {
		m.registerRoutes(mux, h)
	}
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

func registerSignInRoutes(mux *http.ServeMux, h handlers) {
	mux.Handle(routepath.SignIn, httpx.Chain(
		http.HandlerFunc(h.handleSignIn),
		httpx.RequireMethod(http.MethodGet),
	))
}

func registerSignUpRoutes(mux *http.ServeMux, h handlers) {
	mux.Handle(routepath.SignUp, httpx.Chain(
		http.HandlerFunc(h.handleSignUp),
		httpx.RequireMethod(http.MethodGet),
	))
}

func registerSignOutRoutes(mux *http.ServeMux, h handlers) {
	mux.Handle(routepath.SignOut, httpx.Chain(
		http.HandlerFunc(h.handleSignOut),
		httpx.RequireMethod(http.MethodPost),
	))
}

func registerCallbackRoutes(mux *http.ServeMux, h handlers) {
	mux.Handle(routepath.AuthCallback, httpx.Chain(
		http.HandlerFunc(h.handleCallback),
		httpx.RequireMethod(http.MethodGet),
	))
}
