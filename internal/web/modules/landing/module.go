// Package landing provides the public landing routes.
package landing

import (
	"net/http"

	"github.com/camply/camply/internal/web/module"
	"github.com/camply/camply/internal/web/platform/httpx"
	"github.com/camply/camply/internal/web/platform/requestmeta"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/theme"
)

// Option configures a landing module.
type Option func(*Module)

// WithThemeService sets the theme preference service.
func WithThemeService(s *theme.Service) Option {
	return func(m *Module) { m.themes = s }
}

// WithDependencies sets the request-scoped resolvers.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// WithSchemePolicy sets the request scheme policy for cookie handling.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = p }
}

// Module provides the unauthenticated landing routes.
type Module struct {
	themes *theme.Service
	deps   module.Dependencies
	policy requestmeta.SchemePolicy
}

// New returns a landing module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Healthy reports whether theme persistence is operational. The landing
// page itself has no gateway dependency.
func (m Module) Healthy() bool { return m.themes != nil }

// Mount wires landing route handlers at the site root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.themes, m.deps, m.policy)
	mux.HandleFunc(routepath.Root, h.handleRoot)
	mux.Handle(routepath.Theme, httpx.Chain(
		http.HandlerFunc(h.handleThemeUpdate),
		httpx.RequireMethod(http.MethodPost),
	))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
