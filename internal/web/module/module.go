// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/camply/camply/internal/web/session"
	"github.com/camply/camply/internal/web/theme"
)

// ResolveSession resolves the session view for a request.
type ResolveSession func(*http.Request) session.View

// ResolveSignedIn reports whether the request is associated with a signed-in actor.
type ResolveSignedIn func(*http.Request) bool

// ResolveTheme resolves the effective theme for a request.
type ResolveTheme func(*http.Request) theme.Resolved

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Dependencies carries the request-scoped resolvers shared by web modules.
// Each resolver is optional; consumers fall back to signed-out, system
// theme, and the default language when a resolver is absent.
type Dependencies struct {
	ResolveSession  ResolveSession
	ResolveTheme    ResolveTheme
	ResolveLanguage ResolveLanguage
}

// SessionView resolves the session view with a signed-out fallback.
func (d Dependencies) SessionView(r *http.Request) session.View {
	if d.ResolveSession == nil {
		return session.SignedOut{}
	}
	view := d.ResolveSession(r)
	if view == nil {
		return session.SignedOut{}
	}
	return view
}

// Theme resolves the effective theme with a system fallback.
func (d Dependencies) Theme(r *http.Request) theme.Resolved {
	if d.ResolveTheme == nil {
		return theme.ResolveFor(theme.ModeSystem, theme.SystemScheme(r))
	}
	return d.ResolveTheme(r)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so composition can derive service health without centralizing client
// knowledge.
type HealthReporter interface {
	Healthy() bool
}
