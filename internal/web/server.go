// Package web hosts the browser-facing Camply service: the public landing
// page, theme preferences, and the identity provider bridge.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/camply/camply/internal/platform/timeouts"
	"github.com/camply/camply/internal/web/app"
	"github.com/camply/camply/internal/web/identity"
	"github.com/camply/camply/internal/web/module"
	"github.com/camply/camply/internal/web/modules/authredirect"
	"github.com/camply/camply/internal/web/modules/landing"
	"github.com/camply/camply/internal/web/platform/httpx"
	"github.com/camply/camply/internal/web/platform/requestmeta"
	"github.com/camply/camply/internal/web/platform/themecookie"
	"github.com/camply/camply/internal/web/session"
	"github.com/camply/camply/internal/web/storage/sqlite"
	"github.com/camply/camply/internal/web/theme"
)

const serviceName = "camply-web"

// Config holds web server configuration.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// IdentityProviderURL is the hosted identity provider base URL. When
	// empty the auth modules run degraded and every request is signed out.
	IdentityProviderURL string
	// SessionJWTSecret verifies provider session tokens locally.
	SessionJWTSecret string
	// SessionIssuer, when set, must match the token issuer claim.
	SessionIssuer string
	// SessionAudience, when set, must match a token audience value.
	SessionAudience string
	// DatabasePath locates the SQLite theme preference store. Empty runs
	// cookie-only.
	DatabasePath string
	// TrustForwardedProto honors X-Forwarded-Proto from a fronting proxy.
	TrustForwardedProto bool
}

// Server is the web HTTP server.
type Server struct {
	httpAddr string
	handler  http.Handler
	store    *sqlite.Store
}

// NewServer wires storage, the identity gateway, and the module registry
// into a runnable server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, fmt.Errorf("http addr is required")
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	var store *sqlite.Store
	themeService := theme.NewService(nil)
	if path := strings.TrimSpace(cfg.DatabasePath); path != "" {
		opened, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open theme store: %w", err)
		}
		store = opened
		themeService = theme.NewService(store)
	}

	var identityClient *identity.Client
	if providerURL := strings.TrimSpace(cfg.IdentityProviderURL); providerURL != "" {
		client, err := identity.NewClient(identity.Config{
			ProviderURL: providerURL,
			JWTSecret:   secretBytes(cfg.SessionJWTSecret),
			Issuer:      cfg.SessionIssuer,
			Audience:    cfg.SessionAudience,
		})
		if err != nil {
			return nil, fmt.Errorf("init identity client: %w", err)
		}
		identityClient = client
	} else {
		log.Printf("identity provider url missing; sessions resolve signed-out")
	}

	var verifier session.Verifier
	if identityClient != nil {
		verifier = identityClient
	}
	resolver := session.NewResolver(verifier)

	deps := module.Dependencies{
		ResolveSession: resolver.Resolve,
		ResolveTheme:   themeResolver(resolver, themeService),
	}

	moduleGroup := []module.Module{
		landing.New(
			landing.WithThemeService(themeService),
			landing.WithDependencies(deps),
			landing.WithSchemePolicy(policy),
		),
	}
	if identityClient != nil {
		authCfg := authredirect.Config{Gateway: identityClient, Policy: policy, Dependencies: deps}
		moduleGroup = append(moduleGroup,
			authredirect.NewSignIn(authCfg),
			authredirect.NewSignUp(authCfg),
			authredirect.NewSignOut(authCfg),
			authredirect.NewCallback(authCfg),
		)
	}

	composed, err := app.Compose(app.ComposeInput{
		Modules:             moduleGroup,
		RequestSchemePolicy: policy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	handler := httpx.Chain(composed,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.Tracing(serviceName),
		session.WithRequestState,
	)

	return &Server{
		httpAddr: httpAddr,
		handler:  handler,
		store:    store,
	}, nil
}

// themeResolver derives the effective theme for a request: the stored
// preference for signed-in users, the cookie otherwise, resolved against
// the client hint scheme.
func themeResolver(resolver session.Resolver, themes *theme.Service) module.ResolveTheme {
	return func(r *http.Request) theme.Resolved {
		mode := themecookie.Read(r)
		if userID := session.UserID(resolver.Resolve(r)); userID != "" && themes != nil {
			mode = themes.ModeFor(httpx.RequestContext(r), userID, mode)
		}
		return theme.ResolveFor(mode, theme.SystemScheme(r))
	}
}

func secretBytes(secret string) []byte {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil
	}
	return []byte(secret)
}

// Handler exposes the composed root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves HTTP until ctx is canceled, then drains with the
// shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.httpAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening on %s", s.httpAddr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown web server: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Close()
}
