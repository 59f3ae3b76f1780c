// Package identity verifies sessions issued by the hosted identity
// provider. Tokens signed with the shared secret are verified locally;
// opaque tokens fall back to the provider's session introspection API.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/camply/camply/internal/platform/timeouts"
	apperrors "github.com/camply/camply/internal/web/platform/errors"
	"github.com/camply/camply/internal/web/session"
	"github.com/golang-jwt/jwt/v5"
)

// Config carries identity provider settings.
type Config struct {
	// ProviderURL is the base URL of the hosted identity provider.
	ProviderURL string
	// JWTSecret verifies provider-signed session tokens locally. When
	// empty every token is introspected over HTTP.
	JWTSecret []byte
	// Issuer, when set, must match the token's iss claim.
	Issuer string
	// Audience, when set, must match one of the token's aud values.
	Audience string
	// HTTPClient overrides the introspection client. Optional.
	HTTPClient *http.Client
}

// Client is the gateway to the hosted identity provider.
type Client struct {
	providerURL string
	secret      []byte
	issuer      string
	audience    string
	httpClient  *http.Client
}

// NewClient builds an identity client from config.
func NewClient(cfg Config) (*Client, error) {
	providerURL := strings.TrimRight(strings.TrimSpace(cfg.ProviderURL), "/")
	if providerURL == "" {
		return nil, fmt.Errorf("identity provider url is required")
	}
	if _, err := url.Parse(providerURL); err != nil {
		return nil, fmt.Errorf("parse identity provider url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.IdentityRequest}
	}
	return &Client{
		providerURL: providerURL,
		secret:      cfg.JWTSecret,
		issuer:      strings.TrimSpace(cfg.Issuer),
		audience:    strings.TrimSpace(cfg.Audience),
		httpClient:  httpClient,
	}, nil
}

// SignInURL returns the hosted sign-in page, bouncing back to redirectURI.
func (c *Client) SignInURL(redirectURI string) string {
	return c.hostedURL("/signin", redirectURI)
}

// SignUpURL returns the hosted sign-up page, bouncing back to redirectURI.
func (c *Client) SignUpURL(redirectURI string) string {
	return c.hostedURL("/signup", redirectURI)
}

func (c *Client) hostedURL(path string, redirectURI string) string {
	if c == nil {
		return path
	}
	target := c.providerURL + path
	redirectURI = strings.TrimSpace(redirectURI)
	if redirectURI == "" {
		return target
	}
	return target + "?redirect_uri=" + url.QueryEscape(redirectURI)
}

// Healthy reports whether the client is configured with a provider.
func (c *Client) Healthy() bool {
	return c != nil && c.providerURL != ""
}

// VerifySession resolves the identity behind a session token. Signed
// tokens are checked locally; anything else is introspected. All
// failures return an error so callers resolve to signed-out.
func (c *Client) VerifySession(ctx context.Context, token string) (session.Identity, error) {
	if c == nil {
		return session.Identity{}, apperrors.E(apperrors.KindUnavailable, "identity client not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return session.Identity{}, apperrors.E(apperrors.KindUnauthorized, "empty session token")
	}
	if len(c.secret) > 0 && looksLikeJWT(token) {
		return c.verifyJWT(token)
	}
	return c.introspect(ctx, token)
}

func looksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

type sessionClaims struct {
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"picture"`
	jwt.RegisteredClaims
}

func (c *Client) verifyJWT(token string) (session.Identity, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		options = append(options, jwt.WithIssuer(c.issuer))
	}
	if c.audience != "" {
		options = append(options, jwt.WithAudience(c.audience))
	}
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	}, options...)
	if err != nil {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.invalid", fmt.Sprintf("verify session token: %v", err))
	}
	if !parsed.Valid {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.invalid", "session token rejected")
	}
	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.invalid", "session token missing subject")
	}
	return session.Identity{
		UserID:      userID,
		DisplayName: strings.TrimSpace(claims.DisplayName),
		Email:       strings.TrimSpace(claims.Email),
		AvatarURL:   strings.TrimSpace(claims.AvatarURL),
	}, nil
}

type introspectionResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

func (c *Client) introspect(ctx context.Context, token string) (session.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.IdentityRequest)
	defer cancel()

	endpoint := c.providerURL + "/v1/sessions/" + url.PathEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return session.Identity{}, fmt.Errorf("build introspection request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return session.Identity{}, apperrors.EK(apperrors.KindUnavailable, "web.session.provider_unavailable", fmt.Sprintf("introspect session: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.invalid", "session not recognized")
	}
	if resp.StatusCode != http.StatusOK {
		return session.Identity{}, apperrors.EK(apperrors.KindUnavailable, "web.session.provider_unavailable", fmt.Sprintf("introspect session: status %d", resp.StatusCode))
	}

	var payload introspectionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return session.Identity{}, fmt.Errorf("decode introspection response: %w", err)
	}
	if strings.TrimSpace(payload.UserID) == "" {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.invalid", "introspection missing user id")
	}
	if payload.ExpiresAt > 0 && time.Unix(payload.ExpiresAt, 0).Before(time.Now()) {
		return session.Identity{}, apperrors.EK(apperrors.KindUnauthorized, "web.session.expired", "session expired")
	}
	return session.Identity{
		UserID:      strings.TrimSpace(payload.UserID),
		DisplayName: strings.TrimSpace(payload.DisplayName),
		Email:       strings.TrimSpace(payload.Email),
		AvatarURL:   strings.TrimSpace(payload.AvatarURL),
	}, nil
}

// RevokeSession invalidates the token at the provider. Unknown sessions
// revoke cleanly.
func (c *Client) RevokeSession(ctx context.Context, token string) error {
	if c == nil {
		return apperrors.E(apperrors.KindUnavailable, "identity client not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.IdentityRequest)
	defer cancel()

	endpoint := c.providerURL + "/v1/sessions/" + url.PathEscape(token) + "/revoke"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build revoke request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.EK(apperrors.KindUnavailable, "web.session.provider_unavailable", fmt.Sprintf("revoke session: %v", err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return apperrors.EK(apperrors.KindUnavailable, "web.session.provider_unavailable", fmt.Sprintf("revoke session: status %d", resp.StatusCode))
	}
}
