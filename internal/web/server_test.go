package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/camply/camply/internal/web/platform/sessioncookie"
	"github.com/camply/camply/internal/web/platform/themecookie"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "web-test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(Config{
		HTTPAddr:            "localhost:0",
		IdentityProviderURL: "https://id.camply.test",
		SessionJWTSecret:    testSecret,
		DatabasePath:        filepath.Join(t.TempDir(), "web.db"),
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func sessionToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"name": "Robin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected error for missing addr")
	}
}

func TestServerRendersLanding(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://camply.test/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Camply") || !strings.Contains(body, "Sign in") {
		t.Fatalf("landing body missing chrome: %q", body)
	}
}

func TestServerThemeRoundTripForSignedInUser(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	token := sessionToken(t, "user-1")

	form := url.Values{"mode": {"dark"}}
	post := httptest.NewRequest(http.MethodPost, "http://camply.test/theme", strings.NewReader(form.Encode()))
	post.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	post.Header.Set("Origin", "http://camply.test")
	post.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, post)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("theme post status = %d, want 303: %q", rr.Code, rr.Body.String())
	}

	// The stored row wins even without the theme cookie.
	get := httptest.NewRequest(http.MethodGet, "http://camply.test/", nil)
	get.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
	rr = httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, get)
	if !strings.Contains(rr.Body.String(), `data-theme="dark"`) {
		t.Fatalf("stored dark preference not rendered: %q", rr.Body.String())
	}
}

func TestServerThemeCookieForAnonymousUser(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	get := httptest.NewRequest(http.MethodGet, "http://camply.test/", nil)
	get.AddCookie(&http.Cookie{Name: themecookie.Name, Value: "dark"})
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, get)
	if !strings.Contains(rr.Body.String(), `data-theme="dark"`) {
		t.Fatalf("cookie dark preference not rendered: %q", rr.Body.String())
	}
}

func TestServerSignInRedirectsToProvider(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://camply.test/signin", nil))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if !strings.HasPrefix(rr.Header().Get("Location"), "https://id.camply.test/signin") {
		t.Fatalf("Location = %q", rr.Header().Get("Location"))
	}
}

func TestServerHealthz(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://camply.test/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %q", rr.Code, rr.Body.String())
	}
}

func TestServerUnknownPathIsThemed404(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://camply.test/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("404 body = %q", rr.Body.String())
	}
}

func TestServerRendersSignedOutWhenProviderUnreachable(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	// An opaque token forces introspection against the unreachable test
	// provider; resolution fails closed and the page still renders.
	get := httptest.NewRequest(http.MethodGet, "http://camply.test/", nil)
	get.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "opaque-token"})
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, get)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Sign in") {
		t.Fatalf("unreachable provider should render signed-out chrome: %q", rr.Body.String())
	}
}

func TestServerDegradedWithoutProvider(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "localhost:0"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })

	// No auth modules mounted: /signin falls through to the themed 404.
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://camply.test/signin", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
