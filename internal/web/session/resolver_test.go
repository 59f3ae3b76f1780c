package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camply/camply/internal/web/platform/sessioncookie"
)

type fakeVerifier struct {
	identity Identity
	err      error
	calls    int
}

func (f *fakeVerifier) VerifySession(ctx context.Context, token string) (Identity, error) {
	f.calls++
	if f.err != nil {
		return Identity{}, f.err
	}
	return f.identity, nil
}

func requestWithSession(token string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
	}
	return req
}

func TestResolveSignedIn(t *testing.T) {
	t.Parallel()

	verifier := &fakeVerifier{identity: Identity{UserID: "user-1", DisplayName: "Robin"}}
	resolver := NewResolver(verifier)

	view := resolver.Resolve(requestWithSession("token-1"))
	signedIn, ok := view.(SignedIn)
	if !ok {
		t.Fatalf("view = %T, want SignedIn", view)
	}
	if signedIn.Identity.UserID != "user-1" {
		t.Fatalf("user id = %q, want user-1", signedIn.Identity.UserID)
	}
}

func TestResolveFailsClosed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		verifier Verifier
		request  *http.Request
	}{
		{name: "no cookie", verifier: &fakeVerifier{identity: Identity{UserID: "user-1"}}, request: requestWithSession("")},
		{name: "verify error", verifier: &fakeVerifier{err: errors.New("provider down")}, request: requestWithSession("token-1")},
		{name: "empty identity", verifier: &fakeVerifier{}, request: requestWithSession("token-1")},
		{name: "nil verifier", verifier: nil, request: requestWithSession("token-1")},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			view := NewResolver(testCase.verifier).Resolve(testCase.request)
			if _, ok := view.(SignedOut); !ok {
				t.Fatalf("view = %T, want SignedOut", view)
			}
		})
	}
}

func TestResolveMemoizesPerRequest(t *testing.T) {
	t.Parallel()

	verifier := &fakeVerifier{identity: Identity{UserID: "user-1"}}
	resolver := NewResolver(verifier)

	handler := WithRequestState(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolver.Resolve(r)
		resolver.Resolve(r)
		if !resolver.ResolveSignedIn(r) {
			t.Error("expected signed-in view")
		}
	}))

	req := requestWithSession("token-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if verifier.calls != 1 {
		t.Fatalf("verifier calls = %d, want 1", verifier.calls)
	}
}

func TestViewHelpers(t *testing.T) {
	t.Parallel()

	if IsSignedIn(SignedOut{}) {
		t.Fatal("SignedOut should not report signed in")
	}
	if IsSignedIn(SignedIn{}) {
		t.Fatal("SignedIn without user id should not report signed in")
	}
	if got := UserID(SignedIn{Identity: Identity{UserID: " user-1 "}}); got != "user-1" {
		t.Fatalf("UserID = %q, want user-1", got)
	}
	if got := UserID(SignedOut{}); got != "" {
		t.Fatalf("UserID of SignedOut = %q, want empty", got)
	}
}
