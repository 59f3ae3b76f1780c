package session

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/camply/camply/internal/web/platform/sessioncookie"
)

// Verifier is the narrow identity surface needed by session resolution.
type Verifier interface {
	VerifySession(ctx context.Context, token string) (Identity, error)
}

// Resolver validates session cookies and resolves the request view.
// Any verification failure resolves to SignedOut.
type Resolver struct {
	verifier Verifier
}

// NewResolver builds a resolver over the identity verifier. A nil
// verifier resolves every request to SignedOut.
func NewResolver(verifier Verifier) Resolver {
	return Resolver{verifier: verifier}
}

type requestState struct {
	once sync.Once
	view View
}

type requestStateKey struct{}

// WithRequestState attaches per-request memoization so repeated view
// resolution within one request verifies the token at most once.
func WithRequestState(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestStateKey{}, &requestState{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func stateFromRequest(r *http.Request) *requestState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestStateKey{}).(*requestState)
	return state
}

func (res Resolver) resolveUncached(r *http.Request) View {
	if r == nil || res.verifier == nil {
		return SignedOut{}
	}
	token, ok := sessioncookie.Read(r)
	if !ok {
		return SignedOut{}
	}
	identity, err := res.verifier.VerifySession(r.Context(), token)
	if err != nil {
		return SignedOut{}
	}
	if strings.TrimSpace(identity.UserID) == "" {
		return SignedOut{}
	}
	return SignedIn{Identity: identity}
}

// Resolve returns the session view for the request, memoized per request
// when WithRequestState is installed.
func (res Resolver) Resolve(r *http.Request) View {
	if state := stateFromRequest(r); state != nil {
		state.once.Do(func() {
			state.view = res.resolveUncached(r)
		})
		return state.view
	}
	return res.resolveUncached(r)
}

// ResolveSignedIn reports whether the request carries a verified session.
func (res Resolver) ResolveSignedIn(r *http.Request) bool {
	return IsSignedIn(res.Resolve(r))
}
