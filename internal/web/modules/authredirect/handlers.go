package authredirect

import (
	"net/http"
	"strings"

	"github.com/camply/camply/internal/web/module"
	apperrors "github.com/camply/camply/internal/web/platform/errors"
	"github.com/camply/camply/internal/web/platform/requestmeta"
	"github.com/camply/camply/internal/web/platform/sessioncookie"
	"github.com/camply/camply/internal/web/platform/weberror"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/session"
)

type handlers struct {
	gateway Gateway
	policy  requestmeta.SchemePolicy
	deps    module.Dependencies
}

func newHandlers(gateway Gateway, policy requestmeta.SchemePolicy, deps module.Dependencies) handlers {
	return handlers{gateway: gateway, policy: policy, deps: deps}
}

// callbackURI rebuilds the absolute callback URL for the current host so
// the provider bounces back to the right deployment.
func (h handlers) callbackURI(r *http.Request) string {
	scheme := "http"
	if requestmeta.IsHTTPSWithPolicy(r, h.policy) {
		scheme = "https"
	}
	host := ""
	if r != nil {
		host = strings.TrimSpace(r.Host)
	}
	if host == "" {
		return routepath.AuthCallback
	}
	return scheme + "://" + host + routepath.AuthCallback
}

func (h handlers) redirectSignedInToRoot(w http.ResponseWriter, r *http.Request) bool {
	if !session.IsSignedIn(h.deps.SessionView(r)) {
		return false
	}
	http.Redirect(w, r, routepath.Root, http.StatusFound)
	return true
}

func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedInToRoot(w, r) {
		return
	}
	if h.gateway == nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindUnavailable, "identity provider not configured"), h.deps)
		return
	}
	http.Redirect(w, r, h.gateway.SignInURL(h.callbackURI(r)), http.StatusFound)
}

func (h handlers) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if h.redirectSignedInToRoot(w, r) {
		return
	}
	if h.gateway == nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindUnavailable, "identity provider not configured"), h.deps)
		return
	}
	http.Redirect(w, r, h.gateway.SignUpURL(h.callbackURI(r)), http.StatusFound)
}

// handleCallback receives the provider token, verifies it, and installs
// the session cookie. Verification failures land on sign-in with no
// session established.
func (h handlers) handleCallback(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" || h.gateway == nil {
		sessioncookie.ClearWithPolicy(w, r, h.policy)
		http.Redirect(w, r, routepath.SignIn, http.StatusFound)
		return
	}
	if _, err := h.gateway.VerifySession(r.Context(), token); err != nil {
		sessioncookie.ClearWithPolicy(w, r, h.policy)
		http.Redirect(w, r, routepath.SignIn, http.StatusFound)
		return
	}
	sessioncookie.WriteWithPolicy(w, r, token, h.policy)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

// handleSignOut clears the session cookie and revokes the provider
// session. Requests that carry a session must prove same-origin intent.
func (h handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	sessionToken, hasSession := sessioncookie.Read(r)
	if hasSession && !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	sessioncookie.ClearWithPolicy(w, r, h.policy)
	if hasSession && h.gateway != nil {
		_ = h.gateway.RevokeSession(r.Context(), sessionToken)
	}
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}
