package landing

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/camply/camply/internal/web/module"
	apperrors "github.com/camply/camply/internal/web/platform/errors"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/platform/pagerender"
	"github.com/camply/camply/internal/web/platform/requestmeta"
	"github.com/camply/camply/internal/web/platform/themecookie"
	"github.com/camply/camply/internal/web/platform/weberror"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/session"
	"github.com/camply/camply/internal/web/templates"
	"github.com/camply/camply/internal/web/theme"
)

type handlers struct {
	themes *theme.Service
	deps   module.Dependencies
	policy requestmeta.SchemePolicy
}

func newHandlers(themes *theme.Service, deps module.Dependencies, policy requestmeta.SchemePolicy) handlers {
	return handlers{themes: themes, deps: deps, policy: policy}
}

// handleRoot renders the landing page. The root pattern also catches every
// unknown path, which renders the themed 404.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		weberror.WriteErrorPage(w, r, http.StatusNotFound, h.deps)
		return
	}

	_, lang := webi18n.ResolveLocalizer(w, r, h.deps.ResolveLanguage)
	tag, _ := webi18n.ParseTag(lang)
	copy := webi18n.Landing(tag)

	view := h.deps.SessionView(r)
	resolved := h.deps.Theme(r)

	pagerender.WritePage(w, r, templates.LayoutOptions{
		Lang:            lang,
		Title:           copy.LandingTitle,
		MetaDescription: copy.MetaDescription,
		Theme:           resolved,
		Copy:            copy,
	}, http.StatusOK, templates.Group(
		templates.Navbar(view, resolved, copy),
		templates.Hero(view, copy),
	))
}

// handleThemeUpdate persists the submitted theme preference. Unknown
// modes normalize to system rather than failing the request.
func (h handlers) handleThemeUpdate(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindForbidden, "cross-origin theme update rejected"), h.deps)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "malformed form body"), h.deps)
		return
	}

	mode := theme.ParseMode(r.PostFormValue("mode"))
	themecookie.Write(w, mode)

	if userID := session.UserID(h.deps.SessionView(r)); userID != "" && h.themes != nil {
		if err := h.themes.SetMode(r.Context(), userID, mode); err != nil {
			weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindUnavailable, "persist theme preference"), h.deps)
			return
		}
	}

	http.Redirect(w, r, h.returnPath(r), http.StatusSeeOther)
}

// returnPath picks the post-update redirect target: a local return_to form
// value, then a same-origin referer, then the root.
func (h handlers) returnPath(r *http.Request) string {
	if r == nil {
		return routepath.Root
	}
	if returnTo := strings.TrimSpace(r.PostFormValue("return_to")); returnTo != "" {
		if strings.HasPrefix(returnTo, "/") && !strings.HasPrefix(returnTo, "//") {
			return returnTo
		}
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if parsed, err := url.Parse(referer); err == nil && parsed.Host == r.Host && parsed.Path != "" {
			return parsed.Path
		}
	}
	return routepath.Root
}
