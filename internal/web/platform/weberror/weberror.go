// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/camply/camply/internal/web/module"
	apperrors "github.com/camply/camply/internal/web/platform/errors"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/platform/pagerender"
	"github.com/camply/camply/internal/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the themed
// error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteErrorPage writes a themed full-page error response.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	_, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	tag, _ := webi18n.ParseTag(lang)
	copy := webi18n.Landing(tag)

	body := templates.ErrorState(statusCode)
	if statusCode == http.StatusNotFound {
		body = templates.NotFound(copy)
	}

	pagerender.WritePage(w, r, templates.LayoutOptions{
		Lang:            lang,
		Title:           templates.ErrorPageTitle(statusCode, copy),
		MetaDescription: copy.MetaDescription,
		Theme:           deps.Theme(r),
		Copy:            copy,
	}, statusCode, body)
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
