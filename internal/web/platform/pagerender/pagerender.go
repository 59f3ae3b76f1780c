// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/camply/camply/internal/web/platform/httpx"
	"github.com/camply/camply/internal/web/templates"
	"github.com/camply/camply/internal/web/theme"
)

// WritePage buffers the full document render before writing so a template
// failure becomes a clean 500 instead of a torn page. Every HTML response
// advertises the color-scheme client hint so system theme changes are
// visible on the next request.
func WritePage(w http.ResponseWriter, r *http.Request, opts templates.LayoutOptions, statusCode int, body templ.Component) {
	if w == nil {
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	var rendered bytes.Buffer
	if err := templates.Layout(opts, body).Render(httpx.RequestContext(r), &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	theme.AdvertiseHints(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
}
