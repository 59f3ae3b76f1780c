package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/routepath"
)

// NotFound renders the themed 404 body.
func NotFound(copy webi18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<main class="hero"><h1>%s</h1><p>%s</p><a href="%s">%s</a></main>`,
			templ.EscapeString(copy.NotFoundTitle),
			templ.EscapeString(copy.NotFoundBody),
			routepath.Root,
			templ.EscapeString("← Camply"),
		)
		return err
	})
}

// ErrorState renders a bare error body for server failures.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		text := http.StatusText(statusCode)
		if text == "" {
			text = http.StatusText(http.StatusInternalServerError)
		}
		_, err := fmt.Fprintf(w,
			`<main class="hero"><h1>%d</h1><p>%s</p></main>`,
			statusCode, templ.EscapeString(text),
		)
		return err
	})
}

// ErrorPageTitle builds the browser title for an error status.
func ErrorPageTitle(statusCode int, copy webi18n.LandingCopy) string {
	if statusCode == http.StatusNotFound {
		return copy.NotFoundTitle
	}
	return fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
}
