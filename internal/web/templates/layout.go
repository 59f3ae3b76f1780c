// Package templates renders the web HTML surfaces as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/camply/camply/internal/platform/branding"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/theme"
)

// LayoutOptions carries page-level layout context.
type LayoutOptions struct {
	Lang            string
	Title           string
	MetaDescription string
	Theme           theme.Resolved
	Copy            webi18n.LandingCopy
}

func (opts LayoutOptions) lang() string {
	if lang := strings.TrimSpace(opts.Lang); lang != "" {
		return lang
	}
	return webi18n.Default().String()
}

func (opts LayoutOptions) title() string {
	if title := strings.TrimSpace(opts.Title); title != "" {
		return title
	}
	return branding.AppName
}

// Group renders components in order.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Layout renders the root HTML document. The resolved theme is written as
// data-theme on the html element so styling needs no client script, and the
// preference mode is exposed as data-theme-mode for first-paint scripts.
func Layout(opts LayoutOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		resolved := opts.Theme
		if resolved.Scheme != theme.SchemeDark {
			resolved.Scheme = theme.SchemeLight
		}
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="%s" data-theme="%s" data-theme-mode="%s"><head>`,
			templ.EscapeString(opts.lang()),
			templ.EscapeString(string(resolved.Scheme)),
			templ.EscapeString(string(theme.ParseMode(string(resolved.Mode)))),
		); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><meta name="color-scheme" content="light dark"/>`,
		); err != nil {
			return err
		}
		if desc := strings.TrimSpace(opts.MetaDescription); desc != "" {
			if _, err := fmt.Fprintf(w, `<meta name="description" content="%s"/>`, templ.EscapeString(desc)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(opts.title()), baseStylesheet); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// baseStylesheet keys every color off data-theme so switching schemes is a
// single attribute change.
const baseStylesheet = `:root{color-scheme:light}` +
	`[data-theme="dark"]{color-scheme:dark}` +
	`html[data-theme="light"]{--bg:#fcfbf7;--fg:#1f2a1f;--accent:#2f6b3a;--muted:#5d6b5d}` +
	`html[data-theme="dark"]{--bg:#151a15;--fg:#e8ece6;--accent:#7fc98c;--muted:#9aa89a}` +
	`body{margin:0;background:var(--bg);color:var(--fg);font-family:system-ui,sans-serif}` +
	`a{color:var(--accent)}` +
	`header.site{display:flex;align-items:center;justify-content:space-between;padding:1rem 2rem}` +
	`main.hero{max-width:48rem;margin:4rem auto;padding:0 2rem;text-align:center}` +
	`main.hero p{color:var(--muted)}` +
	`.cta{display:inline-block;padding:.75rem 1.5rem;border-radius:.5rem;background:var(--accent);color:var(--bg);text-decoration:none}`
