package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/camply/camply/internal/platform/branding"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/session"
	"github.com/camply/camply/internal/web/theme"
)

// Navbar renders the site header. Session-dependent chrome switches over
// the concrete view type so a new session state fails loudly instead of
// rendering the wrong slot.
func Navbar(view session.View, current theme.Resolved, copy webi18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<header class="site"><a class="brand" href="%s">%s</a><nav>`,
			routepath.Root, templ.EscapeString(branding.AppName),
		); err != nil {
			return err
		}
		if err := themeToggle(current, copy).Render(ctx, w); err != nil {
			return err
		}

		switch v := view.(type) {
		case session.SignedIn:
			name := strings.TrimSpace(v.Identity.DisplayName)
			if name == "" {
				name = copy.AccountLabel
			}
			if avatar := strings.TrimSpace(v.Identity.AvatarURL); avatar != "" {
				if _, err := fmt.Fprintf(w,
					`<img class="avatar" src="%s" alt=""/>`,
					templ.EscapeString(avatar),
				); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<span class="account">%s</span><form method="post" action="%s"><button type="submit">%s</button></form>`,
				templ.EscapeString(name), routepath.SignOut, templ.EscapeString(copy.SignOut),
			); err != nil {
				return err
			}
		case session.SignedOut:
			if _, err := fmt.Fprintf(w,
				`<a href="%s">%s</a>`,
				routepath.SignIn, templ.EscapeString(copy.SignIn),
			); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unhandled session view %T", view)
		}

		_, err := io.WriteString(w, `</nav></header>`)
		return err
	})
}

// themeToggle renders the POST form that persists a theme preference. The
// current mode is preselected so submitting without changes is a no-op.
func themeToggle(current theme.Resolved, copy webi18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form class="theme" method="post" action="%s"><label>%s <select name="mode">`,
			routepath.Theme, templ.EscapeString(copy.ThemeLabel),
		); err != nil {
			return err
		}
		options := []struct {
			mode  theme.Mode
			label string
		}{
			{theme.ModeLight, copy.ThemeLight},
			{theme.ModeDark, copy.ThemeDark},
			{theme.ModeSystem, copy.ThemeSystem},
		}
		for _, option := range options {
			selected := ""
			if option.mode == current.Mode {
				selected = ` selected`
			}
			if _, err := fmt.Fprintf(w,
				`<option value="%s"%s>%s</option>`,
				templ.EscapeString(string(option.mode)), selected, templ.EscapeString(option.label),
			); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</select></label><button type="submit">%s</button></form>`,
			templ.EscapeString(copy.ThemeLabel))
		return err
	})
}
