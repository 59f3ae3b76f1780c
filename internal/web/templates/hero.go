package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/camply/camply/internal/web/platform/i18n"
	"github.com/camply/camply/internal/web/routepath"
	"github.com/camply/camply/internal/web/session"
)

// Hero renders the landing hero. Signed-out viewers get the sign-up call
// to action; signed-in viewers already have an account and get none.
func Hero(view session.View, copy webi18n.LandingCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<main class="hero"><h1>%s</h1><p>%s</p>`,
			templ.EscapeString(copy.HeroHeading), templ.EscapeString(copy.HeroBody),
		); err != nil {
			return err
		}
		if !session.IsSignedIn(view) {
			if _, err := fmt.Fprintf(w,
				`<a class="cta" href="%s">%s</a>`,
				routepath.SignUp, templ.EscapeString(copy.SignUp),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}
