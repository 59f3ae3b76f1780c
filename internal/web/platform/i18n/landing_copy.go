package i18n

import (
	"fmt"
	"strings"

	"github.com/camply/camply/internal/platform/branding"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LandingCopy holds translatable copy for the public landing surface.
type LandingCopy struct {
	MetaDescription string
	LandingTitle    string
	HeroHeading     string
	HeroBody        string
	SignIn          string
	SignUp          string
	SignOut         string
	AccountLabel    string
	ThemeLabel      string
	ThemeLight      string
	ThemeDark       string
	ThemeSystem     string
	NotFoundTitle   string
	NotFoundBody    string
}

// Landing returns localized landing copy for the provided language tag.
func Landing(tag language.Tag) LandingCopy {
	loc := message.NewPrinter(tag)

	landingTitle := localizeWithFallback(loc, "title.landing", "Camp together, plan less")

	return LandingCopy{
		MetaDescription: localizeWithFallback(loc, "meta.description", "Camply helps you find, book, and share campsites with the people you camp with."),
		LandingTitle:    withProductSuffix(landingTitle),
		HeroHeading:     localizeWithFallback(loc, "hero.heading", "Camp together, plan less"),
		HeroBody:        localizeWithFallback(loc, "hero.body", branding.Tagline),
		SignIn:          localizeWithFallback(loc, "nav.sign_in", "Sign in"),
		SignUp:          localizeWithFallback(loc, "hero.sign_up", "Get started free"),
		SignOut:         localizeWithFallback(loc, "nav.sign_out", "Sign out"),
		AccountLabel:    localizeWithFallback(loc, "nav.account", "Account"),
		ThemeLabel:      localizeWithFallback(loc, "nav.theme", "Theme"),
		ThemeLight:      localizeWithFallback(loc, "theme.light", "Light"),
		ThemeDark:       localizeWithFallback(loc, "theme.dark", "Dark"),
		ThemeSystem:     localizeWithFallback(loc, "theme.system", "System"),
		NotFoundTitle:   withProductSuffix(localizeWithFallback(loc, "error.not_found.title", "Page not found")),
		NotFoundBody:    localizeWithFallback(loc, "error.not_found.body", "The page you were looking for does not exist."),
	}
}

func withProductSuffix(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return branding.AppName
	}
	return value + " · " + branding.AppName
}

func localizeWithFallback(loc *message.Printer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
