// Package themecookie centralizes the theme preference cookie.
package themecookie

import (
	"net/http"
	"time"

	"github.com/camply/camply/internal/web/theme"
)

// Name is the theme preference cookie name.
const Name = "camply_theme"

// maxAge keeps the preference for a year; every write refreshes it.
const maxAge = int((365 * 24 * time.Hour) / time.Second)

// Read returns the stored theme mode. Missing or corrupt values fail closed
// to system.
func Read(r *http.Request) theme.Mode {
	if r == nil {
		return theme.ModeSystem
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return theme.ModeSystem
	}
	return theme.ParseMode(cookie.Value)
}

// Write persists the theme mode on the response. The cookie is not
// HttpOnly so first-paint scripts can read it before any round trip.
func Write(w http.ResponseWriter, mode theme.Mode) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    string(theme.ParseMode(string(mode))),
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
