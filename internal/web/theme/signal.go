package theme

import (
	"net/http"
	"strings"
)

// HintHeader is the client hint carrying the host color-scheme signal.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// SystemScheme reads the host scheme signal from the request. Browsers that
// honor the Accept-CH advertisement resend the hint whenever the OS
// preference changes, so a system-mode page tracks the OS without a toggle.
// A missing or unrecognized hint reads as light.
func SystemScheme(r *http.Request) Scheme {
	if r == nil {
		return SchemeLight
	}
	if strings.EqualFold(strings.TrimSpace(r.Header.Get(HintHeader)), "dark") {
		return SchemeDark
	}
	return SchemeLight
}

// AdvertiseHints asks the client to send the color-scheme hint on this and
// subsequent requests, and marks responses as varying by it so shared caches
// never serve a dark page to a light client.
func AdvertiseHints(w http.ResponseWriter) {
	if w == nil {
		return
	}
	w.Header().Set("Accept-CH", HintHeader)
	w.Header().Set("Critical-CH", HintHeader)
	w.Header().Add("Vary", HintHeader)
}
