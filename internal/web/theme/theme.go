// Package theme models the visual scheme preference and its resolution to a
// concrete light or dark scheme.
package theme

import "strings"

// Mode is the user's stored scheme preference.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Scheme is a concrete rendered color scheme. Unlike Mode it is never
// "system"; resolution always lands on light or dark.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// ParseMode normalizes a stored preference value. Unknown or corrupt values
// fail closed to ModeSystem.
func ParseMode(raw string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeLight:
		return ModeLight
	case ModeDark:
		return ModeDark
	case ModeSystem:
		return ModeSystem
	default:
		return ModeSystem
	}
}

// Resolve maps a mode and the host scheme signal to the scheme a page
// renders with. Explicit light/dark modes resolve to themselves; system
// follows the signal. An absent signal defaults to light.
func Resolve(mode Mode, system Scheme) Scheme {
	switch mode {
	case ModeLight:
		return SchemeLight
	case ModeDark:
		return SchemeDark
	default:
		if system == SchemeDark {
			return SchemeDark
		}
		return SchemeLight
	}
}

// Resolved couples the stored mode with the concrete scheme derived for the
// current render.
type Resolved struct {
	Mode   Mode
	Scheme Scheme
}

// ResolveFor builds the render state for a mode under the given signal.
func ResolveFor(mode Mode, system Scheme) Resolved {
	return Resolved{Mode: mode, Scheme: Resolve(mode, system)}
}
