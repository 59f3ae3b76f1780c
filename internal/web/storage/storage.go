package storage

import (
	"context"

	"github.com/camply/camply/internal/web/theme"
)

// Store persists per-user web preferences.
type Store interface {
	// GetThemePreference loads a stored preference. The bool reports whether
	// a row exists.
	GetThemePreference(ctx context.Context, userID string) (theme.Preference, bool, error)
	// PutThemePreference upserts a preference; the last write wins.
	PutThemePreference(ctx context.Context, pref theme.Preference) error
}
