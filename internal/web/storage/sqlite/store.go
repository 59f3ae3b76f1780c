package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/camply/camply/internal/platform/storage/sqlitemigrate"
	"github.com/camply/camply/internal/web/storage"
	"github.com/camply/camply/internal/web/storage/sqlite/migrations"
	"github.com/camply/camply/internal/web/theme"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web preference data.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a web preference SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetThemePreference loads a stored theme preference by user id.
func (s *Store) GetThemePreference(ctx context.Context, userID string) (theme.Preference, bool, error) {
	if s == nil || s.sqlDB == nil {
		return theme.Preference{}, false, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return theme.Preference{}, false, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, mode, updated_at FROM theme_preferences WHERE user_id = ?`,
		userID,
	)

	var pref theme.Preference
	var mode string
	var updatedAt int64
	if err := row.Scan(&pref.UserID, &mode, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return theme.Preference{}, false, nil
		}
		return theme.Preference{}, false, fmt.Errorf("get theme preference: %w", err)
	}
	// Corrupt stored values fail closed to system on read.
	pref.Mode = theme.ParseMode(mode)
	pref.UpdatedAt = unixMillisToTime(updatedAt)
	return pref, true, nil
}

// PutThemePreference upserts a theme preference; the last write wins.
func (s *Store) PutThemePreference(ctx context.Context, pref theme.Preference) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	pref.UserID = strings.TrimSpace(pref.UserID)
	if pref.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	pref.Mode = theme.ParseMode(string(pref.Mode))
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO theme_preferences (user_id, mode, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   mode = excluded.mode,
		   updated_at = excluded.updated_at`,
		pref.UserID,
		string(pref.Mode),
		timeToUnixMillis(pref.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put theme preference: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
