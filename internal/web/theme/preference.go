package theme

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Preference is a signed-in user's persisted theme choice.
type Preference struct {
	UserID    string
	Mode      Mode
	UpdatedAt time.Time
}

// PreferenceStore is the persistence seam the service needs. The SQLite
// store satisfies it.
type PreferenceStore interface {
	GetThemePreference(ctx context.Context, userID string) (Preference, bool, error)
	PutThemePreference(ctx context.Context, pref Preference) error
}

// Service loads and saves per-user theme preferences and notifies
// subscribers when a preference changes. Rendering never goes through the
// subscription path; it exists so observers (logging, cache invalidation)
// stay decoupled from handlers.
type Service struct {
	store PreferenceStore
	clock func() time.Time

	mu          sync.Mutex
	nextSubID   int
	subscribers map[int]func(Preference)
}

// NewService creates a preference service. A nil store is allowed; the
// service then behaves as if no user has a stored preference.
func NewService(store PreferenceStore) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		subscribers: make(map[int]func(Preference)),
	}
}

// ModeFor returns the effective mode for a user. A stored row wins over the
// fallback (normally the cookie mode); store errors fail closed to the
// fallback so a broken store never blocks rendering.
func (s *Service) ModeFor(ctx context.Context, userID string, fallback Mode) Mode {
	fallback = ParseMode(string(fallback))
	if s == nil || s.store == nil {
		return fallback
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fallback
	}
	pref, found, err := s.store.GetThemePreference(ctx, userID)
	if err != nil || !found {
		return fallback
	}
	return ParseMode(string(pref.Mode))
}

// SetMode persists a user's mode and notifies subscribers. Invalid modes
// are normalized before the write.
func (s *Service) SetMode(ctx context.Context, userID string, mode Mode) error {
	if s == nil || s.store == nil {
		return nil
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}
	pref := Preference{
		UserID:    userID,
		Mode:      ParseMode(string(mode)),
		UpdatedAt: s.now(),
	}
	if err := s.store.PutThemePreference(ctx, pref); err != nil {
		return err
	}
	s.notify(pref)
	return nil
}

// Subscribe registers a preference-change observer and returns its
// unsubscribe function. Observers run synchronously on the mutating
// goroutine and must not block.
func (s *Service) Subscribe(fn func(Preference)) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify(pref Preference) {
	s.mu.Lock()
	observers := make([]func(Preference), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()
	for _, fn := range observers {
		fn(pref)
	}
}

func (s *Service) now() time.Time {
	if s == nil || s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}
