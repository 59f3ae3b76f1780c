package theme

import (
	"context"
	"errors"
	"testing"
)

type fakePreferenceStore struct {
	prefs   map[string]Preference
	getErr  error
	putErr  error
	putUser string
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{prefs: make(map[string]Preference)}
}

func (f *fakePreferenceStore) GetThemePreference(_ context.Context, userID string) (Preference, bool, error) {
	if f.getErr != nil {
		return Preference{}, false, f.getErr
	}
	pref, ok := f.prefs[userID]
	return pref, ok, nil
}

func (f *fakePreferenceStore) PutThemePreference(_ context.Context, pref Preference) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putUser = pref.UserID
	f.prefs[pref.UserID] = pref
	return nil
}

func TestModeForPrefersStoredRow(t *testing.T) {
	t.Parallel()

	store := newFakePreferenceStore()
	store.prefs["user-1"] = Preference{UserID: "user-1", Mode: ModeDark}
	svc := NewService(store)

	if got := svc.ModeFor(context.Background(), "user-1", ModeLight); got != ModeDark {
		t.Fatalf("mode = %q, want stored dark", got)
	}
}

func TestModeForFallsBackWithoutRow(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakePreferenceStore())

	if got := svc.ModeFor(context.Background(), "user-1", ModeDark); got != ModeDark {
		t.Fatalf("mode = %q, want fallback dark", got)
	}
	if got := svc.ModeFor(context.Background(), "", ModeLight); got != ModeLight {
		t.Fatalf("mode = %q, want fallback light for anonymous", got)
	}
}

func TestModeForFailsClosedOnStoreError(t *testing.T) {
	t.Parallel()

	store := newFakePreferenceStore()
	store.getErr = errors.New("disk gone")
	svc := NewService(store)

	if got := svc.ModeFor(context.Background(), "user-1", ModeSystem); got != ModeSystem {
		t.Fatalf("mode = %q, want system fallback on error", got)
	}
}

func TestModeForNormalizesCorruptFallback(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)

	if got := svc.ModeFor(context.Background(), "user-1", Mode("purple")); got != ModeSystem {
		t.Fatalf("mode = %q, want system for invalid fallback", got)
	}
}

func TestSetModePersistsAndNotifies(t *testing.T) {
	t.Parallel()

	store := newFakePreferenceStore()
	svc := NewService(store)

	var seen []Preference
	unsubscribe := svc.Subscribe(func(pref Preference) {
		seen = append(seen, pref)
	})

	if err := svc.SetMode(context.Background(), "user-1", ModeDark); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if store.putUser != "user-1" {
		t.Fatalf("store put user = %q, want user-1", store.putUser)
	}
	if len(seen) != 1 || seen[0].Mode != ModeDark {
		t.Fatalf("observer saw %v, want one dark preference", seen)
	}

	unsubscribe()
	if err := svc.SetMode(context.Background(), "user-1", ModeLight); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("observer notified after unsubscribe: %v", seen)
	}
}

func TestSetModeNormalizesInvalidMode(t *testing.T) {
	t.Parallel()

	store := newFakePreferenceStore()
	svc := NewService(store)

	if err := svc.SetMode(context.Background(), "user-1", Mode("purple")); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if got := store.prefs["user-1"].Mode; got != ModeSystem {
		t.Fatalf("stored mode = %q, want system", got)
	}
}

func TestSetModeIgnoresAnonymousUsers(t *testing.T) {
	t.Parallel()

	store := newFakePreferenceStore()
	svc := NewService(store)

	if err := svc.SetMode(context.Background(), "  ", ModeDark); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if len(store.prefs) != 0 {
		t.Fatalf("expected no writes for anonymous user, got %v", store.prefs)
	}
}
