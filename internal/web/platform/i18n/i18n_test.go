package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagQueryParamPersists(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/?lang=en", nil)
	tag, persist := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en", tag)
	}
	if !persist {
		t.Fatal("query param selection should persist")
	}
}

func TestResolveTagCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	tag, persist := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en", tag)
	}
	if persist {
		t.Fatal("cookie selection should not re-persist")
	}
}

func TestResolveTagAcceptLanguageFallsBack(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "fr-CA, fr;q=0.9, en;q=0.5")
	tag, _ := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en (only supported language)", tag)
	}
}

func TestResolveTagInvalidValues(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/?lang=zz-not-a-tag", nil)
	tag, persist := ResolveTag(req)
	if tag != Default() || persist {
		t.Fatalf("invalid lang = %v persist=%v, want default without persist", tag, persist)
	}

	if tag, _ := ResolveTag(nil); tag != Default() {
		t.Fatalf("nil request tag = %v, want default", tag)
	}
}

func TestResolveLocalizerSetsCookieOnQuerySelection(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?lang=en", nil)
	loc, lang := ResolveLocalizer(rec, req, nil)
	if loc == nil {
		t.Fatal("expected localizer")
	}
	if lang != "en" {
		t.Fatalf("lang = %q, want en", lang)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName {
		t.Fatalf("expected language cookie, got %v", cookies)
	}
}

func TestLandingCopyDefaults(t *testing.T) {
	t.Parallel()

	copy := Landing(language.English)
	if copy.HeroHeading == "" || copy.SignIn == "" || copy.SignUp == "" {
		t.Fatalf("expected populated landing copy, got %+v", copy)
	}
	if copy.LandingTitle == "" {
		t.Fatal("expected landing title")
	}
	if want := " · Camply"; len(copy.LandingTitle) < len(want) || copy.LandingTitle[len(copy.LandingTitle)-len(want):] != want {
		t.Fatalf("landing title %q should carry product suffix", copy.LandingTitle)
	}
}
