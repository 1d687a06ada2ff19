package translations_test

import (
	"errors"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/goliatone/go-tzselect/pkg/translations"
)

func newBundle(t *testing.T) *i18n.Bundle {
	t.Helper()

	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English,
		&i18n.Message{ID: "time_zones.Berlin", Other: "Berlin"},
		&i18n.Message{ID: "time_zones.Vienna", Other: "Vienna"},
	); err != nil {
		t.Fatalf("add en messages: %v", err)
	}
	if err := bundle.AddMessages(language.German,
		&i18n.Message{ID: "time_zones.Vienna", Other: "Wien"},
	); err != nil {
		t.Fatalf("add de messages: %v", err)
	}
	return bundle
}

func TestBundleTranslator_Translate(t *testing.T) {
	tr := translations.NewBundleTranslator(newBundle(t))

	msg, err := tr.Translate("de", translations.Key("Vienna"))
	if err != nil || msg != "Wien" {
		t.Fatalf("expected Wien, got %q (%v)", msg, err)
	}

	msg, err = tr.Translate("de", translations.Key("Berlin"))
	if err != nil || msg != "Berlin" {
		t.Fatalf("expected default language fallback, got %q (%v)", msg, err)
	}

	if _, err := tr.Translate("de", translations.Key("Atlantis")); !errors.Is(err, translations.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestBundleTranslator_NilBundle(t *testing.T) {
	tr := translations.NewBundleTranslator(nil)
	if _, err := tr.Translate("en", "time_zones.UTC"); !errors.Is(err, translations.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", err)
	}
}

func TestBundleTranslator_ConcurrentLocales(t *testing.T) {
	tr := translations.NewBundleTranslator(newBundle(t))
	want := map[string]string{"de": "Wien", "en": "Vienna"}

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			locale := "de"
			if i%2 == 1 {
				locale = "en"
			}
			t.Run(locale, func(t *testing.T) {
				t.Parallel()
				for n := 0; n < 50; n++ {
					msg, err := tr.Translate(locale, translations.Key("Vienna"))
					if err != nil || msg != want[locale] {
						t.Fatalf("expected %q, got %q (%v)", want[locale], msg, err)
					}
				}
			})
		}
	})
}
