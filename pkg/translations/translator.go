package translations

import (
	"errors"
	"fmt"
	"strings"
)

// Scope is the key prefix under which zone names are translated.
const Scope = "time_zones"

var (
	ErrMissingTranslation = errors.New("translations: missing translation")
	ErrMissingTranslator  = errors.New("translations: translator not configured")
	ErrUnknownLocale      = errors.New("translations: unknown locale")
)

// Translator resolves a key for a locale. Implementations return an error
// (or an empty string) when no translation exists.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	if fn == nil {
		return "", ErrMissingTranslator
	}
	return fn(locale, key, args...)
}

// Key returns the translation key for a zone identifier.
func Key(name string) string {
	return Scope + "." + name
}

// Lookup translates the zone identifier name. The boolean is false when the
// translator is nil, fails, or yields a blank string.
func Lookup(t Translator, locale, name string) (string, bool) {
	if t == nil {
		return "", false
	}
	msg, err := t.Translate(locale, Key(name))
	if err != nil {
		return "", false
	}
	msg = strings.TrimSpace(msg)
	return msg, msg != ""
}

func missing(locale, key string) error {
	return fmt.Errorf("%w: %s: %s", ErrMissingTranslation, locale, key)
}
