package translations

import (
	"errors"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// BundleTranslator serves translations from a go-i18n bundle. Message IDs are
// the full keys, e.g. "time_zones.Berlin".
//
// go-i18n falls back to the bundle's default language when a locale lacks a
// message, so unknown locales render in that language instead of producing
// an empty list.
type BundleTranslator struct {
	bundle *i18n.Bundle

	mu         sync.RWMutex
	localizers map[string]*i18n.Localizer
}

var _ Translator = (*BundleTranslator)(nil)

// NewBundleTranslator wraps bundle.
func NewBundleTranslator(bundle *i18n.Bundle) *BundleTranslator {
	return &BundleTranslator{
		bundle:     bundle,
		localizers: make(map[string]*i18n.Localizer),
	}
}

// Translate implements Translator. A map[string]any argument is passed as
// template data.
func (t *BundleTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil || t.bundle == nil {
		return "", ErrMissingTranslator
	}

	cfg := &i18n.LocalizeConfig{MessageID: key}
	for _, arg := range args {
		if data, ok := arg.(map[string]any); ok {
			cfg.TemplateData = data
			break
		}
	}

	msg, err := t.localizer(locale).Localize(cfg)
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", missing(locale, key)
		}
		return "", err
	}
	return msg, nil
}

func (t *BundleTranslator) localizer(locale string) *i18n.Localizer {
	locale = strings.TrimSpace(locale)

	t.mu.RLock()
	if l, ok := t.localizers[locale]; ok {
		t.mu.RUnlock()
		return l
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.localizers[locale]; ok {
		return l
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		tag = language.Und
	}
	l := i18n.NewLocalizer(t.bundle, tag.String())
	t.localizers[locale] = l
	return l
}
