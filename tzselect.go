package tzselect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-tzselect/pkg/render"
	tpl "github.com/goliatone/go-tzselect/pkg/render/template"
	"github.com/goliatone/go-tzselect/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tzselect/pkg/translations"
	"github.com/goliatone/go-tzselect/pkg/zones"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

// Entry aliases zoneselect.Option for callers that only import this package.
type Entry = zoneselect.Option

// Settings aliases zoneselect.Settings.
type Settings = zoneselect.Settings

// DefaultLocale is used when neither the call nor the helper name a locale.
const DefaultLocale = "en"

// Helper renders time zone selects. It is immutable after New and safe for
// concurrent use.
type Helper struct {
	table       *zones.Table
	translator  translations.Translator
	renderer    render.Renderer
	locale      string
	templateDir string
}

// Option configures a Helper.
type Option func(*Helper)

// WithTable injects the zone reference table.
func WithTable(table *zones.Table) Option {
	return func(h *Helper) {
		h.table = table
	}
}

// WithTranslator injects the translation lookup.
func WithTranslator(t translations.Translator) Option {
	return func(h *Helper) {
		h.translator = t
	}
}

// WithRenderer replaces the template based renderer.
func WithRenderer(r render.Renderer) Option {
	return func(h *Helper) {
		h.renderer = r
	}
}

// WithDefaultLocale sets the locale used when a call passes none.
func WithDefaultLocale(locale string) Option {
	return func(h *Helper) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			h.locale = trimmed
		}
	}
}

// WithTemplateDir lets templates in dir override the embedded ones. It only
// applies to the default renderer.
func WithTemplateDir(dir string) Option {
	return func(h *Helper) {
		h.templateDir = strings.TrimSpace(dir)
	}
}

// New builds a Helper. Missing pieces default to the embedded zone table,
// the embedded translation catalog and the pongo2 template renderer.
func New(opts ...Option) (*Helper, error) {
	h := &Helper{locale: DefaultLocale}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}

	if h.table == nil {
		table, err := zones.DefaultTable()
		if err != nil {
			return nil, fmt.Errorf("tzselect: load zone table: %w", err)
		}
		h.table = table
	}
	if h.translator == nil {
		catalog, err := translations.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("tzselect: load translations: %w", err)
		}
		h.translator = catalog
	}
	if h.renderer == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithFS(tpl.TemplatesFS())}
		if h.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(h.templateDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("tzselect: template engine: %w", err)
		}
		h.renderer = tpl.NewOptionsRenderer(engine)
	}
	return h, nil
}

// Table returns the zone table in use.
func (h *Helper) Table() *zones.Table {
	return h.table
}

// Translator returns the translation lookup in use.
func (h *Helper) Translator() translations.Translator {
	return h.translator
}

// DefaultLocale returns the locale used when callers pass a blank one.
func (h *Helper) DefaultLocale() string {
	return h.locale
}

// Builder returns a builder over the helper's table.
func (h *Helper) Builder() *zoneselect.Builder {
	return zoneselect.New(h.table)
}

// Localization pairs locale, or the default locale when blank, with the
// helper's translator.
func (h *Helper) Localization(locale string) zoneselect.Localization {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = h.locale
	}
	return zoneselect.Localization{Locale: locale, Translator: h.translator}
}

// Entries builds the option entries without rendering them.
func (h *Helper) Entries(locale string, selected any, priority []string, settings Settings) ([]Entry, error) {
	return h.Builder().Build(selected, priority, h.Localization(locale), settings)
}

// OptionsForSelect returns option tags for every translated zone, with
// priority zones first and selected pre-selected.
func (h *Helper) OptionsForSelect(ctx context.Context, locale string, selected any, priority []string, settings Settings) (string, error) {
	entries, err := h.Entries(locale, selected, priority, settings)
	if err != nil {
		return "", err
	}
	return h.renderer.RenderOptions(ctx, entries)
}

// RenderEntries renders previously built entries as option tags.
func (h *Helper) RenderEntries(ctx context.Context, entries []Entry) (string, error) {
	return h.renderer.RenderOptions(ctx, entries)
}

// SelectTag returns a select element named name. The id defaults to the
// sanitized name; htmlAttrs may override both.
func (h *Helper) SelectTag(ctx context.Context, locale, name string, selected any, priority []string, settings Settings, htmlAttrs map[string]string) (string, error) {
	entries, err := h.Entries(locale, selected, priority, settings)
	if err != nil {
		return "", err
	}
	return h.renderer.RenderSelect(ctx, selectAttributes(name, htmlAttrs), entries)
}

// Select returns a select element bound to object's method attribute. The
// element is named objectName[method] and pre-selects the attribute's value.
func (h *Helper) Select(ctx context.Context, locale, objectName, method string, object any, priority []string, settings Settings, htmlAttrs map[string]string) (string, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return "", errors.New("tzselect: attribute name required")
	}

	value, err := attributeValue(object, method)
	if err != nil {
		return "", err
	}

	name := method
	if objectName = strings.TrimSpace(objectName); objectName != "" {
		name = objectName + "[" + method + "]"
	}
	return h.SelectTag(ctx, locale, name, value, priority, settings, htmlAttrs)
}

// Label returns the localized label for a single zone, or "" when the zone is
// unknown or untranslated.
func (h *Helper) Label(locale string, zone any) string {
	label, _ := h.Builder().Label(zone, h.Localization(locale))
	return label
}

func selectAttributes(name string, htmlAttrs map[string]string) []render.Attribute {
	id := render.FieldID(name)
	if override, ok := htmlAttrs["name"]; ok {
		name = override
	}
	if override, ok := htmlAttrs["id"]; ok {
		id = override
	}
	return render.SelectAttributes(name, id, htmlAttrs)
}
