package translations

import (
	"embed"
	"fmt"
	"html"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localesFS embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the catalog built from the embedded locale files.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadCatalogFS(localesFS, "locales")
	})
	return defaultCatalog, defaultErr
}

// CatalogOption configures catalog loading.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	policy   *bluemonday.Policy
	sanitize bool
}

// WithPolicy replaces the sanitizing policy applied to loaded strings.
func WithPolicy(policy *bluemonday.Policy) CatalogOption {
	return func(cfg *catalogConfig) {
		if policy == nil {
			return
		}
		cfg.policy = policy
		cfg.sanitize = true
	}
}

// WithoutSanitizer keeps loaded strings verbatim.
func WithoutSanitizer() CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.sanitize = false
	}
}

func newCatalogConfig(opts []CatalogOption) catalogConfig {
	cfg := catalogConfig{sanitize: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.sanitize && cfg.policy == nil {
		cfg.policy = bluemonday.StrictPolicy()
	}
	return cfg
}

// clean strips markup from a translated string. Labels are escaped again by
// whatever renders them, so entities produced by the policy are decoded here.
func (cfg catalogConfig) clean(value string) string {
	if !cfg.sanitize || cfg.policy == nil {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(html.UnescapeString(cfg.policy.Sanitize(value)))
}

// Catalog is an immutable locale -> key -> message table.
type Catalog struct {
	messages map[string]map[string]string
	locales  []string
	matcher  language.Matcher
}

var _ Translator = (*Catalog)(nil)

// NewCatalog builds a catalog from flattened messages keyed by locale.
func NewCatalog(messages map[string]map[string]string, opts ...CatalogOption) *Catalog {
	cfg := newCatalogConfig(opts)
	acc := newAccumulator()
	for locale, entries := range messages {
		for key, value := range entries {
			acc.add(locale, key, cfg.clean(value))
		}
	}
	return acc.catalog()
}

// LoadCatalog decodes a single YAML document whose top-level keys are
// locales. Nested maps are flattened into dotted keys.
func LoadCatalog(r io.Reader, opts ...CatalogOption) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("translations: missing reader")
	}
	cfg := newCatalogConfig(opts)
	acc := newAccumulator()
	if err := acc.decode(r, cfg); err != nil {
		return nil, err
	}
	return acc.catalog(), nil
}

// LoadCatalogFS loads every .yml/.yaml file under dir in fsys into one
// catalog. Later files override earlier ones for the same locale and key.
func LoadCatalogFS(fsys fs.FS, dir string, opts ...CatalogOption) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("translations: missing filesystem")
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("translations: read dir %q: %w", dir, err)
	}

	cfg := newCatalogConfig(opts)
	acc := newAccumulator()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		name := path.Join(dir, entry.Name())
		if err := loadFile(fsys, name, acc, cfg); err != nil {
			return nil, err
		}
	}
	return acc.catalog(), nil
}

func loadFile(fsys fs.FS, name string, acc *accumulator, cfg catalogConfig) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("translations: open %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	if err := acc.decode(f, cfg); err != nil {
		return fmt.Errorf("translations: %s: %w", name, err)
	}
	return nil
}

// Translate implements Translator. Locales are matched exactly first, then by
// their canonical BCP 47 form and its parents ("de-AT" falls back to "de").
// Arguments given as a map interpolate %{name} placeholders.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	entries, ok := c.resolve(locale)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	msg, ok := entries[key]
	if !ok || msg == "" {
		return "", missing(locale, key)
	}
	return interpolate(msg, args), nil
}

// Has reports whether the catalog can serve locale.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.resolve(locale)
	return ok
}

// Locales lists the loaded locales in sorted order.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c.locales...)
}

// Negotiate picks the best catalog locale for an Accept-Language header. It
// returns fallback when nothing matches.
func (c *Catalog) Negotiate(acceptLanguage, fallback string) string {
	if c == nil || c.matcher == nil {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(c.locales) {
		return fallback
	}
	return c.locales[idx]
}

// Coverage compares the zone scope of locale against names. It returns the
// names without a translation and the translated keys that match no name.
func (c *Catalog) Coverage(locale string, names []string) (untranslated, unknown []string) {
	entries, _ := c.resolve(locale)

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
		if msg := entries[Key(name)]; msg == "" {
			untranslated = append(untranslated, name)
		}
	}

	prefix := Scope + "."
	for key := range entries {
		name, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return untranslated, unknown
}

func (c *Catalog) resolve(locale string) (map[string]string, bool) {
	if c == nil {
		return nil, false
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, false
	}
	if entries, ok := c.messages[locale]; ok {
		return entries, true
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, false
	}
	for !tag.IsRoot() {
		if entries, ok := c.messages[tag.String()]; ok {
			return entries, true
		}
		tag = tag.Parent()
	}
	return nil, false
}

type accumulator struct {
	messages map[string]map[string]string
}

func newAccumulator() *accumulator {
	return &accumulator{messages: make(map[string]map[string]string)}
}

func (a *accumulator) add(locale, key, value string) {
	locale = canonicalLocale(locale)
	key = strings.TrimSpace(key)
	if locale == "" || key == "" {
		return
	}
	entries, ok := a.messages[locale]
	if !ok {
		entries = make(map[string]string)
		a.messages[locale] = entries
	}
	entries[key] = value
}

func (a *accumulator) decode(r io.Reader, cfg catalogConfig) error {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("translations: decode catalog: %w", err)
	}
	for locale, tree := range doc {
		nested, ok := tree.(map[string]any)
		if !ok {
			continue
		}
		a.flatten(locale, "", nested, cfg)
	}
	return nil
}

func (a *accumulator) flatten(locale, prefix string, tree map[string]any, cfg catalogConfig) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			a.flatten(locale, full, v, cfg)
		case string:
			a.add(locale, full, cfg.clean(v))
		case nil:
		default:
			a.add(locale, full, cfg.clean(fmt.Sprint(v)))
		}
	}
}

func (a *accumulator) catalog() *Catalog {
	locales := make([]string, 0, len(a.messages))
	for locale := range a.messages {
		locales = append(locales, locale)
	}
	slices.Sort(locales)

	catalog := &Catalog{
		messages: a.messages,
		locales:  locales,
	}
	if len(locales) > 0 {
		tags := make([]language.Tag, 0, len(locales))
		for _, locale := range locales {
			tags = append(tags, language.Make(locale))
		}
		catalog.matcher = language.NewMatcher(tags)
	}
	return catalog
}

func canonicalLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	return tag.String()
}

func interpolate(msg string, args []any) string {
	if !strings.Contains(msg, "%{") {
		return msg
	}
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		for name, value := range values {
			msg = strings.ReplaceAll(msg, "%{"+name+"}", fmt.Sprint(value))
		}
	}
	return msg
}
