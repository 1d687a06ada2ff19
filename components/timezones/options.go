package timezones

import (
	"net/http"

	tzselect "github.com/goliatone/go-tzselect"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

type EmptySearchMode string

const (
	// EmptySearchAll returns the complete list, separators included.
	EmptySearchAll  EmptySearchMode = "all"
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

// ObserverFunc is notified after each successful response.
type ObserverFunc func(r *http.Request, locale, format string, count int)

// Negotiator picks a locale from an Accept-Language header.
// translations.Catalog satisfies it.
type Negotiator interface {
	Negotiate(acceptLanguage, fallback string) string
}

type Options struct {
	RoutePath       string
	LocaleParam     string
	SearchParam     string
	LimitParam      string
	PriorityParam   string
	SelectedParam   string
	FormatParam     string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	DefaultLocale   string
	Guard           GuardFunc
	Observer        ObserverFunc

	// Priority lists zones promoted when the request names none.
	Priority []string
	Settings zoneselect.Settings

	Helper     *tzselect.Helper
	Negotiator Negotiator
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/timezones",
		LocaleParam:     "locale",
		SearchParam:     "q",
		LimitParam:      "limit",
		PriorityParam:   "priority",
		SelectedParam:   "selected",
		FormatParam:     "format",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchAll,
		DefaultLocale:   tzselect.DefaultLocale,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchAll
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/timezones"
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = "locale"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.PriorityParam == "" {
		opts.PriorityParam = "priority"
	}
	if opts.SelectedParam == "" {
		opts.SelectedParam = "selected"
	}
	if opts.FormatParam == "" {
		opts.FormatParam = "format"
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = tzselect.DefaultLocale
	}
	if opts.Priority != nil {
		opts.Priority = append([]string{}, opts.Priority...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithDefaultLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLocale = locale
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithObserver(observer ObserverFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Observer = observer
	}
}

func WithPriority(zones []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if zones == nil {
			o.Priority = nil
			return
		}
		o.Priority = append([]string{}, zones...)
	}
}

func WithSettings(settings zoneselect.Settings) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Settings = settings
	}
}

func WithHelper(helper *tzselect.Helper) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Helper = helper
	}
}

func WithNegotiator(n Negotiator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Negotiator = n
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
