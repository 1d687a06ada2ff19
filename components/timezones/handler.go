package timezones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	tzselect "github.com/goliatone/go-tzselect"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type optionsResponse struct {
	Locale string              `json:"locale"`
	Data   []zoneselect.Option `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
// When opts.Helper is nil the default helper is built on first use.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	resolve := helperResolver(opts.Helper)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		query := r.URL.Query()
		format := strings.ToLower(strings.TrimSpace(query.Get(opts.FormatParam)))
		if format == "" {
			format = FormatJSON
		}
		if format != FormatJSON && format != FormatHTML {
			http.Error(w, "unsupported format", http.StatusBadRequest)
			return
		}

		helper, err := resolve()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		locale := resolveLocale(r, opts, helper)
		priority := parseList(query[opts.PriorityParam])
		if len(priority) == 0 {
			priority = opts.Priority
		}

		entries, err := helper.Entries(locale, query.Get(opts.SelectedParam), priority, opts.Settings)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		results := Search(entries, query.Get(opts.SearchParam), parseInt(query.Get(opts.LimitParam)), opts)
		if results == nil {
			results = []zoneselect.Option{}
		}

		var body []byte
		switch format {
		case FormatHTML:
			markup, err := helper.RenderEntries(r.Context(), results)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			body = []byte(markup)
		default:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			encoded, err := json.Marshal(optionsResponse{Locale: locale, Data: results})
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			body = append(encoded, '\n')
		}

		w.Header().Set("Content-Language", locale)
		w.WriteHeader(http.StatusOK)
		if opts.Observer != nil {
			opts.Observer(r, locale, format, len(results))
		}
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}

func helperResolver(helper *tzselect.Helper) func() (*tzselect.Helper, error) {
	if helper != nil {
		return func() (*tzselect.Helper, error) { return helper, nil }
	}
	var (
		once    sync.Once
		built   *tzselect.Helper
		initErr error
	)
	return func() (*tzselect.Helper, error) {
		once.Do(func() {
			built, initErr = tzselect.New()
		})
		return built, initErr
	}
}

func resolveLocale(r *http.Request, opts Options, helper *tzselect.Helper) string {
	if locale := strings.TrimSpace(r.URL.Query().Get(opts.LocaleParam)); locale != "" {
		return locale
	}
	fallback := opts.DefaultLocale
	negotiator := opts.Negotiator
	if negotiator == nil {
		if n, ok := helper.Translator().(Negotiator); ok {
			negotiator = n
		}
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if negotiator == nil || accept == "" {
		return fallback
	}
	return negotiator.Negotiate(accept, fallback)
}

// parseList accepts repeated parameters as well as comma separated values.
func parseList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
