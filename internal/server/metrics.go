package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// localeSet reports whether a locale is known; translations.Catalog satisfies it.
type localeSet interface {
	Has(locale string) bool
}

type Metrics struct {
	ListsServed   *prometheus.CounterVec
	EntriesServed prometheus.Histogram
	locales       localeSet
}

// NewMetrics registers the option list collectors on reg.
func NewMetrics(reg prometheus.Registerer, locales localeSet) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ListsServed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tzselect_lists_served_total",
			Help: "Total number of time zone option lists served",
		}, []string{"locale", "format"}),
		EntriesServed: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tzselect_list_entries",
			Help:    "Number of entries per served option list",
			Buckets: []float64{0, 1, 10, 25, 50, 100, 200},
		}),
		locales: locales,
	}
}

// Observe matches the component observer signature.
func (m *Metrics) Observe(r *http.Request, locale, format string, count int) {
	if m == nil {
		return
	}
	// Unknown locales share a label to bound cardinality.
	if m.locales == nil || !m.locales.Has(locale) {
		locale = "other"
	}
	m.ListsServed.WithLabelValues(locale, format).Inc()
	m.EntriesServed.Observe(float64(count))
}
