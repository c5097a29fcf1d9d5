package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics counts the absorbed failures and notable transitions of the
// commerce state engine. A nil *EngineMetrics is valid and records nothing.
type EngineMetrics struct {
	persistenceFailures *prometheus.CounterVec
	mutations           *prometheus.CounterVec
	cartPanelOpens      prometheus.Counter
	catalogFallbacks    *prometheus.CounterVec
	staleResults        prometheus.Counter
	subscriberPanics    *prometheus.CounterVec
}

// NewEngineMetrics registers the engine metrics on the provided registerer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	if reg == nil {
		return nil
	}
	m := &EngineMetrics{
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_persistence_failures_total",
			Help: "Absorbed persistence failures by record and operation.",
		}, []string{"record", "op"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_store_mutations_total",
			Help: "Store mutations by store and operation.",
		}, []string{"store", "op"}),
		cartPanelOpens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_cart_panel_open_events_total",
			Help: "Open cart panel events published on the empty to non-empty transition.",
		}),
		catalogFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_catalog_fallbacks_total",
			Help: "Catalog source calls answered from the static dataset.",
		}, []string{"call"}),
		staleResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_catalog_stale_results_total",
			Help: "Catalog results discarded because a newer request superseded them.",
		}),
		subscriberPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_event_subscriber_panics_total",
			Help: "Event subscribers that panicked during dispatch.",
		}, []string{"channel"}),
	}
	reg.MustRegister(
		m.persistenceFailures,
		m.mutations,
		m.cartPanelOpens,
		m.catalogFallbacks,
		m.staleResults,
		m.subscriberPanics,
	)
	return m
}

func (m *EngineMetrics) IncPersistenceFailure(record, op string) {
	if m == nil {
		return
	}
	m.persistenceFailures.WithLabelValues(normalizeLabel(record), normalizeLabel(op)).Inc()
}

func (m *EngineMetrics) IncMutation(store, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

func (m *EngineMetrics) IncCartPanelOpen() {
	if m == nil {
		return
	}
	m.cartPanelOpens.Inc()
}

func (m *EngineMetrics) IncCatalogFallback(call string) {
	if m == nil {
		return
	}
	m.catalogFallbacks.WithLabelValues(normalizeLabel(call)).Inc()
}

func (m *EngineMetrics) IncStaleResult() {
	if m == nil {
		return
	}
	m.staleResults.Inc()
}

func (m *EngineMetrics) IncSubscriberPanic(channel string) {
	if m == nil {
		return
	}
	m.subscriberPanics.WithLabelValues(normalizeLabel(channel)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
