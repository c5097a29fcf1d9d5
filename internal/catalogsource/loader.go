package catalogsource

import (
	"sync/atomic"

	"github.com/angelmondragon/storefront/pkg/metrics"
)

// Ticket identifies one catalog request.
type Ticket uint64

// Loader discards results of superseded requests. Each Begin supersedes every
// earlier ticket; it does not cancel them.
type Loader struct {
	generation atomic.Uint64
	metrics    *metrics.EngineMetrics
}

func NewLoader(m *metrics.EngineMetrics) *Loader {
	return &Loader{metrics: m}
}

// Begin starts a request and returns its ticket.
func (l *Loader) Begin() Ticket {
	return Ticket(l.generation.Add(1))
}

// Current reports whether t is the latest ticket.
func (l *Loader) Current(t Ticket) bool {
	return uint64(t) == l.generation.Load()
}

// Apply runs apply when t is still current and reports whether it ran. Stale
// results are counted and dropped.
func (l *Loader) Apply(t Ticket, apply func()) bool {
	if !l.Current(t) {
		l.metrics.IncStaleResult()
		return false
	}
	if apply != nil {
		apply()
	}
	return true
}
