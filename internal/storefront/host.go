package storefront

import "sync"

// Host serializes access to one Session so concurrent HTTP handlers keep the
// single-writer model of the stores.
type Host struct {
	mu      sync.Mutex
	session *Session
}

func NewHost(session *Session) *Host {
	return &Host{session: session}
}

// Do runs fn with exclusive access to the session.
func (h *Host) Do(fn func(*Session) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.session)
}

func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session.Close()
}
