// Package events is a synchronous, in-process publish/subscribe channel used to
// notify independent surfaces without a shared parent.
package events

// Handler receives one published value.
type Handler[T any] func(T)

// PanicHandler is told about a subscriber that panicked during dispatch.
type PanicHandler func(channel string, recovered any)

type subscription[T any] struct {
	id      int
	handler Handler[T]
}

// Channel delivers each published value to every current subscriber, in
// registration order, within the caller's turn. It holds no lock: it is owned
// by a single logical writer.
type Channel[T any] struct {
	name    string
	subs    []subscription[T]
	nextID  int
	onPanic PanicHandler
}

// NewChannel builds an empty channel; name shows up in panic reports.
func NewChannel[T any](name string) *Channel[T] {
	return &Channel[T]{name: name}
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.name
}

// OnPanic registers the hook invoked when a subscriber panics.
func (c *Channel[T]) OnPanic(fn PanicHandler) {
	c.onPanic = fn
}

// Subscribe appends handler and returns a func that removes it. Calling the
// returned func more than once is a no-op.
func (c *Channel[T]) Subscribe(handler Handler[T]) func() {
	if handler == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription[T]{id: id, handler: handler})
	return func() { c.unsubscribe(id) }
}

func (c *Channel[T]) unsubscribe(id int) {
	for i, sub := range c.subs {
		if sub.id == id {
			next := make([]subscription[T], 0, len(c.subs)-1)
			next = append(next, c.subs[:i]...)
			c.subs = append(next, c.subs[i+1:]...)
			return
		}
	}
}

// Len reports the number of current subscribers.
func (c *Channel[T]) Len() int {
	return len(c.subs)
}

// Publish invokes every subscriber registered at the time of the call and
// returns how many completed without panicking. A panicking subscriber is
// reported through OnPanic and does not stop its siblings.
func (c *Channel[T]) Publish(value T) int {
	if c == nil || len(c.subs) == 0 {
		return 0
	}
	snapshot := c.subs
	delivered := 0
	for _, sub := range snapshot {
		if c.deliver(sub.handler, value) {
			delivered++
		}
	}
	return delivered
}

func (c *Channel[T]) deliver(handler Handler[T], value T) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			if c.onPanic != nil {
				c.onPanic(c.name, rec)
			}
		}
	}()
	handler(value)
	return true
}
