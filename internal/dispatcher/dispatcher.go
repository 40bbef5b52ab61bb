// Package dispatcher routes actions to registered handlers by namespace.
package dispatcher

import (
	"sync"

	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	"github.com/dshills/tagnav/internal/dispatcher/handler"
	"github.com/dshills/tagnav/internal/input"
)

// Dispatcher routes actions to the handler registered for their
// namespace. Registration is thread-safe; dispatch itself runs on the
// caller's goroutine, matching the single-owner model of the tag state.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]handler.Handler
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]handler.Handler)}
}

// Register registers a namespace handler.
// A later registration for the same namespace replaces the earlier one.
func (d *Dispatcher) Register(h handler.NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[h.Namespace()] = handler.NewNamespaceAdapter(h)
}

// Dispatch routes an action to its namespace handler.
func (d *Dispatcher) Dispatch(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	d.mu.RLock()
	h, ok := d.handlers[action.Namespace()]
	d.mu.RUnlock()

	if !ok || !h.CanHandle(action.Name) {
		return handler.Errorf("no handler for action: %s", action.Name)
	}
	return h.Handle(action, ctx)
}

// Namespaces returns the registered namespace names.
func (d *Dispatcher) Namespaces() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}
