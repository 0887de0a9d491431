package console

import (
	"os"
	"os/signal"
	"sync"
)

// SignalRegistry maps OS signals to opaque callbacks. It is the only
// process-wide state in the package: dispatch may run on a different
// goroutine than the render loop, so the map has its own lock,
// distinct from any render-state lock. Dispatch for an unregistered
// signal is a no-op.
type SignalRegistry struct {
	mu       sync.Mutex
	handlers map[os.Signal]func()

	ch        chan os.Signal
	done      chan struct{}
	closeOnce sync.Once
}

// NewSignalRegistry creates a registry and starts its delivery
// goroutine.
func NewSignalRegistry() *SignalRegistry {
	r := &SignalRegistry{
		handlers: make(map[os.Signal]func()),
		ch:       make(chan os.Signal, 4),
		done:     make(chan struct{}),
	}
	go r.deliver()
	return r
}

func (r *SignalRegistry) deliver() {
	for {
		select {
		case sig := <-r.ch:
			r.Dispatch(sig)
		case <-r.done:
			return
		}
	}
}

// Register installs a callback for a signal and subscribes to OS
// delivery of it.
func (r *SignalRegistry) Register(sig os.Signal, callback func()) {
	r.mu.Lock()
	r.handlers[sig] = callback
	r.mu.Unlock()

	signal.Notify(r.ch, sig)
}

// Unregister removes the callback for a signal and restores the
// default OS disposition.
func (r *SignalRegistry) Unregister(sig os.Signal) {
	r.mu.Lock()
	delete(r.handlers, sig)
	r.mu.Unlock()

	signal.Reset(sig)
}

// Dispatch invokes the callback registered for sig, if any. The
// callback runs outside the registry lock.
func (r *SignalRegistry) Dispatch(sig os.Signal) {
	r.mu.Lock()
	callback := r.handlers[sig]
	r.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Close stops OS delivery and the dispatch goroutine. Safe to call
// multiple times.
func (r *SignalRegistry) Close() {
	r.closeOnce.Do(func() {
		signal.Stop(r.ch)
		close(r.done)
	})
}
