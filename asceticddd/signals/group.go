package signals

import (
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/ascetic-signals-go/asceticddd/disposable"
)

// Group collects subscriptions owned by one component so they can be
// released together. The zero value is ready to use.
type Group struct {
	mu      sync.Mutex
	cleanup []func() error
	closed  bool
}

// Add keeps d for Close. It returns err unchanged so it can wrap a
// Subscribe call directly:
//
//	err := g.Add(signals.Subscribe(r, "saved", listener))
func (g *Group) Add(d disposable.Disposable, err error) error {
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	return g.Defer(func() error {
		d.Dispose()
		return nil
	})
}

// Defer registers fn to run on Close. Once the group is closed fn runs
// immediately.
func (g *Group) Defer(fn func() error) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return fn()
	}
	g.cleanup = append(g.cleanup, fn)
	g.mu.Unlock()
	return nil
}

// Close runs the collected cleanups in reverse order and returns their
// errors combined. Subsequent calls return nil.
func (g *Group) Close() error {
	g.mu.Lock()
	cleanup := g.cleanup
	g.cleanup = nil
	g.closed = true
	g.mu.Unlock()

	var result *multierror.Error
	for i := len(cleanup) - 1; i >= 0; i-- {
		if err := cleanup[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
