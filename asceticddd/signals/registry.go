package signals

import (
	"crypto/rand"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// entry is one registration. The listener's payload type is erased behind
// deliver and recorded in payloadType so Trigger can check it before calling.
type entry struct {
	id          ulid.ULID
	key         any
	payloadType reflect.Type
	deliver     func(any)
}

func (e *entry) accepts(payloadType reflect.Type) bool {
	if e.payloadType == payloadType {
		return true
	}
	return e.payloadType.Kind() == reflect.Interface && payloadType.Implements(e.payloadType)
}

// Registry maps signal names to their listeners, in subscription order.
// A name is present only while it has at least one listener.
// It is safe for concurrent use.
type Registry struct {
	id      string
	logger  *slog.Logger
	metrics *metrics

	mu      sync.RWMutex
	entries map[string][]*entry
	entropy io.Reader
}

func New(opts ...Option) *Registry {
	o := newRegistryOptions(opts...)
	id := o.id
	if id == "" {
		id = uuid.NewString()
	}
	return &Registry{
		id:      id,
		logger:  o.logger.With("registry", id),
		metrics: newMetrics(o.meterProvider),
		entries: make(map[string][]*entry),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

func (r *Registry) ID() string {
	return r.id
}

// Has reports whether any listener is subscribed under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of registrations under name.
func (r *Registry) Len(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries[name])
}

// Names returns the names that have listeners, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// UnsubscribeAll removes every listener subscribed under name.
func (r *Registry) UnsubscribeAll(name string) error {
	if err := checkName("unsubscribe all", name); err != nil {
		return err
	}
	r.mu.Lock()
	removed := len(r.entries[name])
	delete(r.entries, name)
	r.mu.Unlock()

	r.metrics.add(r.metrics.unsubscribed, name, removed)
	r.logger.Debug("signal cleared", "signal", name, "removed", removed)
	return nil
}

func (r *Registry) add(name string, e *entry) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), r.entropy)
	if err != nil {
		return 0, errors.Wrap(err, "subscribe: unable to generate subscription id")
	}
	e.id = id
	r.entries[name] = append(r.entries[name], e)
	return len(r.entries[name]), nil
}

// remove deletes the first entry under name matching the predicate and
// drops the name once its last entry is gone.
func (r *Registry) remove(name string, match func(*entry) bool) (*entry, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.entries[name]
	if !ok {
		return nil, 0
	}
	i := slices.IndexFunc(list, match)
	if i < 0 {
		return nil, len(list)
	}
	removed := list[i]
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(r.entries, name)
	} else {
		r.entries[name] = list
	}
	return removed, len(list)
}

func (r *Registry) snapshot(name string) []*entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.entries[name]
	if len(list) == 0 {
		return nil
	}
	return slices.Clone(list)
}

func (r *Registry) dispose(name string, e *entry) {
	removed, left := r.remove(name, func(candidate *entry) bool {
		return candidate == e
	})
	if removed == nil {
		return
	}
	r.metrics.add(r.metrics.unsubscribed, name, 1)
	r.logger.Debug("subscription disposed", "signal", name, "subscription", e.id.String(), "listeners", left)
}
