package signals

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	registry *Registry
	name     string
	entry    *entry
	once     sync.Once
}

// ID is unique per registration and sorts in subscription order.
func (s *Subscription) ID() ulid.ULID {
	return s.entry.id
}

func (s *Subscription) Name() string {
	return s.name
}

// Dispose removes this registration. Later calls do nothing.
func (s *Subscription) Dispose() {
	s.once.Do(func() {
		s.registry.dispose(s.name, s.entry)
	})
}
