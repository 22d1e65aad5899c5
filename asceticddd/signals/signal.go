package signals

import (
	"github.com/krew-solutions/ascetic-signals-go/asceticddd/disposable"
)

var _ Emitter[int] = (*Signal[int])(nil)

// Signal binds a signal name on a registry to a single payload type.
type Signal[T any] struct {
	registry *Registry
	name     string
}

func NewSignal[T any](r *Registry, name string) (*Signal[T], error) {
	if err := checkName("signal", name); err != nil {
		return nil, err
	}
	if r == nil {
		r = Default()
	}
	return &Signal[T]{registry: r, name: name}, nil
}

// MustSignal is like NewSignal but panics on an empty name. It is meant for
// package level declarations.
func MustSignal[T any](r *Registry, name string) *Signal[T] {
	s, err := NewSignal[T](r, name)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Signal[T]) Name() string {
	return s.name
}

func (s *Signal[T]) Subscribe(listener Listener[T]) (disposable.Disposable, error) {
	sub, err := Subscribe(s.registry, s.name, listener)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Attach subscribes fn.
func (s *Signal[T]) Attach(fn func(T)) (disposable.Disposable, error) {
	return s.Subscribe(Observer[T](fn))
}

func (s *Signal[T]) Unsubscribe(listener Listener[T]) error {
	return Unsubscribe(s.registry, s.name, listener)
}

func (s *Signal[T]) Trigger(value T) error {
	return Trigger(s.registry, s.name, value)
}

// Reset removes every listener of the signal, whatever its payload type.
func (s *Signal[T]) Reset() error {
	return s.registry.UnsubscribeAll(s.name)
}
