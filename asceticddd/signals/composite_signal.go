package signals

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/ascetic-signals-go/asceticddd/disposable"
)

var _ Emitter[int] = (*CompositeSignal[int])(nil)

// CompositeSignal fans a listener or a payload out to several emitters.
type CompositeSignal[T any] struct {
	delegates []Emitter[T]
}

func NewCompositeSignal[T any](delegates ...Emitter[T]) *CompositeSignal[T] {
	return &CompositeSignal[T]{delegates: delegates}
}

// Subscribe attaches listener to every delegate. If one of them fails the
// registrations made so far are disposed.
func (s *CompositeSignal[T]) Subscribe(listener Listener[T]) (disposable.Disposable, error) {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		d, err := delegate.Subscribe(listener)
		if err != nil {
			disposable.NewCompositeDisposable(disposables...).Dispose()
			return nil, err
		}
		disposables = append(disposables, d)
	}
	return disposable.NewCompositeDisposable(disposables...), nil
}

func (s *CompositeSignal[T]) Unsubscribe(listener Listener[T]) error {
	var result error
	for _, delegate := range s.delegates {
		if err := delegate.Unsubscribe(listener); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// Trigger triggers the delegates in order and stops at the first error.
func (s *CompositeSignal[T]) Trigger(value T) error {
	for _, delegate := range s.delegates {
		if err := delegate.Trigger(value); err != nil {
			return err
		}
	}
	return nil
}
