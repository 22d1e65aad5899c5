package signals

import (
	"github.com/krew-solutions/ascetic-signals-go/asceticddd/disposable"
)

// Listener receives payloads of type T.
type Listener[T any] interface {
	Notify(value T)
}

// Observer adapts a plain function to Listener. A nil Observer ignores
// every notification.
type Observer[T any] func(T)

func (o Observer[T]) Notify(value T) {
	if o != nil {
		o(value)
	}
}

// ListenerFunc wraps fn into a Listener.
func ListenerFunc[T any](fn func(T)) Listener[T] {
	return Observer[T](fn)
}

// Emitter is a signal bound to a single payload type.
type Emitter[T any] interface {
	Subscribe(listener Listener[T]) (disposable.Disposable, error)
	Unsubscribe(listener Listener[T]) error
	Trigger(value T) error
}
