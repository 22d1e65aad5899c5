package disposable

import "sync"

// Disposable releases whatever its creator acquired: a subscription, a
// registration, a resource. Dispose is safe to call more than once.
type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	once     sync.Once
	callback func()
}

func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	d.once.Do(func() {
		if d.callback != nil {
			d.callback()
		}
	})
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Add(delegate Disposable) {
	d.delegates = append(d.delegates, delegate)
}

func (d *CompositeDisposableImp) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}

// Noop is a Disposable that does nothing.
var Noop Disposable = NewDisposable(nil)
