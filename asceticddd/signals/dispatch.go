package signals

import (
	"reflect"
	"unsafe"
)

// Subscribe registers listener under name. The same listener may be
// subscribed more than once; each registration is notified separately.
// Disposing the returned Subscription removes exactly this registration.
func Subscribe[T any](r *Registry, name string, listener Listener[T]) (*Subscription, error) {
	if err := checkName("subscribe", name); err != nil {
		return nil, err
	}
	if err := checkListener("subscribe", listener); err != nil {
		return nil, err
	}
	e := &entry{
		key:         identityOf(listener),
		payloadType: reflect.TypeOf((*T)(nil)).Elem(),
		deliver: func(value any) {
			var typed T
			if value != nil {
				typed = value.(T)
			}
			listener.Notify(typed)
		},
	}
	n, err := r.add(name, e)
	if err != nil {
		return nil, err
	}
	r.metrics.add(r.metrics.subscribed, name, 1)
	r.logger.Debug("signal subscribed",
		"signal", name,
		"subscription", e.id.String(),
		"payload_type", e.payloadType.String(),
		"listeners", n)
	return &Subscription{registry: r, name: name, entry: e}, nil
}

// Unsubscribe removes the first registration of listener under name.
// Unknown names and listeners are ignored.
func Unsubscribe[T any](r *Registry, name string, listener Listener[T]) error {
	if err := checkName("unsubscribe", name); err != nil {
		return err
	}
	if listener == nil {
		return nil
	}
	key := identityOf(listener)
	payloadType := reflect.TypeOf((*T)(nil)).Elem()
	removed, left := r.remove(name, func(e *entry) bool {
		return e.payloadType == payloadType && e.key == key
	})
	if removed == nil {
		return nil
	}
	r.metrics.add(r.metrics.unsubscribed, name, 1)
	r.logger.Debug("signal unsubscribed", "signal", name, "subscription", removed.id.String(), "listeners", left)
	return nil
}

// Trigger notifies, in subscription order, every listener under name whose
// payload type accepts T. Listeners of other payload types are skipped.
// The listener list is snapshotted before dispatch: subscriptions changed
// by a listener apply from the next Trigger on.
func Trigger[T any](r *Registry, name string, data T) error {
	if err := checkName("trigger", name); err != nil {
		return err
	}
	r.metrics.add(r.metrics.triggered, name, 1)
	snapshot := r.snapshot(name)
	if len(snapshot) == 0 {
		r.logger.Debug("signal triggered without listeners", "signal", name)
		return nil
	}
	payloadType := reflect.TypeOf((*T)(nil)).Elem()
	r.logger.Debug("signal triggered",
		"signal", name,
		"payload_type", payloadType.String(),
		"listeners", len(snapshot))
	for _, e := range snapshot {
		if !e.accepts(payloadType) {
			r.metrics.add(r.metrics.skipped, name, 1)
			r.logger.Debug("listener skipped",
				"signal", name,
				"subscription", e.id.String(),
				"payload_type", payloadType.String(),
				"listener_type", e.payloadType.String())
			continue
		}
		e.deliver(data)
		r.metrics.add(r.metrics.delivered, name, 1)
	}
	return nil
}

type pointerIdentity struct {
	typ reflect.Type
	ptr uintptr
}

// closureIdentity keys a function listener by its closure object. Closures
// built from the same literal share a code pointer but not a closure object.
type closureIdentity struct {
	typ     reflect.Type
	closure unsafe.Pointer
}

type opaqueIdentity struct {
	_ byte
}

// identityOf returns the key Unsubscribe matches registrations by.
// Functions compare by closure object, reference kinds by address and other
// comparable values by ==. Values that are neither never match.
func identityOf(listener any) any {
	v := reflect.ValueOf(listener)
	switch v.Kind() {
	case reflect.Func:
		return closureIdentity{typ: v.Type(), closure: (*eface)(unsafe.Pointer(&listener)).data}
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return pointerIdentity{typ: v.Type(), ptr: v.Pointer()}
	}
	if v.Comparable() {
		return listener
	}
	return &opaqueIdentity{}
}

// eface is the layout of an interface value with no methods. For a func
// stored in it, data points at the closure object.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
