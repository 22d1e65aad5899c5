// Package signals implements an in-process, synchronous publish/subscribe
// bus keyed by signal name.
//
// A signal is a named channel. Producers call Trigger with a payload of any
// type; every listener subscribed under that name whose payload type accepts
// the trigger's type is notified, in subscription order, on the caller's
// goroutine, before Trigger returns:
//
//	r := signals.New()
//	sub, _ := signals.Subscribe(r, "score-changed", signals.Observer[int](func(score int) {
//		fmt.Println("score:", score)
//	}))
//	_ = signals.Trigger(r, "score-changed", 42)
//	sub.Dispose()
//
// Listeners of different payload types may share a name. Each registration
// records its payload type; a listener whose type does not accept the
// trigger's payload is skipped silently. Callers are expected to use one
// payload type per name, and Signal binds a name to a type so the compiler
// enforces it:
//
//	var ScoreChanged = signals.MustSignal[int](signals.Default(), "score-changed")
//
// Panics raised by a listener are not recovered. They propagate to the
// Trigger caller and the remaining listeners of that trigger are not called.
package signals
