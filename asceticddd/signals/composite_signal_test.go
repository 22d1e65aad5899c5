package signals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/ascetic-signals-go/asceticddd/disposable"
)

type failingEmitter[T any] struct {
	err error
}

func (e failingEmitter[T]) Subscribe(Listener[T]) (disposable.Disposable, error) {
	return nil, e.err
}

func (e failingEmitter[T]) Unsubscribe(Listener[T]) error {
	return e.err
}

func (e failingEmitter[T]) Trigger(T) error {
	return e.err
}

func newSamplePair(t *testing.T) (*Registry, *Signal[sampleEvent], *Signal[sampleEvent]) {
	t.Helper()
	r := newTestRegistry()
	return r, MustSignal[sampleEvent](r, "s1"), MustSignal[sampleEvent](r, "s2")
}

func TestCompositeSignal_SubscribePropagatesToAllDelegates(t *testing.T) {
	_, s1, s2 := newSamplePair(t)
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	callCount := 0
	_, err := composite.Subscribe(Observer[sampleEvent](func(e sampleEvent) { callCount++ }))
	require.NoError(t, err)

	require.NoError(t, s1.Trigger(sampleEvent{1}))
	require.NoError(t, s2.Trigger(sampleEvent{1}))

	assert.Equal(t, 2, callCount)
}

func TestCompositeSignal_UnsubscribePropagatesToAllDelegates(t *testing.T) {
	r, s1, s2 := newSamplePair(t)
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	called := false
	observer := Observer[sampleEvent](func(e sampleEvent) { called = true })
	_, err := composite.Subscribe(observer)
	require.NoError(t, err)

	require.NoError(t, composite.Unsubscribe(observer))
	require.NoError(t, composite.Trigger(sampleEvent{1}))

	assert.False(t, called)
	assert.Empty(t, r.Names())
}

func TestCompositeSignal_TriggerPropagatesToAllDelegates(t *testing.T) {
	_, s1, s2 := newSamplePair(t)
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	callCount := 0
	_, err := composite.Subscribe(Observer[sampleEvent](func(e sampleEvent) { callCount++ }))
	require.NoError(t, err)

	require.NoError(t, composite.Trigger(sampleEvent{1}))

	assert.Equal(t, 2, callCount)
}

func TestCompositeSignal_DisposableDetachesFromAllDelegates(t *testing.T) {
	r, s1, s2 := newSamplePair(t)
	composite := NewCompositeSignal[sampleEvent](s1, s2)
	called := false
	d, err := composite.Subscribe(Observer[sampleEvent](func(e sampleEvent) { called = true }))
	require.NoError(t, err)

	d.Dispose()
	require.NoError(t, composite.Trigger(sampleEvent{1}))

	assert.False(t, called)
	assert.Empty(t, r.Names())
}

func TestCompositeSignal_TriggerNoDelegates(t *testing.T) {
	composite := NewCompositeSignal[sampleEvent]()
	assert.NoError(t, composite.Trigger(sampleEvent{1}))
}

func TestCompositeSignal_SubscribeFailureRollsBack(t *testing.T) {
	r, s1, _ := newSamplePair(t)
	expectedErr := errors.New("fail")
	composite := NewCompositeSignal[sampleEvent](s1, failingEmitter[sampleEvent]{err: expectedErr})

	_, err := composite.Subscribe(Observer[sampleEvent](func(sampleEvent) {}))

	assert.Equal(t, expectedErr, err)
	assert.False(t, r.Has("s1"))
}

func TestCompositeSignal_TriggerStopsAtFirstError(t *testing.T) {
	_, s1, s2 := newSamplePair(t)
	expectedErr := errors.New("fail")
	composite := NewCompositeSignal[sampleEvent](s1, failingEmitter[sampleEvent]{err: expectedErr}, s2)
	var got []string
	_, err := s1.Attach(func(sampleEvent) { got = append(got, "s1") })
	require.NoError(t, err)
	_, err = s2.Attach(func(sampleEvent) { got = append(got, "s2") })
	require.NoError(t, err)

	err = composite.Trigger(sampleEvent{1})

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, []string{"s1"}, got)
}

func TestCompositeSignal_UnsubscribeCollectsErrors(t *testing.T) {
	_, s1, _ := newSamplePair(t)
	err1 := errors.New("fail 1")
	err2 := errors.New("fail 2")
	composite := NewCompositeSignal[sampleEvent](
		failingEmitter[sampleEvent]{err: err1}, s1, failingEmitter[sampleEvent]{err: err2})

	err := composite.Unsubscribe(Observer[sampleEvent](func(sampleEvent) {}))

	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)
}

func TestCompositeSignal_Nested(t *testing.T) {
	_, s1, s2 := newSamplePair(t)
	inner := NewCompositeSignal[sampleEvent](s1)
	outer := NewCompositeSignal[sampleEvent](inner, s2)
	callCount := 0
	_, err := outer.Subscribe(Observer[sampleEvent](func(sampleEvent) { callCount++ }))
	require.NoError(t, err)

	require.NoError(t, outer.Trigger(sampleEvent{1}))

	assert.Equal(t, 2, callCount)
}
