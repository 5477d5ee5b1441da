package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(e Event) { got = append(got, "other") }))

	d.Dispatch(Event{Type: WaveStarted, Data: 1})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	l := ListenerFunc(func(e Event) { calls++ })
	d.Subscribe(GameOver, l)
	d.Unsubscribe(GameOver, l)

	d.Dispatch(Event{Type: GameOver})
	assert.Zero(t, calls)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: EnemyKilled}) })
}

func TestSubscribeAllAndUnsubscribeAll(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	l := ListenerFunc(func(e Event) { got = append(got, e.Type) })
	d.SubscribeAll(l, WaveStarted, WaveEnded)

	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: WaveEnded})
	assert.Equal(t, []EventType{WaveStarted, WaveEnded}, got)

	d.UnsubscribeAll(l)
	d.Dispatch(Event{Type: WaveStarted})
	assert.Len(t, got, 2)
}
