package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EntitySpawned, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(EntitySpawned, ListenerFunc(func(Event) { order = append(order, "b") }))

	d.Dispatch(Event{Type: EntitySpawned})
	d.Dispatch(Event{Type: EntityEvicted})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)

	for _, typ := range All {
		d.Dispatch(Event{Type: typ})
	}
	assert.Equal(t, All, r.got)

	d.Unsubscribe(FieldCleared, r)
	d.Dispatch(Event{Type: FieldCleared})
	assert.Len(t, r.got, len(All))
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: TickDone}) })
}
