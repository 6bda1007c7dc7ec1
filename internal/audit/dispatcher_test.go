package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
)

type memorySink struct {
	lock   sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Log(ev Event) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logger.Discard())

	d.Dispatch(Event{Action: "booking_created", Entity: "booking", EntityRef: "AAAA0001"})
	d.Dispatch(Event{Action: "booking_confirmed", Entity: "booking", EntityRef: "AAAA0001"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "booking_created", sink.events[0].Action)
	assert.Equal(t, "booking_confirmed", sink.events[1].Action)
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	d := NewDispatcher(sink, logger.Discard())

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logger.Discard())
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "late"}) })
	assert.NotPanics(t, d.Close)
	assert.Empty(t, sink.events)
}
