package eventbus_test

import (
	"testing"

	"github.com/vgrid-io/vgrid/eventbus"
)

type event string

const (
	eventPing event = "ping"
	eventPong event = "pong"
)

func TestSubscribeEmit(t *testing.T) {
	bus := eventbus.New[event]()

	var got int
	_, err := eventbus.Subscribe(bus, eventPing, func(n int) {
		got = n
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	eventbus.Emit(bus, eventPing, 42)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := eventbus.New[event]()

	calls := 0
	unsub, _ := eventbus.Subscribe(bus, eventPing, func(int) { calls++ })

	eventbus.Emit(bus, eventPing, 1)
	unsub()
	eventbus.Emit(bus, eventPing, 2)
	unsub() // second call is a no-op

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestOnceFiresOnlyOnce(t *testing.T) {
	bus := eventbus.New[event]()

	calls := 0
	_, _ = eventbus.Once(bus, eventPing, func(int) { calls++ })

	eventbus.Emit(bus, eventPing, 1)
	eventbus.Emit(bus, eventPing, 2)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if n := bus.ListenerCount(eventPing); n != 0 {
		t.Fatalf("ListenerCount = %d, want 0 after once fired", n)
	}
}

func TestEmitSnapshotToleratesMutationDuringDispatch(t *testing.T) {
	bus := eventbus.New[event]()

	var secondFired bool
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) {
		// Subscribing mid-dispatch must not affect this Emit call nor
		// corrupt the live listener slice; Emit iterates a snapshot.
		_, _ = eventbus.Subscribe(bus, eventPing, func(int) { secondFired = true })
	})

	eventbus.Emit(bus, eventPing, 1)
	if secondFired {
		t.Fatalf("listener added during dispatch must not fire in the same Emit call")
	}

	eventbus.Emit(bus, eventPing, 2)
	if !secondFired {
		t.Fatalf("listener added during the prior dispatch should fire on the next Emit")
	}
}

func TestListenerPanicDoesNotStopDispatch(t *testing.T) {
	bus := eventbus.New[event]()

	var secondCalled bool
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) {
		panic("boom")
	})
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) {
		secondCalled = true
	})

	eventbus.Emit(bus, eventPing, 1)

	if !secondCalled {
		t.Fatalf("a panicking listener must not prevent later listeners from running")
	}
}

func TestRemoveAll(t *testing.T) {
	bus := eventbus.New[event]()
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) {})
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) {})

	bus.RemoveAll(eventPing)
	if n := bus.ListenerCount(eventPing); n != 0 {
		t.Fatalf("ListenerCount = %d, want 0", n)
	}
}

func TestSubscribeNilListener(t *testing.T) {
	bus := eventbus.New[event]()
	if _, err := eventbus.Subscribe[event, int](bus, eventPing, nil); err != eventbus.ErrNilListener {
		t.Fatalf("err = %v, want ErrNilListener", err)
	}
}

func TestIndependentEvents(t *testing.T) {
	bus := eventbus.New[event]()
	var pings, pongs int
	_, _ = eventbus.Subscribe(bus, eventPing, func(int) { pings++ })
	_, _ = eventbus.Subscribe(bus, eventPong, func(int) { pongs++ })

	eventbus.Emit(bus, eventPing, 1)

	if pings != 1 || pongs != 0 {
		t.Fatalf("pings=%d pongs=%d, want 1,0", pings, pongs)
	}
}
