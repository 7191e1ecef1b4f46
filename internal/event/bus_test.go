package event_test

import (
	"sync/atomic"
	"testing"
	"time"

	"fundledger/internal/event"
)

func TestBusSingleSubscriber(t *testing.T) {
	var testType event.Type = "test.event"
	bus := event.NewBus(nil, nil)
	_, subCh := bus.Subscribe(testType)
	bus.Publish(testType, event.New(testType, 999))
	select {
	case evt, ok := <-subCh:
		if !ok {
			t.Fatalf("event channel closed unexpectedly")
		}
		if v, ok := evt.Data.(int); !ok || v != 999 {
			t.Fatalf("did not get expected event, got %v", evt.Data)
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	var testType event.Type = "test.event"
	bus := event.NewBus(nil, nil)
	_, sub1Ch := bus.Subscribe(testType)
	_, sub2Ch := bus.Subscribe(testType)
	bus.Publish(testType, event.New(testType, 999))
	for _, ch := range []<-chan event.Event{sub1Ch, sub2Ch} {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed unexpectedly")
			}
			if v, ok := evt.Data.(int); !ok || v != 999 {
				t.Fatalf("did not get expected event, got %v", evt.Data)
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("timeout waiting for event")
		}
	}
}

func TestBusTypeIsolation(t *testing.T) {
	bus := event.NewBus(nil, nil)
	_, subCh := bus.Subscribe("test.event.a")
	bus.Publish("test.event.b", event.New("test.event.b", 1))
	select {
	case evt := <-subCh:
		t.Fatalf("received event for foreign type: %+v", evt)
	default:
	}
}

func TestBusSubscribeFunc(t *testing.T) {
	var testType event.Type = "test.event"
	var calls atomic.Int64
	done := make(chan struct{})
	bus := event.NewBus(nil, nil)
	bus.SubscribeFunc(testType, func(evt event.Event) {
		calls.Add(1)
		close(done)
	})
	bus.Publish(testType, event.New(testType, 1))
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for handler")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 handler call, got %d", calls.Load())
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	var testType event.Type = "test.event"
	bus := event.NewBus(nil, nil)
	subID, subCh := bus.Subscribe(testType)
	bus.Unsubscribe(testType, subID)
	select {
	case _, ok := <-subCh:
		if ok {
			t.Fatalf("expected closed channel, got event")
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}
	// publishing to a type with no subscribers must not panic
	bus.Publish(testType, event.New(testType, 1))
}

// TestBusUnsubscribeDuringBlockedPublish races teardown against a
// publisher stuck on a full subscriber buffer. Unsubscribe must wait for
// the in-flight send instead of closing the channel underneath it, and
// both calls must return once the consumer drains.
func TestBusUnsubscribeDuringBlockedPublish(t *testing.T) {
	var testType event.Type = "test.event"
	bus := event.NewBus(nil, nil)
	subID, subCh := bus.Subscribe(testType)

	for i := 0; i < event.SubscriberQueueSize; i++ {
		bus.Publish(testType, event.New(testType, i))
	}

	published := make(chan struct{})
	go func() {
		// blocks until the consumer drains a slot
		bus.Publish(testType, event.New(testType, event.SubscriberQueueSize))
		close(published)
	}()

	unsubscribed := make(chan struct{})
	go func() {
		bus.Unsubscribe(testType, subID)
		close(unsubscribed)
	}()

	go func() {
		for range subCh {
		}
	}()

	for _, done := range []chan struct{}{published, unsubscribed} {
		select {
		case <-done:
		case <-time.After(1 * time.Second):
			t.Fatalf("publish/unsubscribe race did not resolve")
		}
	}
}

func TestBusStopClosesAllSubscribers(t *testing.T) {
	bus := event.NewBus(nil, nil)
	_, sub1Ch := bus.Subscribe("test.event.a")
	_, sub2Ch := bus.Subscribe("test.event.b")
	bus.Stop()
	for _, ch := range []<-chan event.Event{sub1Ch, sub2Ch} {
		select {
		case _, ok := <-ch:
			if ok {
				t.Fatalf("expected closed channel, got event")
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("timeout waiting for channel close")
		}
	}
}
