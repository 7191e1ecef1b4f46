package event

import (
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SubscriberQueueSize is the buffer of each subscriber channel. Publish
// blocks when a subscriber's buffer is full, so slow consumers apply
// backpressure instead of losing notifications.
const SubscriberQueueSize = 20

// Type identifies a kind of ledger notification.
type Type string

// SubscriberID identifies a single subscription for Unsubscribe.
type SubscriberID int

// HandlerFunc consumes events delivered via SubscribeFunc.
type HandlerFunc func(Event)

// Event is a ledger notification with its payload. Data holds one of the
// payload structs from events.go.
type Event struct {
	Type      Type
	Timestamp time.Time
	Data      any
}

// New builds an event of the given type stamped with the current time.
func New(eventType Type, data any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// subscriber wraps a delivery channel with a closed flag so a send
// racing Unsubscribe/Stop cannot hit a closed channel. deliver holds the
// read lock for the duration of the send; close takes the write lock and
// therefore waits for in-flight sends before closing the channel.
type subscriber struct {
	mu     sync.RWMutex
	ch     chan Event
	closed bool
}

func newSubscriber(buffer int) *subscriber {
	return &subscriber{ch: make(chan Event, buffer)}
}

func (s *subscriber) deliver(evt Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		// subscription already torn down; drop the event
		return
	}
	s.ch <- evt
}

func (s *subscriber) close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	s.mu.Unlock()
}

// Bus is an in-process publish/subscribe bus carrying ledger
// notifications. Delivery is synchronous: Publish returns after the event
// has been handed to every subscriber channel, so a mutation and its
// notification are ordered.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Type]map[SubscriberID]*subscriber
	lastSubID   SubscriberID
	metrics     *busMetrics
	logger      *slog.Logger
}

// NewBus creates a Bus. The prometheus registerer and logger may both be
// nil, in which case metrics and delivery logging are disabled.
func NewBus(promRegistry prometheus.Registerer, logger *slog.Logger) *Bus {
	b := &Bus{
		subscribers: make(map[Type]map[SubscriberID]*subscriber),
		logger:      logger,
	}
	if promRegistry != nil {
		b.initMetrics(promRegistry)
	}
	return b
}

// Subscribe registers a consumer for events of a particular type and
// returns the subscription id together with the delivery channel. The
// channel is closed by Unsubscribe or Stop.
func (b *Bus) Subscribe(eventType Type) (SubscriberID, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subID := b.lastSubID + 1
	b.lastSubID = subID
	if _, ok := b.subscribers[eventType]; !ok {
		b.subscribers[eventType] = make(map[SubscriberID]*subscriber)
	}
	sub := newSubscriber(SubscriberQueueSize)
	b.subscribers[eventType][subID] = sub
	if b.metrics != nil {
		b.metrics.subscribers.WithLabelValues(string(eventType)).Inc()
	}
	return subID, sub.ch
}

// SubscribeFunc registers a callback for events of a particular type. The
// callback runs on a dedicated goroutine that exits when the subscription
// is removed.
func (b *Bus) SubscribeFunc(eventType Type, handlerFunc HandlerFunc) SubscriberID {
	subID, evtCh := b.Subscribe(eventType)
	go func() {
		for evt := range evtCh {
			handlerFunc(evt)
		}
	}()
	return subID
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Bus) Unsubscribe(eventType Type, subID SubscriberID) {
	b.mu.Lock()
	var sub *subscriber
	if subs, ok := b.subscribers[eventType]; ok {
		if s, ok2 := subs[subID]; ok2 {
			sub = s
			delete(subs, subID)
			if len(subs) == 0 {
				delete(b.subscribers, eventType)
			}
			if b.metrics != nil {
				b.metrics.subscribers.WithLabelValues(string(eventType)).Dec()
			}
		}
	}
	b.mu.Unlock()
	if sub != nil {
		sub.close()
	}
}

// Publish delivers an event to every subscriber of its type.
func (b *Bus) Publish(eventType Type, evt Event) {
	// Gather subscribers under the read lock, deliver outside it. Each
	// subscriber's own closed-guard makes the send safe against a
	// concurrent Unsubscribe or Stop.
	b.mu.RLock()
	subs := b.subscribers[eventType]
	subList := make([]*subscriber, 0, len(subs))
	for _, sub := range subs {
		subList = append(subList, sub)
	}
	b.mu.RUnlock()
	for _, sub := range subList {
		sub.deliver(evt)
	}
	if b.metrics != nil {
		b.metrics.published.WithLabelValues(string(eventType)).Inc()
	}
	if b.logger != nil {
		b.logger.Debug("event published",
			slog.String("type", string(eventType)),
			slog.Int("subscribers", len(subList)))
	}
}

// Stop closes all subscriber channels and clears the subscriptions so
// SubscribeFunc goroutines exit cleanly during shutdown. The bus can be
// reused afterwards.
func (b *Bus) Stop() {
	b.mu.Lock()
	subsCopy := b.subscribers
	b.subscribers = make(map[Type]map[SubscriberID]*subscriber)
	b.mu.Unlock()
	for _, subs := range subsCopy {
		for _, sub := range subs {
			sub.close()
		}
	}
	if b.metrics != nil {
		b.metrics.subscribers.Reset()
	}
}

type busMetrics struct {
	published   *prometheus.CounterVec
	subscribers *prometheus.GaugeVec
}

func (b *Bus) initMetrics(promRegistry prometheus.Registerer) {
	m := &busMetrics{
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_events_published_total",
				Help: "Total ledger notifications published, by event type",
			},
			[]string{"type"},
		),
		subscribers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_event_subscribers",
				Help: "Current event subscribers, by event type",
			},
			[]string{"type"},
		),
	}
	promRegistry.MustRegister(m.published, m.subscribers)
	b.metrics = m
}
