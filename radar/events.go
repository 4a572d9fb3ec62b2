// radar/events.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/avionix/radarview/log"
)

// EventStream provides a basic pub/sub interface over the widget's
// outbound change notifications: the embedding shell subscribes and
// receives, in posting order, the events produced by property writes and
// object mutations. Delivery is fire-and-forget; events posted before a
// subscription was created are never reported to it.
type EventStream struct {
	mu            sync.Mutex
	events        []Event
	subscriptions map[*EventsSubscription]interface{}
	lg            *log.Logger
}

type EventsSubscription struct {
	stream *EventStream
	// offset is the offset in the EventStream events array up to which
	// the subscriber has consumed events so far.
	offset int
	source string
}

func (e *EventsSubscription) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", e.offset),
		slog.String("source", e.source))
}

func NewEventStream(lg *log.Logger) *EventStream {
	return &EventStream{
		subscriptions: make(map[*EventsSubscription]interface{}),
		lg:            lg,
	}
}

// Subscribe registers a new subscriber to the stream.
func (e *EventStream) Subscribe() *EventsSubscription {
	// Record the subscriber's callsite, so that we can more easily debug
	// subscribers that aren't consuming events.
	_, fn, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", fn, line)

	e.mu.Lock()
	defer e.mu.Unlock()

	sub := &EventsSubscription{
		stream: e,
		offset: len(e.events),
		source: source,
	}
	e.subscriptions[sub] = nil
	return sub
}

// Unsubscribe removes a subscriber from the subscriber list
func (e *EventsSubscription) Unsubscribe() {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to unsubscribe invalid subscription: %+v", e)
	}
	delete(e.stream.subscriptions, e)
	e.stream = nil
}

// Post adds an event to the event stream.
func (e *EventStream) Post(event Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lg.Debug("posted event", slog.Any("event", event))

	// Ignore the event if no one's paying attention.
	if len(e.subscriptions) > 0 {
		e.events = append(e.events, event)
	}
}

// Get returns all of the events from the stream since the last time Get
// was called for the given subscription.
func (e *EventsSubscription) Get() []Event {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to get with unregistered subscription: %+v", e)
		return nil
	}

	events := slices.Clone(e.stream.events[e.offset:])
	e.offset = len(e.stream.events)

	e.stream.compact()
	return events
}

// compact reclaims storage for events that all subscribers have seen so
// that the stream's memory usage doesn't grow without bound. Called with
// the stream mutex held.
func (e *EventStream) compact() {
	minOffset := len(e.events)
	for sub := range e.subscriptions {
		if sub.offset < minOffset {
			minOffset = sub.offset
		}
	}

	if minOffset > cap(e.events)/2 {
		n := len(e.events) - minOffset

		copy(e.events, e.events[minOffset:])
		e.events = e.events[:n]

		for sub := range e.subscriptions {
			sub.offset -= minOffset
		}
	}
}

// implements slog.LogValuer
func (e *EventStream) LogValue() slog.Value {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := []slog.Attr{slog.Int("len", len(e.events)), slog.Int("cap", cap(e.events)),
		slog.Int("subscriptions", len(e.subscriptions))}
	if len(e.events) > 0 {
		items = append(items, slog.Any("last_element", e.events[len(e.events)-1]))
	}
	return slog.GroupValue(items...)
}

///////////////////////////////////////////////////////////////////////////

type EventType int

const (
	ViewPropertyChangedEvent EventType = iota
	ObjectAddedEvent
	ObjectRemovedEvent

	NumEventTypes
)

func (t EventType) String() string {
	return [...]string{"ViewPropertyChanged", "ObjectAdded", "ObjectRemoved"}[t]
}

type Event struct {
	Type     EventType
	Property Property // ViewPropertyChangedEvent only
	Value    Value    // ViewPropertyChangedEvent only
	// Identifier of the object concerned; for ObjectRemovedEvent an
	// empty identifier means all objects were removed.
	Identifier string
}

func (e *Event) String() string {
	switch e.Type {
	case ViewPropertyChangedEvent:
		return fmt.Sprintf("%s: property %s value %s", e.Type, e.Property, e.Value)
	default:
		return fmt.Sprintf("%s: identifier %q", e.Type, e.Identifier)
	}
}

func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("type", e.Type.String())}
	if e.Type == ViewPropertyChangedEvent {
		attrs = append(attrs, slog.String("property", e.Property.String()),
			slog.Any("value", e.Value))
	}
	if e.Identifier != "" {
		attrs = append(attrs, slog.String("identifier", e.Identifier))
	}
	return slog.GroupValue(attrs...)
}
