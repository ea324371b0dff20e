// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Shot lifecycle event types
const (
	ShotLaunched Type = "shot_launched"
	ApexReached  Type = "apex_reached"
	BasketMade   Type = "basket_made"
	BallLanded   Type = "ball_landed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// Bus manages event subscriptions and synchronous dispatching.
// Handlers run on the publisher's goroutine in subscription order.
type Bus struct {
	handlers map[Type][]subscription
	nextID   int
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe registers a handler for a specific event type and returns
// an id for Unsubscribe.
func (b *Bus) Subscribe(eventType Type, handler Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{
		id:      b.nextID,
		handler: handler,
	})
	return b.nextID
}

// Unsubscribe removes the handler registered under id for eventType.
func (b *Bus) Unsubscribe(eventType Type, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, sub := range subs {
		sub.handler(event)
	}
}

// Specific event implementations

// ShotEvent carries the initial conditions of a throw.
type ShotEvent struct {
	BaseEvent
	Speed float64 // m/s
	Angle float64 // radians
}

// NewShotEvent creates a new shot event
func NewShotEvent(source interface{}, speed, angle float64) *ShotEvent {
	return &ShotEvent{
		BaseEvent: BaseEvent{
			EventType: ShotLaunched,
			Source:    source,
		},
		Speed: speed,
		Angle: angle,
	}
}

// ApexEvent marks the highest point of the arc.
type ApexEvent struct {
	BaseEvent
	Time   float64 // seconds after release
	Height float64 // meters
}

// NewApexEvent creates a new apex event
func NewApexEvent(source interface{}, time, height float64) *ApexEvent {
	return &ApexEvent{
		BaseEvent: BaseEvent{
			EventType: ApexReached,
			Source:    source,
		},
		Time:   time,
		Height: height,
	}
}

// HitEvent reports the closest approach to the basket.
type HitEvent struct {
	BaseEvent
	Made     bool
	Distance float64 // meters at closest approach
	Time     float64 // seconds at closest approach
}

// NewHitEvent creates a new hit event; the type is BasketMade for a
// made shot and BallLanded otherwise.
func NewHitEvent(source interface{}, made bool, distance, time float64) *HitEvent {
	eventType := BallLanded
	if made {
		eventType = BasketMade
	}
	return &HitEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Made:     made,
		Distance: distance,
		Time:     time,
	}
}
