// Package events fans board updates out to subscribers.
package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/daystram/makyek/board"
)

// EventType represents the type of event
type EventType string

const (
	EventPiecePlaced   EventType = "PIECE_PLACED"
	EventPieceCaptured EventType = "PIECE_CAPTURED"
	EventPiecePromoted EventType = "PIECE_PROMOTED"

	eventTypeAll EventType = "*"
)

// Event carries the board.Move that caused it as Payload.
type Event struct {
	Type    EventType
	BoardID uuid.UUID
	Payload board.Move
}

type Handler func(event Event)

// Publisher delivers events synchronously, in subscription order, specific
// handlers before catch-all ones.
type Publisher struct {
	mu          sync.RWMutex
	subscribers map[EventType][]Handler
}

func NewPublisher() *Publisher {
	return &Publisher{
		subscribers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (p *Publisher) Subscribe(eventType EventType, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers[eventType] = append(p.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for all event types
func (p *Publisher) SubscribeAll(handler Handler) {
	p.Subscribe(eventTypeAll, handler)
}

func (p *Publisher) Publish(event Event) {
	p.mu.RLock()
	handlers := append([]Handler{}, p.subscribers[event.Type]...)
	handlers = append(handlers, p.subscribers[eventTypeAll]...)
	p.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// UpdateHandler publishes every placement of the board identified by boardID,
// followed by a capture and a promotion event when the move did either.
func UpdateHandler(p *Publisher, boardID uuid.UUID) board.UpdateFunc {
	return func(mv board.Move) {
		p.Publish(Event{Type: EventPiecePlaced, BoardID: boardID, Payload: mv})
		if mv.IsCapture {
			p.Publish(Event{Type: EventPieceCaptured, BoardID: boardID, Payload: mv})
		}
		if mv.IsPromote {
			p.Publish(Event{Type: EventPiecePromoted, BoardID: boardID, Payload: mv})
		}
	}
}
