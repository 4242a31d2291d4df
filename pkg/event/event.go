package event

import (
	"context"

	"github.com/google/uuid"
)

type Event interface {
	ID() uuid.UUID
	Type() string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, events ...Event) error
}

// Base supplies the identity part of Event to concrete events.
type Base struct {
	EventID uuid.UUID
}

func NewBase() Base {
	return Base{EventID: uuid.New()}
}

func (b Base) ID() uuid.UUID {
	return b.EventID
}
