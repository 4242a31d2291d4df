package event

import (
	"context"
	"fmt"
	"sync"
)

type Registry interface {
	Dispatcher
	Register(eventType string, handlers ...Handler)
}

type dispatcher struct {
	mutex    sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() Registry {
	return &dispatcher{handlers: make(map[string][]Handler)}
}

func (d *dispatcher) Register(eventType string, handlers ...Handler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handlers...)
}

// Dispatch calls handlers synchronously in registration order and stops at the first failure.
func (d *dispatcher) Dispatch(ctx context.Context, events ...Event) error {
	for _, evt := range events {
		d.mutex.RLock()
		handlers := d.handlers[evt.Type()]
		d.mutex.RUnlock()

		for _, handler := range handlers {
			err := handler(ctx, evt)
			if err != nil {
				return fmt.Errorf("failed to handle event %s with id %v: %w", evt.Type(), evt.ID(), err)
			}
		}
	}
	return nil
}
