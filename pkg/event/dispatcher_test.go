package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/loopon-client/pkg/event"
)

type pinged struct {
	event.Base
	Value int
}

func (pinged) Type() string { return "pinged" }

type ponged struct {
	event.Base
}

func (ponged) Type() string { return "ponged" }

func TestDispatcher_Dispatch_CallsTypedHandlersInOrder(t *testing.T) {
	d := event.NewDispatcher()

	var got []int
	d.Register("pinged",
		event.NewTypedHandler(func(_ context.Context, e pinged) error {
			got = append(got, e.Value)
			return nil
		}),
		event.NewTypedHandler(func(_ context.Context, e pinged) error {
			got = append(got, e.Value*10)
			return nil
		}),
	)

	err := d.Dispatch(context.Background(), pinged{Base: event.NewBase(), Value: 1}, ponged{Base: event.NewBase()})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 10}, got)
}

func TestDispatcher_Dispatch_ReturnsHandlerError(t *testing.T) {
	d := event.NewDispatcher()
	d.Register("pinged", func(context.Context, event.Event) error {
		return errors.New("unexpected")
	})

	err := d.Dispatch(context.Background(), pinged{Base: event.NewBase()})
	assert.ErrorContains(t, err, "unexpected")
}

func TestNewTypedHandler_RejectsForeignEvent(t *testing.T) {
	h := event.NewTypedHandler(func(context.Context, pinged) error { return nil })

	err := h(context.Background(), ponged{Base: event.NewBase()})
	assert.Error(t, err)
}
