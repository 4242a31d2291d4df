package domain

import "github.com/klwxsrx/loopon-client/pkg/event"

const (
	EventTypeTokenStateChanged    = "session_token_state_changed"
	EventTypeRouteResolved        = "session_route_resolved"
	EventTypeHomeRefreshRequested = "session_home_refresh_requested"
)

type EventTokenStateChanged struct {
	event.Base
	HasValidToken bool
}

func (e EventTokenStateChanged) Type() string {
	return EventTypeTokenStateChanged
}

type EventRouteResolved struct {
	event.Base
	Route Route
}

func (e EventRouteResolved) Type() string {
	return EventTypeRouteResolved
}

type EventHomeRefreshRequested struct {
	event.Base
}

func (e EventHomeRefreshRequested) Type() string {
	return EventTypeHomeRefreshRequested
}
