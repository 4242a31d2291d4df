package route

import (
	"context"
	"errors"
	"sync"

	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/event"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

type Session interface {
	HasValidToken(ctx context.Context) bool
	IsFreshLogin() bool
	Logout(ctx context.Context) error
	CompleteOnboarding(ctx context.Context) error
	ResetOnboarding(ctx context.Context) error
}

// Resolver chooses the top-level screen. At most one unforced resolution runs at a time,
// the outcome stays RouteLoading until the first resolution settles.
type Resolver struct {
	session    Session
	journeys   remote.JourneyAPI
	dispatcher event.Dispatcher
	logger     log.Logger

	mutex             sync.Mutex
	route             domain.Route
	inFlight          bool
	generation        uint64
	hasCurrentJourney bool
}

func NewResolver(
	session Session,
	journeys remote.JourneyAPI,
	dispatcher event.Dispatcher,
	logger log.Logger,
) *Resolver {
	return &Resolver{
		session:    session,
		journeys:   journeys,
		dispatcher: dispatcher,
		logger:     logger,
		route:      domain.RouteLoading,
	}
}

func (r *Resolver) Route() domain.Route {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.route
}

func (r *Resolver) HasCurrentJourney() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.hasCurrentJourney
}

func (r *Resolver) HandleTokenStateChanged(ctx context.Context, _ domain.EventTokenStateChanged) error {
	r.Resolve(ctx, false)
	return nil
}

func (r *Resolver) Resolve(ctx context.Context, force bool) domain.Route {
	if !r.session.HasValidToken(ctx) {
		r.mutex.Lock()
		r.generation++
		r.inFlight = false
		r.hasCurrentJourney = false
		r.mutex.Unlock()

		return r.settle(ctx, domain.RouteLogin)
	}

	r.mutex.Lock()
	if r.inFlight && !force {
		current := r.route
		r.mutex.Unlock()
		return current
	}
	r.inFlight = true
	r.generation++
	generation := r.generation
	r.mutex.Unlock()

	err := r.journeys.CheckCurrent(ctx)

	r.mutex.Lock()
	if r.generation != generation {
		current := r.route
		r.mutex.Unlock()
		return current
	}
	r.inFlight = false
	r.mutex.Unlock()

	return r.apply(ctx, err)
}

func (r *Resolver) apply(ctx context.Context, checkErr error) domain.Route {
	switch {
	case checkErr == nil:
		r.setHasCurrentJourney(true)
		if err := r.session.CompleteOnboarding(ctx); err != nil {
			r.logger.WithError(err).Error(ctx, "failed to mark onboarding completed")
		}
		r.dispatch(ctx, domain.EventHomeRefreshRequested{Base: event.NewBase()})
		return r.settle(ctx, domain.RouteMainTabs)
	case errors.Is(checkErr, remote.ErrUnauthorized), errors.Is(checkErr, remote.ErrServerFailure):
		r.logger.WithError(checkErr).Warn(ctx, "current journey check failed, logging out")
		return r.logout(ctx)
	case errors.Is(checkErr, remote.ErrNoCurrentJourney):
		return r.applyNoCurrentJourney(ctx)
	default:
		r.logger.WithError(checkErr).Warn(ctx, "current journey check failed, route is not settled")
		return r.settle(ctx, domain.RouteLoading)
	}
}

// applyNoCurrentJourney: the backend answers 404 both for a new account without a journey
// and for a relaunch with an expired token. A fresh login means the first case.
func (r *Resolver) applyNoCurrentJourney(ctx context.Context) domain.Route {
	if !r.session.IsFreshLogin() {
		r.logger.Info(ctx, "no current journey after relaunch, logging out")
		return r.logout(ctx)
	}

	r.setHasCurrentJourney(false)
	if err := r.session.ResetOnboarding(ctx); err != nil {
		r.logger.WithError(err).Error(ctx, "failed to reset onboarding")
	}
	return r.settle(ctx, domain.RouteOnboarding)
}

func (r *Resolver) logout(ctx context.Context) domain.Route {
	if err := r.session.Logout(ctx); err != nil {
		r.logger.WithError(err).Error(ctx, "failed to logout")
	}

	r.setHasCurrentJourney(false)
	return r.settle(ctx, domain.RouteLogin)
}

func (r *Resolver) setHasCurrentJourney(value bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.hasCurrentJourney = value
}

func (r *Resolver) settle(ctx context.Context, route domain.Route) domain.Route {
	r.mutex.Lock()
	changed := r.route != route
	r.route = route
	r.mutex.Unlock()

	if changed {
		r.logger.WithField("route", route.String()).Info(ctx, "entry route resolved")
		r.dispatch(ctx, domain.EventRouteResolved{Base: event.NewBase(), Route: route})
	}
	return route
}

func (r *Resolver) dispatch(ctx context.Context, evt event.Event) {
	if err := r.dispatcher.Dispatch(ctx, evt); err != nil {
		r.logger.WithError(err).Error(ctx, "failed to dispatch route event")
	}
}
