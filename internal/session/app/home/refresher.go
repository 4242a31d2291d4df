package home

import (
	"context"
	"sync"

	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

// Refresher reloads the current journey shown on the home tab whenever the route resolver asks for it.
type Refresher struct {
	journeys remote.JourneyAPI
	logger   log.Logger

	mutex   sync.Mutex
	journey *domain.Journey
}

func NewRefresher(journeys remote.JourneyAPI, logger log.Logger) *Refresher {
	return &Refresher{
		journeys: journeys,
		logger:   logger,
	}
}

// CurrentJourney returns the journey loaded by the last successful refresh.
func (r *Refresher) CurrentJourney() (domain.Journey, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.journey == nil {
		return domain.Journey{}, false
	}
	return *r.journey, true
}

// HandleHomeRefreshRequested keeps the previous journey on failure, the route stays settled.
func (r *Refresher) HandleHomeRefreshRequested(ctx context.Context, _ domain.EventHomeRefreshRequested) error {
	journey, err := r.journeys.GetCurrent(ctx)
	if err != nil {
		r.logger.WithError(err).Warn(ctx, "failed to refresh current journey")
		return nil
	}

	r.mutex.Lock()
	r.journey = &journey
	r.mutex.Unlock()

	r.logger.WithField("journeyId", journey.ID).Debug(ctx, "current journey refreshed")
	return nil
}
