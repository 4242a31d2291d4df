package home_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/loopon-client/internal/session/app/home"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote/mock"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/pkg/event"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

func TestRefresher_HandleHomeRefreshRequested(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(journeys *mock.JourneyAPI)
		expect  func(t *testing.T, journey domain.Journey, ok bool)
	}{
		{
			name: "stores_current_journey",
			prepare: func(journeys *mock.JourneyAPI) {
				journeys.EXPECT().GetCurrent(gomock.Any()).Return(domain.Journey{ID: 42}, nil).Times(2)
			},
			expect: func(t *testing.T, journey domain.Journey, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, domain.Journey{ID: 42}, journey)
			},
		},
		{
			name: "keeps_previous_journey_on_failure",
			prepare: func(journeys *mock.JourneyAPI) {
				gomock.InOrder(
					journeys.EXPECT().GetCurrent(gomock.Any()).Return(domain.Journey{ID: 7}, nil),
					journeys.EXPECT().GetCurrent(gomock.Any()).Return(domain.Journey{}, errors.New("timeout")),
				)
			},
			expect: func(t *testing.T, journey domain.Journey, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, domain.Journey{ID: 7}, journey)
			},
		},
		{
			name: "nothing_when_never_loaded",
			prepare: func(journeys *mock.JourneyAPI) {
				journeys.EXPECT().GetCurrent(gomock.Any()).Return(domain.Journey{}, errors.New("timeout")).Times(2)
			},
			expect: func(t *testing.T, _ domain.Journey, ok bool) {
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journeys := mock.NewJourneyAPI(gomock.NewController(t))
			tt.prepare(journeys)

			refresher := home.NewRefresher(journeys, log.NewStub())
			dispatcher := event.NewDispatcher()
			dispatcher.Register(domain.EventTypeHomeRefreshRequested, event.NewTypedHandler(refresher.HandleHomeRefreshRequested))

			for i := 0; i < 2; i++ {
				require.NoError(t, dispatcher.Dispatch(context.Background(), domain.EventHomeRefreshRequested{Base: event.NewBase()}))
			}

			journey, ok := refresher.CurrentJourney()
			tt.expect(t, journey, ok)
		})
	}
}
