package route_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote/mock"
	"github.com/klwxsrx/loopon-client/internal/session/app/route"
	"github.com/klwxsrx/loopon-client/internal/session/app/session"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	"github.com/klwxsrx/loopon-client/internal/session/domain/stub"
	"github.com/klwxsrx/loopon-client/pkg/event"
	"github.com/klwxsrx/loopon-client/pkg/log"
	"github.com/klwxsrx/loopon-client/pkg/worker"
)

type recorder struct {
	mutex         sync.Mutex
	routes        []domain.Route
	homeRefreshes int
}

func (r *recorder) onRouteResolved(_ context.Context, evt domain.EventRouteResolved) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.routes = append(r.routes, evt.Route)
	return nil
}

func (r *recorder) onHomeRefreshRequested(context.Context, domain.EventHomeRefreshRequested) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.homeRefreshes++
	return nil
}

type fixture struct {
	tokens   *stub.TokenStore
	prefs    *stub.Preferences
	users    *mock.UserAPI
	journeys *mock.JourneyAPI
	state    *session.State
	resolver *route.Resolver
	events   *recorder
}

func newFixture(t *testing.T, token *domain.Token) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		tokens:   stub.NewTokenStore(token),
		prefs:    stub.NewPreferences(),
		users:    mock.NewUserAPI(ctrl),
		journeys: mock.NewJourneyAPI(ctrl),
		events:   &recorder{},
	}

	dispatcher := event.NewDispatcher()
	f.state = session.NewState(f.tokens, f.prefs, f.users, dispatcher, worker.NewPoolStub(), log.NewStub())
	f.resolver = route.NewResolver(f.state, f.journeys, dispatcher, log.NewStub())

	dispatcher.Register(domain.EventTypeTokenStateChanged, event.NewTypedHandler(f.resolver.HandleTokenStateChanged))
	dispatcher.Register(domain.EventTypeRouteResolved, event.NewTypedHandler(f.events.onRouteResolved))
	dispatcher.Register(domain.EventTypeHomeRefreshRequested, event.NewTypedHandler(f.events.onHomeRefreshRequested))
	return f
}

func tokenPtr(value string) *domain.Token {
	token := domain.Token(value)
	return &token
}

func (f fixture) storedToken(t *testing.T) *domain.Token {
	t.Helper()
	token, err := f.tokens.Load(context.Background())
	require.NoError(t, err)
	return token
}

func TestResolver_Route_IsLoading_BeforeResolution(t *testing.T) {
	f := newFixture(t, tokenPtr("stored"))

	assert.Equal(t, domain.RouteLoading, f.resolver.Route())
	assert.False(t, f.resolver.HasCurrentJourney())
}

func TestResolver_Resolve_OnRelaunch(t *testing.T) {
	tests := []struct {
		name     string
		token    *domain.Token
		checkErr error
		expect   func(t *testing.T, f fixture, result domain.Route)
	}{
		{
			name:  "login_without_request_when_no_token",
			token: nil,
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteLogin, result)
				assert.Equal(t, []domain.Route{domain.RouteLogin}, f.events.routes)
			},
		},
		{
			name:  "main_tabs_when_journey_exists",
			token: tokenPtr("stored"),
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteMainTabs, result)
				assert.True(t, f.resolver.HasCurrentJourney())
				assert.True(t, f.state.IsOnboardingCompleted(context.Background()))
				assert.Equal(t, 1, f.events.homeRefreshes)
				assert.NotNil(t, f.storedToken(t))
			},
		},
		{
			name:     "login_with_deleted_token_when_no_current_journey",
			token:    tokenPtr("stale"),
			checkErr: remote.ErrNoCurrentJourney,
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteLogin, result)
				assert.Nil(t, f.storedToken(t))
				assert.Equal(t, []domain.Route{domain.RouteLogin}, f.events.routes)
			},
		},
		{
			name:     "login_with_deleted_token_when_server_failure",
			token:    tokenPtr("stored"),
			checkErr: remote.ErrServerFailure,
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteLogin, result)
				assert.Nil(t, f.storedToken(t))
			},
		},
		{
			name:     "login_with_deleted_token_when_unauthorized",
			token:    tokenPtr("stored"),
			checkErr: remote.ErrUnauthorized,
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteLogin, result)
				assert.Nil(t, f.storedToken(t))
			},
		},
		{
			name:     "loading_with_kept_token_when_network_error",
			token:    tokenPtr("stored"),
			checkErr: internalhttp.ErrNetwork,
			expect: func(t *testing.T, f fixture, result domain.Route) {
				assert.Equal(t, domain.RouteLoading, result)
				assert.NotNil(t, f.storedToken(t))
				assert.Empty(t, f.events.routes)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.token)
			if tt.token != nil {
				f.journeys.EXPECT().CheckCurrent(gomock.Any()).Return(tt.checkErr)
			}

			result := f.resolver.Resolve(context.Background(), false)
			tt.expect(t, f, result)
			assert.Equal(t, result, f.resolver.Route())
		})
	}
}

func TestResolver_FreshLogin_ShowsOnboarding_WhenNoCurrentJourney(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.journeys.EXPECT().CheckCurrent(gomock.Any()).Return(remote.ErrNoCurrentJourney)
	f.users.EXPECT().GetCurrent(gomock.Any()).Return(domain.User{Nickname: "looper"}, nil)
	require.NoError(t, f.prefs.Set(ctx, domain.FlagOnboardingCompleted, true))

	require.NoError(t, f.tokens.Save(ctx, "fresh"))
	f.state.MarkLoggedIn(ctx)

	assert.Equal(t, domain.RouteOnboarding, f.resolver.Route())
	assert.Equal(t, domain.Token("fresh"), *f.storedToken(t))
	assert.False(t, f.state.IsOnboardingCompleted(ctx))
	assert.False(t, f.resolver.HasCurrentJourney())
}

func TestResolver_FreshLogin_ShowsMainTabs_WhenJourneyExists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.journeys.EXPECT().CheckCurrent(gomock.Any()).Return(nil)
	f.users.EXPECT().GetCurrent(gomock.Any()).Return(domain.User{Nickname: "looper"}, nil)

	require.NoError(t, f.tokens.Save(ctx, "fresh"))
	f.state.MarkLoggedIn(ctx)

	assert.Equal(t, domain.RouteMainTabs, f.resolver.Route())
	assert.Equal(t, []domain.Route{domain.RouteMainTabs}, f.events.routes)
}

func TestResolver_Logout_ReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, tokenPtr("stored"))

	f.journeys.EXPECT().CheckCurrent(gomock.Any()).Return(nil)
	require.Equal(t, domain.RouteMainTabs, f.resolver.Resolve(ctx, false))

	require.NoError(t, f.state.Logout(ctx))

	assert.Equal(t, domain.RouteLogin, f.resolver.Route())
	assert.False(t, f.resolver.HasCurrentJourney())
	assert.Equal(t, []domain.Route{domain.RouteMainTabs, domain.RouteLogin}, f.events.routes)
}

func TestResolver_Resolve_DeduplicatesInFlightResolution(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, tokenPtr("stored"))

	started := make(chan struct{})
	release := make(chan struct{})
	f.journeys.EXPECT().CheckCurrent(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(started)
		<-release
		return nil
	}).Times(1)

	result := make(chan domain.Route)
	go func() {
		result <- f.resolver.Resolve(ctx, false)
	}()

	<-started
	assert.Equal(t, domain.RouteLoading, f.resolver.Resolve(ctx, false))

	close(release)
	assert.Equal(t, domain.RouteMainTabs, <-result)
}

func TestResolver_Resolve_Forced_SupersedesInFlightResolution(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, tokenPtr("stored"))

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		f.journeys.EXPECT().CheckCurrent(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(started)
			<-release
			return errors.New("late failure")
		}),
		f.journeys.EXPECT().CheckCurrent(gomock.Any()).Return(nil),
	)

	result := make(chan domain.Route)
	go func() {
		result <- f.resolver.Resolve(ctx, false)
	}()

	<-started
	assert.Equal(t, domain.RouteMainTabs, f.resolver.Resolve(ctx, true))

	close(release)
	assert.Equal(t, domain.RouteMainTabs, <-result)
	assert.Equal(t, domain.RouteMainTabs, f.resolver.Route())
}
