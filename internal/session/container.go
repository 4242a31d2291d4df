package session

import (
	"context"

	"github.com/99designs/keyring"

	"github.com/klwxsrx/loopon-client/data/sql/preference"
	commoncmd "github.com/klwxsrx/loopon-client/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/app/auth"
	"github.com/klwxsrx/loopon-client/internal/session/app/home"
	"github.com/klwxsrx/loopon-client/internal/session/app/remote"
	"github.com/klwxsrx/loopon-client/internal/session/app/route"
	appsession "github.com/klwxsrx/loopon-client/internal/session/app/session"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
	sessionhttp "github.com/klwxsrx/loopon-client/internal/session/infra/http"
	sessionkeyring "github.com/klwxsrx/loopon-client/internal/session/infra/keyring"
	sessionsql "github.com/klwxsrx/loopon-client/internal/session/infra/sql"
	pkgevent "github.com/klwxsrx/loopon-client/pkg/event"
	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
	pkglazy "github.com/klwxsrx/loopon-client/pkg/lazy"
	pkglog "github.com/klwxsrx/loopon-client/pkg/log"
	pkgsql "github.com/klwxsrx/loopon-client/pkg/sql"
	pkgworker "github.com/klwxsrx/loopon-client/pkg/worker"
)

type DependencyContainer struct {
	TokenStore    pkglazy.Loader[domain.TokenStore]
	Preferences   pkglazy.Loader[domain.Preferences]
	UserAPI       pkglazy.Loader[remote.UserAPI]
	JourneyAPI    pkglazy.Loader[remote.JourneyAPI]
	State         pkglazy.Loader[*appsession.State]
	RouteResolver pkglazy.Loader[*route.Resolver]
	HomeRefresher pkglazy.Loader[*home.Refresher]
	AuthService   pkglazy.Loader[*auth.Service]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	ring pkglazy.Loader[keyring.Keyring],
	httpClients pkglazy.Loader[*commonhttp.ClientFactory],
	httpRetry pkglazy.Loader[commonhttp.RequestClientOption],
	dispatcher pkglazy.Loader[pkgevent.Registry],
	pool pkglazy.Loader[pkgworker.Pool],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	tokenStore := pkglazy.New(func() (domain.TokenStore, error) {
		return sessionkeyring.NewTokenStore(ring), nil
	})
	preferences := preferencesProvider(db, dbMigrations)

	requestClient := requestClientProvider(httpClients, httpRetry, tokenStore, logger)
	authAPI := pkglazy.New(func() (remote.AuthAPI, error) {
		return sessionhttp.NewAuthAPI(requestClient.MustLoad()), nil
	})
	userAPI := pkglazy.New(func() (remote.UserAPI, error) {
		return sessionhttp.NewUserAPI(requestClient.MustLoad()), nil
	})
	journeyAPI := pkglazy.New(func() (remote.JourneyAPI, error) {
		return sessionhttp.NewJourneyAPI(requestClient.MustLoad()), nil
	})

	state := stateProvider(tokenStore, preferences, userAPI, dispatcher, pool, logger)
	resolver := pkglazy.New(func() (*route.Resolver, error) {
		return route.NewResolver(
			state.MustLoad(),
			journeyAPI.MustLoad(),
			dispatcher.MustLoad(),
			logger.MustLoad(),
		), nil
	})

	return &DependencyContainer{
		TokenStore:    tokenStore,
		Preferences:   preferences,
		UserAPI:       userAPI,
		JourneyAPI:    journeyAPI,
		State:         state,
		RouteResolver: resolver,
		HomeRefresher: pkglazy.New(func() (*home.Refresher, error) {
			return home.NewRefresher(journeyAPI.MustLoad(), logger.MustLoad()), nil
		}),
		AuthService: pkglazy.New(func() (*auth.Service, error) {
			return auth.NewService(
				authAPI.MustLoad(),
				tokenStore.MustLoad(),
				state.MustLoad(),
				logger.MustLoad(),
			), nil
		}),
	}
}

// MustRegisterEventHandlers subscribes the route resolver to token changes and the home
// refresher to refresh requests. Handlers are loaded on the first event so the session and
// the resolver can depend on the same dispatcher.
func (c *DependencyContainer) MustRegisterEventHandlers(registry pkgevent.Registry) {
	registry.Register(
		domain.EventTypeTokenStateChanged,
		pkgevent.NewTypedHandler(func(ctx context.Context, evt domain.EventTokenStateChanged) error {
			return c.RouteResolver.MustLoad().HandleTokenStateChanged(ctx, evt)
		}),
	)
	registry.Register(
		domain.EventTypeHomeRefreshRequested,
		pkgevent.NewTypedHandler(func(ctx context.Context, evt domain.EventHomeRefreshRequested) error {
			return c.HomeRefresher.MustLoad().HandleHomeRefreshRequested(ctx, evt)
		}),
	)
}

func preferencesProvider(
	db pkglazy.Loader[pkgsql.Database],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
) pkglazy.Loader[domain.Preferences] {
	return pkglazy.New(func() (domain.Preferences, error) {
		dbMigrations.MustLoad().MustRegister(preference.Migrations)
		return sessionsql.NewPreferences(db.MustLoad()), nil
	})
}

func requestClientProvider(
	httpClients pkglazy.Loader[*commonhttp.ClientFactory],
	httpRetry pkglazy.Loader[commonhttp.RequestClientOption],
	tokenStore pkglazy.Loader[domain.TokenStore],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[*commonhttp.RequestClient] {
	return pkglazy.New(func() (*commonhttp.RequestClient, error) {
		client := httpClients.MustLoad().MustInitClient(
			commonhttp.DestinationLooponAPI,
			pkghttp.WithBearerAuth(sessionhttp.BearerTokenProvider(tokenStore.MustLoad(), logger.MustLoad())),
		)
		return commonhttp.NewRequestClient(client, httpRetry.MustLoad()), nil
	})
}

func stateProvider(
	tokenStore pkglazy.Loader[domain.TokenStore],
	preferences pkglazy.Loader[domain.Preferences],
	userAPI pkglazy.Loader[remote.UserAPI],
	dispatcher pkglazy.Loader[pkgevent.Registry],
	pool pkglazy.Loader[pkgworker.Pool],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[*appsession.State] {
	return pkglazy.New(func() (*appsession.State, error) {
		return appsession.NewState(
			tokenStore.MustLoad(),
			preferences.MustLoad(),
			userAPI.MustLoad(),
			dispatcher.MustLoad(),
			pool.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}
