package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/99designs/keyring"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	sessionkeyring "github.com/klwxsrx/loopon-client/internal/session/infra/keyring"
	"github.com/klwxsrx/loopon-client/pkg/cmd"
	"github.com/klwxsrx/loopon-client/pkg/env"
	"github.com/klwxsrx/loopon-client/pkg/event"
	"github.com/klwxsrx/loopon-client/pkg/lazy"
	"github.com/klwxsrx/loopon-client/pkg/log"
	"github.com/klwxsrx/loopon-client/pkg/sql"
	"github.com/klwxsrx/loopon-client/pkg/worker"
)

const (
	appDirName         = "loopon"
	databaseFileName   = "preferences.db"
	keyringDirName     = "keyring"
	defaultHTTPTimeout = 10 * time.Second
	defaultRetryCount  = 2
	retryInterval      = 300 * time.Millisecond
)

type InfrastructureContainer struct {
	HTTPClientFactory lazy.Loader[*internalhttp.ClientFactory]
	HTTPRetry         lazy.Loader[internalhttp.RequestClientOption]
	EventDispatcher   lazy.Loader[event.Registry]
	WorkerPool        lazy.Loader[worker.Pool]
	Keyring           lazy.Loader[keyring.Keyring]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Logger            lazy.Loader[log.Logger]
}

// NewInfrastructureContainer loads .env files from the working directory first,
// variables already set in the environment win.
func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	if err := env.LoadDotEnv(".env", ".env.local"); err != nil {
		logger.MustLoad().WithError(err).Warn(ctx, "failed to load dotenv files")
	}

	dataDir := dataDirProvider()
	db := sqlDatabaseProvider(dataDir, logger)

	return &InfrastructureContainer{
		HTTPClientFactory: httpClientFactoryProvider(logger),
		HTTPRetry:         httpRetryProvider(),
		EventDispatcher:   lazy.New(func() (event.Registry, error) { return event.NewDispatcher(), nil }),
		WorkerPool:        lazy.New(func() (worker.Pool, error) { return worker.NewPool(worker.MaxWorkersCountNumCPU), nil }),
		Keyring:           keyringProvider(dataDir),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Logger:            logger,
	}
}

// Close waits for background jobs so a profile fetch started by the command is not cut off.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.WorkerPool.IfLoaded(func(pool worker.Pool) { pool.Wait() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return cmd.InitLogger(), nil
	})
}

func dataDirProvider() lazy.Loader[string] {
	return lazy.New(func() (string, error) {
		dir := env.Must(env.ParseOptional[string]("LOOPON_DATA_DIR"))
		if dir != nil && *dir != "" {
			return *dir, nil
		}

		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("get user config dir: %w", err)
		}
		return filepath.Join(configDir, appDirName), nil
	})
}

func sqlDatabaseProvider(
	dataDir lazy.Loader[string],
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		db, err := sql.NewDatabase(&sql.Config{
			Path: filepath.Join(dataDir.MustLoad(), databaseFileName),
		}, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func keyringProvider(dataDir lazy.Loader[string]) lazy.Loader[keyring.Keyring] {
	return lazy.New(func() (keyring.Keyring, error) {
		config := sessionkeyring.Config{
			FileDir:  filepath.Join(dataDir.MustLoad(), keyringDirName),
			Password: env.Must(env.ParseWithDefault[string]("LOOPON_KEYRING_PASSWORD", "")),
		}
		for _, backend := range env.Must(env.ParseWithDefault[[]string]("LOOPON_KEYRING_BACKENDS", nil)) {
			config.Backends = append(config.Backends, keyring.BackendType(backend))
		}

		return sessionkeyring.Open(config)
	})
}

func httpClientFactoryProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[*internalhttp.ClientFactory] {
	return lazy.New(func() (*internalhttp.ClientFactory, error) {
		timeout := env.Must(env.ParseWithDefault[time.Duration]("LOOPON_HTTP_TIMEOUT", defaultHTTPTimeout))
		return internalhttp.NewClientFactory(timeout, logger.MustLoad()), nil
	})
}

func httpRetryProvider() lazy.Loader[internalhttp.RequestClientOption] {
	return lazy.New(func() (internalhttp.RequestClientOption, error) {
		count := env.Must(env.ParseWithDefault[uint]("LOOPON_HTTP_RETRY_COUNT", defaultRetryCount))
		return internalhttp.WithRetry(uint64(count), retryInterval), nil
	})
}
