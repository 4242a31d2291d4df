package sql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/loopon-client/pkg/log"
)

const (
	InMemoryPath = ":memory:"

	defaultConnectionTimeout = 5 * time.Second
	busyTimeoutMillis        = 5000
)

type Config struct {
	Path              string
	ConnectionTimeout time.Duration
}

func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", c.Path, busyTimeoutMillis)
}

type Database interface {
	TxClient
	Close(ctx context.Context)
}

type database struct {
	*sqlx.DB
	logger log.Logger
}

func NewDatabase(config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}
	if config.Path == "" {
		config.Path = InMemoryPath
	}

	if config.Path != InMemoryPath {
		err := os.MkdirAll(filepath.Dir(config.Path), 0o700)
		if err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := openConnection(config)
	if err != nil {
		return nil, err
	}

	return &database{
		DB:     db,
		logger: logger,
	}, nil
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *database) Close(ctx context.Context) {
	err := d.DB.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func openConnection(config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", config.DSN())
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer, in-memory databases also live per connection
	db.SetMaxOpenConns(1)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 100 * time.Millisecond
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.Ping()
	}, eb)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
