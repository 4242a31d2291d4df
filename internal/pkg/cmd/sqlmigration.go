package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/klwxsrx/loopon-client/pkg/log"
	"github.com/klwxsrx/loopon-client/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(sources ...fs.ReadDirFS)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) MustRegister(sources ...fs.ReadDirFS) {
	for _, source := range sources {
		err := sql.NewMigration(s.db, source, s.logger).Execute(s.ctx)
		if err != nil {
			panic(fmt.Errorf("execute migrations: %w", err))
		}
	}
}
