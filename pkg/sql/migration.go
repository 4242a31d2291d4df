package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/loopon-client/pkg/log"
)

const (
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id TEXT PRIMARY KEY
		)
	`
)

type Migration struct {
	txClient   TxClient
	migrations fs.ReadDirFS
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations fs.ReadDirFS, logger log.Logger) *Migration {
	return &Migration{txClient, migrations, logger}
}

func (m *Migration) Execute(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	return m.performFileMigrations(ctx)
}

func (m *Migration) performFileMigrations(ctx context.Context) error {
	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("failed to get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(m.migrations, migrationID)
		if err != nil {
			return fmt.Errorf("failed to read migration sql: %w", err)
		}

		err = m.performMigration(ctx, migrationID, string(content))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func (m *Migration) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Debug(ctx, "migration executed successfully")
	return nil
}

func (m *Migration) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES (?)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}
		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.txClient.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}
	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
