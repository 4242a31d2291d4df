package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/loopon-client/internal/session/domain"
	pkgsql "github.com/klwxsrx/loopon-client/pkg/sql"
)

const preferenceTable = "preference"

type preferences struct {
	client pkgsql.Client
}

func NewPreferences(client pkgsql.Client) domain.Preferences {
	return &preferences{client: client}
}

func (p *preferences) Get(ctx context.Context, flag domain.Flag) (bool, error) {
	query, args, err := sq.
		Select("value").
		From(preferenceTable).
		Where(sq.Eq{"name": string(flag)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var value bool
	err = p.client.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get preference %s: %w", flag, err)
	}
	return value, nil
}

func (p *preferences) Set(ctx context.Context, flag domain.Flag, value bool) error {
	query, args, err := sq.
		Insert(preferenceTable).
		Columns("name", "value").
		Values(string(flag), value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = p.client.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", flag, err)
	}
	return nil
}
