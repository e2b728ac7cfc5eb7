package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Expected schema, owned by the app:
//
//	CREATE TABLE widget_preferences (
//	    key   TEXT PRIMARY KEY,
//	    value TEXT NOT NULL
//	);
const widgetPreferencesTable = "widget_preferences"

// rowQuerier is the part of *pgxpool.Pool the repository uses.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WidgetPreferenceRepository serves widget preferences out of Postgres.
type WidgetPreferenceRepository struct {
	db     rowQuerier
	logger *zap.Logger
}

func NewWidgetPreferenceRepository(db rowQuerier, logger *zap.Logger) *WidgetPreferenceRepository {
	return &WidgetPreferenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *WidgetPreferenceRepository) GetString(ctx context.Context, key string) (string, bool, error) {
	sql, args, err := selectPreferenceQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		r.logger.Debug("Widget preference not set", zap.String("key", key))
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read widget preference %q: %w", key, err)
	}
	return value, true, nil
}

func selectPreferenceQuery(key string) (string, []any, error) {
	return squirrel.Select("value").
		From(widgetPreferencesTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
