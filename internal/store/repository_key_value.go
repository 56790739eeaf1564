// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/health-panda/internal/logger"
)

const credentialsTable = "credentials"

// upsertCredentialSuffix turns the INSERT into an upsert keyed by key.
const upsertCredentialSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

type keyValueRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	now     func() time.Time
}

// NewKeyValueRepository returns a [KeyValueRepository] over the credentials
// table of db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
		now:     time.Now,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	query, args, err := r.builder.
		Select("value").
		From(credentialsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read credential")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := r.builder.
		Insert(credentialsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix(upsertCredentialSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Set").
			Str("key", key).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := r.builder.
		Delete(credentialsTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Delete").
			Strs("keys", keys).
			Msg("failed to delete credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
