// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/crypto"
	"github.com/MKhiriev/health-panda/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that
// can be passed to the service and adapter layers.
type ClientStorages struct {
	db *DB

	// KeyValueRepository is the raw SQLite-backed key-value slot.
	KeyValueRepository KeyValueRepository
	// Credentials is the sealed token store built on KeyValueRepository.
	Credentials *CredentialStore
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [KeyValueRepository] and a [CredentialStore] sealed with sealer.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repo := NewKeyValueRepository(db, logger)

	return &ClientStorages{
		db:                 db,
		KeyValueRepository: repo,
		Credentials:        NewCredentialStore(repo, sealer, logger),
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
