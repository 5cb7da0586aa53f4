package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-reader/internal/config"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SettingsRepository is the SQLite-backed repository for scalar user
	// settings and sync markers.
	SettingsRepository SettingsRepository

	// ArrayRepository is the repository for GUID collections such as read
	// history and deck membership.
	ArrayRepository ArrayRepository

	// PendingOperationRepository is the durable upload queue.
	PendingOperationRepository PendingOperationRepository

	// FeedItemRepository is the local cache of feed item bodies.
	FeedItemRepository FeedItemRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the same connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SettingsRepository:         NewSettingsRepository(db, logger),
		ArrayRepository:            NewArrayRepository(db, logger),
		PendingOperationRepository: NewPendingOperationRepository(db, logger),
		FeedItemRepository:         NewFeedItemRepository(db, logger),
	}, nil
}
