package store

import (
	"context"

	"github.com/MKhiriev/go-deck-reader/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SettingsRepository is the low-level repository for scalar user settings
// stored as JSON-encoded values in the user_settings table.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (models.SimpleStateRecord, error)
	Set(ctx context.Context, record models.SimpleStateRecord) error
	Delete(ctx context.Context, key string) error
}

// ArrayRepository is the low-level repository for GUID collections (read
// history, stars, deck membership, shuffled-out pool). Each collection is a
// named set of (guid, event timestamp) pairs.
type ArrayRepository interface {
	List(ctx context.Context, collection string) ([]models.ArrayItem, error)
	Add(ctx context.Context, collection string, items ...models.ArrayItem) error
	Remove(ctx context.Context, collection string, guids ...string) error
	Replace(ctx context.Context, collection string, items []models.ArrayItem) error
	Contains(ctx context.Context, collection, guid string) (bool, error)
}

// PendingOperationRepository is the durable FIFO queue of local mutations
// awaiting upload.
type PendingOperationRepository interface {
	Enqueue(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error)
	List(ctx context.Context) ([]models.PendingOperation, error)
	Remove(ctx context.Context, ids ...int64) error
	Count(ctx context.Context) (int64, error)
	ExistsForKeys(ctx context.Context, keys ...string) (bool, error)
}

// FeedItemRepository is the local cache of feed item bodies keyed by GUID.
type FeedItemRepository interface {
	Upsert(ctx context.Context, items ...models.FeedItem) error
	Get(ctx context.Context, guid string) (models.FeedItem, error)
	ListByGUIDs(ctx context.Context, guids []string) ([]models.FeedItem, error)
	ListAll(ctx context.Context) ([]models.FeedItem, error)
	AllGUIDs(ctx context.Context) ([]string, error)
	MissingGUIDs(ctx context.Context, guids []string) ([]string, error)
	LatestTimestamp(ctx context.Context) (int64, error)
	DeleteByGUIDs(ctx context.Context, guids ...string) error
}
