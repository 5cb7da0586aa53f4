package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deck-reader/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientQueueService is the durable buffer of outbound mutations and the two
// delivery paths that drain it. Every mutation is written to local storage
// before any network attempt, so a failed send never loses the intent.
type ClientQueueService interface {
	// QueueAndAttempt validates op, buffers it durably, then tries to send it
	// immediately when sync is enabled and a token is available. Send
	// failures are contained: the operation stays buffered for the next
	// flush and no error is returned for them. Returns ErrOperationInvalid
	// for malformed operations and a storage error if buffering itself
	// failed, since then the optimistic local mutation may not be durable.
	QueueAndAttempt(ctx context.Context, op models.PendingOperation) error

	// Flush sends the whole buffer oldest-first in fixed-size chunks. A
	// chunk failure stops the remaining chunks to preserve relative order
	// for retry. Only operations the server confirmed are removed locally.
	Flush(ctx context.Context) (models.FlushReport, error)

	// PendingCount reports the current buffer depth.
	PendingCount(ctx context.Context) (int64, error)
}

// ClientPullService reconciles the local replica with the remote profile
// store, one key at a time.
type ClientPullService interface {
	// PullUserState fetches and reconciles every registered non-local-only
	// key not listed in skipKeys. Keys with buffered pending operations are
	// skipped unless force is true. force also switches array reconciliation
	// to replace mode and bypasses the sync-enabled and cooldown gates.
	// A concurrent call while a pull is in flight returns an empty report.
	PullUserState(ctx context.Context, force bool, skipKeys []string) (models.PullReport, error)

	// PullKeys fetches and reconciles just the named keys, keeping the
	// pending-key guard. It is the targeted re-pull that follows a confirmed
	// push, picking up the server's canonical merge of the mutation.
	PullKeys(ctx context.Context, keys ...string) (models.PullReport, error)
}

// ClientInteractionService applies the user's item interactions: an
// optimistic local array write followed by a buffered delta operation, so
// the mutation survives offline windows and crashes.
type ClientInteractionService interface {
	// ToggleRead flips the read state of the item with this guid and
	// reports the new state (true means read).
	ToggleRead(ctx context.Context, guid string) (bool, error)

	// ToggleStar flips the starred state of the item with this guid and
	// reports the new state (true means starred).
	ToggleStar(ctx context.Context, guid string) (bool, error)
}

// ClientFeedService keeps the local feed item cache current.
type ClientFeedService interface {
	// RefreshFeed asks the server for item headers newer than the latest
	// locally cached timestamp, downloads the missing bodies in chunks, and
	// advances the lastFeedSync watermark. Returns the number of item bodies
	// fetched. A rate-limited response advances the watermark and returns
	// zero without error.
	RefreshFeed(ctx context.Context) (int, error)

	// PruneReadHistory drops read entries whose item no longer exists in the
	// feed cache and whose read timestamp is older than the retention
	// window.
	PruneReadHistory(ctx context.Context) error
}

// ClientDeckService builds and maintains the bounded curated deck of unread
// items.
type ClientDeckService interface {
	// ManageDailyDeck resolves the deck for the given filter. The read and
	// starred filters derive their result directly from the replicated
	// collections without touching the persisted deck. The unread filter
	// applies the daily reset rules, regenerating the deck when a new
	// calendar day started or the current deck is empty or fully read.
	ManageDailyDeck(ctx context.Context, filter models.DeckFilter, online bool) (models.DeckState, error)

	// ProcessShuffle spends one unit of the daily shuffle budget: the
	// current deck members move into the shuffled-out pool and a fresh deck
	// is derived. With an exhausted budget nothing changes and the returned
	// message tells the user so.
	ProcessShuffle(ctx context.Context, online bool) (models.DeckState, string, error)

	// PregenerateDecks computes and persists the two forward-looking
	// candidate decks (online and offline assumptions) so the next reset can
	// consume a precomputed result. Concurrent calls return immediately.
	PregenerateDecks(ctx context.Context) error
}

// ClientSyncService sequences flush, pull and feed refresh into one full
// sync pass and tracks user activity for the background scheduler.
type ClientSyncService interface {
	// FullSync runs flush, then pull, then a feed refresh when the feed
	// watermark is stale. Stage failures are logged and collected into the
	// report; later stages still run. At most one full sync is in flight at
	// a time; concurrent callers get a report with Skipped set.
	FullSync(ctx context.Context) models.SyncReport

	// Touch records user activity. The periodic sync job skips its tick when
	// the device has been idle past the configured timeout.
	Touch()

	// LastActivity returns the time of the most recent Touch.
	LastActivity() time.Time
}

// ClientSyncJob is the background worker that runs FullSync on an interval.
type ClientSyncJob interface {
	// Start launches the background goroutine. Ticks while the device is
	// idle longer than idleTimeout are skipped. Any previously running job
	// is stopped first.
	Start(ctx context.Context, interval, idleTimeout time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
