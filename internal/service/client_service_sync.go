package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

// feedRefreshMinInterval keeps a full sync from hammering the feed endpoint
// when syncs run close together. State sync has its own watermarks and is
// always attempted.
const feedRefreshMinInterval = 10 * time.Minute

type clientSyncService struct {
	queue    ClientQueueService
	pull     ClientPullService
	feed     ClientFeedService
	deck     ClientDeckService
	settings store.SettingsRepository
	net      *Connectivity

	mu           sync.Mutex
	syncing      bool
	lastActivity time.Time

	now func() time.Time
}

func NewClientSyncService(queue ClientQueueService, pull ClientPullService, feed ClientFeedService, deck ClientDeckService, settings store.SettingsRepository, net *Connectivity) ClientSyncService {
	return &clientSyncService{
		queue:    queue,
		pull:     pull,
		feed:     feed,
		deck:     deck,
		settings: settings,
		net:      net,
		now:      time.Now,
	}
}

// FullSync runs the sync pipeline end to end: flush the pending buffer, pull
// remote state, refresh the feed when it is stale, then refill the
// pregenerated decks. Stages are independent; one failing stage is recorded
// and the rest still run. Only one full sync runs at a time.
func (s *clientSyncService) FullSync(ctx context.Context) models.SyncReport {
	if !s.net.Online() {
		// Nothing useful can happen without connectivity; the heartbeat
		// starts a fresh pass the moment the server answers again.
		return models.SyncReport{Offline: true}
	}

	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return models.SyncReport{Skipped: true}
	}
	s.syncing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	log := logger.FromContext(ctx).With().Str("func", "clientSyncService.FullSync").Logger()
	var report models.SyncReport

	flush, err := s.queue.Flush(ctx)
	report.Flush = flush
	switch {
	case errors.Is(err, ErrSyncDisabled):
		// The pull stage still runs so the sync toggle itself can come back
		// from the server.
		report.SyncDisabled = true
	case err != nil:
		log.Warn().Err(err).Msg("flush stage failed")
		report.StageErrors = append(report.StageErrors, fmt.Sprintf("flush: %v", err))
	}

	pull, err := s.pull.PullUserState(ctx, false, nil)
	report.Pull = pull
	if err != nil {
		log.Warn().Err(err).Msg("pull stage failed")
		report.StageErrors = append(report.StageErrors, fmt.Sprintf("pull: %v", err))
	}

	if s.feedIsStale(ctx) {
		fetched, err := s.feed.RefreshFeed(ctx)
		report.FeedItemsFetched = fetched
		if err != nil {
			log.Warn().Err(err).Msg("feed refresh stage failed")
			report.StageErrors = append(report.StageErrors, fmt.Sprintf("feed: %v", err))
		}
	}

	if report.OK() {
		if err = s.deck.PregenerateDecks(ctx); err != nil {
			log.Warn().Err(err).Msg("deck pregeneration failed after sync")
		}
	}

	return report
}

// Touch records user activity. The background sync job goes quiet when the
// user has been idle for a while.
func (s *clientSyncService) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = s.now()
}

func (s *clientSyncService) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *clientSyncService) feedIsStale(ctx context.Context) bool {
	lastFetch, err := int64Setting(ctx, s.settings, models.KeyLastFeedSync)
	if err != nil {
		return true
	}
	if lastFetch == 0 {
		return true
	}
	return s.now().Sub(time.UnixMilli(lastFetch)) > feedRefreshMinInterval
}
