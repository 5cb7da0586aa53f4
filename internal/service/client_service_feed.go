package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

const (
	// guidFetchChunkSize bounds a single body-fetch request.
	guidFetchChunkSize = 50
	// readRetention is how long an orphaned read entry (its item no longer in
	// the feed) is kept before pruning.
	readRetention = 30 * 24 * time.Hour
)

type clientFeedService struct {
	settings  store.SettingsRepository
	arrays    store.ArrayRepository
	feedItems store.FeedItemRepository
	adapter   adapter.ServerAdapter
	net       *Connectivity

	now func() time.Time
}

func NewClientFeedService(settings store.SettingsRepository, arrays store.ArrayRepository, feedItems store.FeedItemRepository, serverAdapter adapter.ServerAdapter, net *Connectivity) ClientFeedService {
	return &clientFeedService{
		settings:  settings,
		arrays:    arrays,
		feedItems: feedItems,
		adapter:   serverAdapter,
		net:       net,
		now:       time.Now,
	}
}

// RefreshFeed implements ClientFeedService.
func (s *clientFeedService) RefreshFeed(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	if !s.net.Online() {
		log.Debug().
			Str("func", "clientFeedService.RefreshFeed").
			Msg("device offline, refresh skipped")
		return 0, nil
	}

	since, err := s.feedItems.LatestTimestamp(ctx)
	if err != nil {
		return 0, fmt.Errorf("read latest item timestamp: %w", err)
	}

	refresh, err := s.adapter.RefreshFeed(ctx, since)
	if err != nil {
		if errors.Is(err, adapter.ErrTooManyRequests) {
			// Rate limited: advance the watermark so the orchestrator backs
			// off for a full staleness window instead of hammering.
			log.Warn().
				Str("func", "clientFeedService.RefreshFeed").
				Msg("refresh rate limited, backing off")
			s.advanceFeedWatermark(ctx)
			return 0, nil
		}
		if transportFailure(err) {
			s.net.SetOnline(false)
		}
		return 0, fmt.Errorf("refresh feed headers: %w", err)
	}

	guids := make([]string, 0, len(refresh.Items))
	for _, header := range refresh.Items {
		if header.GUID == "" {
			continue
		}
		guids = append(guids, strings.ToLower(header.GUID))
	}

	missing, err := s.feedItems.MissingGUIDs(ctx, guids)
	if err != nil {
		return 0, fmt.Errorf("diff item headers: %w", err)
	}

	fetched := 0
	for start := 0; start < len(missing); start += guidFetchChunkSize {
		end := start + guidFetchChunkSize
		if end > len(missing) {
			end = len(missing)
		}

		items, listErr := s.adapter.ListItems(ctx, missing[start:end])
		if listErr != nil {
			// Going offline mid-fetch aborts; already-saved items stand.
			if transportFailure(listErr) {
				s.net.SetOnline(false)
			}
			return fetched, fmt.Errorf("fetch item bodies: %w", listErr)
		}
		for i := range items {
			items[i].GUID = strings.ToLower(items[i].GUID)
		}
		if err = s.feedItems.Upsert(ctx, items...); err != nil {
			return fetched, fmt.Errorf("save item bodies: %w", err)
		}
		fetched += len(items)
	}

	s.advanceFeedWatermark(ctx)

	if err = s.PruneReadHistory(ctx); err != nil {
		log.Warn().Err(err).
			Str("func", "clientFeedService.RefreshFeed").
			Msg("read history pruning failed")
	}

	return fetched, nil
}

// PruneReadHistory implements ClientFeedService. An entry is pruned only when
// both conditions hold: its item vanished from the feed and the read event is
// older than the retention window. Recent orphans survive so a temporarily
// missing item does not resurface as unread.
func (s *clientFeedService) PruneReadHistory(ctx context.Context) error {
	read, err := s.arrays.List(ctx, models.KeyRead)
	if err != nil {
		return fmt.Errorf("list read history: %w", err)
	}
	if len(read) == 0 {
		return nil
	}

	guids, err := s.feedItems.AllGUIDs(ctx)
	if err != nil {
		return fmt.Errorf("list feed guids: %w", err)
	}
	known := make(map[string]bool, len(guids))
	for _, guid := range guids {
		known[guid] = true
	}

	cutoff := s.now().Add(-readRetention)
	var orphans []string
	for _, entry := range read {
		if known[strings.ToLower(entry.GUID)] {
			continue
		}
		readAt, parseErr := time.Parse(time.RFC3339, entry.EventAt)
		if parseErr == nil && readAt.After(cutoff) {
			continue
		}
		orphans = append(orphans, entry.GUID)
	}
	if len(orphans) == 0 {
		return nil
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientFeedService.PruneReadHistory").
		Int("count", len(orphans)).
		Msg("pruning orphaned read entries")
	return s.arrays.Remove(ctx, models.KeyRead, orphans...)
}

func (s *clientFeedService) advanceFeedWatermark(ctx context.Context) {
	if err := setSetting(ctx, s.settings, models.KeyLastFeedSync, s.now().UnixMilli()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientFeedService.advanceFeedWatermark").
			Msg("failed to save lastFeedSync watermark")
	}
}
