// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

type clientInteractionService struct {
	arrays    store.ArrayRepository
	feedItems store.FeedItemRepository
	queue     ClientQueueService

	now func() time.Time
}

func NewClientInteractionService(arrays store.ArrayRepository, feedItems store.FeedItemRepository, queue ClientQueueService) ClientInteractionService {
	return &clientInteractionService{
		arrays:    arrays,
		feedItems: feedItems,
		queue:     queue,
		now:       time.Now,
	}
}

// ToggleRead implements ClientInteractionService.
func (s *clientInteractionService) ToggleRead(ctx context.Context, guid string) (bool, error) {
	return s.toggle(ctx, guid, models.StateKeys[models.KeyRead])
}

// ToggleStar implements ClientInteractionService.
func (s *clientInteractionService) ToggleStar(ctx context.Context, guid string) (bool, error) {
	return s.toggle(ctx, guid, models.StateKeys[models.KeyStarred])
}

// toggle flips membership of guid in the collection: local array write
// first, then the matching delta operation through the queue. The local
// write is the source of truth the UI reads; the delta travels whenever the
// device can deliver it.
func (s *clientInteractionService) toggle(ctx context.Context, guid string, def models.StateKeyDef) (bool, error) {
	guid = strings.ToLower(strings.TrimSpace(guid))
	if guid == "" {
		return false, store.ErrFeedItemNotFound
	}
	if _, err := s.feedItems.Get(ctx, guid); err != nil {
		return false, fmt.Errorf("look up item %s: %w", guid, err)
	}

	member, err := s.arrays.Contains(ctx, def.Store, guid)
	if err != nil {
		return false, fmt.Errorf("check %s membership: %w", def.Key, err)
	}

	now := s.now()
	action := models.ActionAdd
	if member {
		action = models.ActionRemove
		if err = s.arrays.Remove(ctx, def.Store, guid); err != nil {
			return member, fmt.Errorf("remove from %s: %w", def.Key, err)
		}
	} else {
		item := models.ArrayItem{GUID: guid, EventAt: now.UTC().Format(time.RFC3339)}
		if err = s.arrays.Add(ctx, def.Store, item); err != nil {
			return member, fmt.Errorf("add to %s: %w", def.Key, err)
		}
	}

	op := models.PendingOperation{
		Type:      def.DeltaOp,
		GUID:      guid,
		Action:    action,
		Timestamp: now,
	}
	if err = s.queue.QueueAndAttempt(ctx, op); err != nil {
		// The local toggle already happened and stands; the caller still
		// needs to know the mutation may not be durable.
		logger.FromContext(ctx).Err(err).
			Str("func", "clientInteractionService.toggle").
			Str("key", def.Key).
			Str("guid", guid).
			Msg("failed to buffer delta for local toggle")
		return !member, fmt.Errorf("buffer %s delta: %w", def.Key, err)
	}
	return !member, nil
}
