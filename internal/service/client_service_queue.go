// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/internal/utils"
	"github.com/MKhiriev/go-deck-reader/models"
)

// flushChunkSize bounds a single batch request. Tuning constant, not a
// correctness parameter: delivery is at-least-once regardless of chunking.
const flushChunkSize = 10

type clientQueueService struct {
	pending  store.PendingOperationRepository
	settings store.SettingsRepository
	adapter  adapter.ServerAdapter
	pull     ClientPullService
	net      *Connectivity
}

func NewClientQueueService(pending store.PendingOperationRepository, settings store.SettingsRepository, serverAdapter adapter.ServerAdapter, pull ClientPullService, net *Connectivity) ClientQueueService {
	return &clientQueueService{
		pending:  pending,
		settings: settings,
		adapter:  serverAdapter,
		pull:     pull,
		net:      net,
	}
}

// QueueAndAttempt implements ClientQueueService. Buffer first, send second:
// the durable append must succeed before any network attempt so a crash or
// offline window never loses the mutation.
func (s *clientQueueService) QueueAndAttempt(ctx context.Context, op models.PendingOperation) error {
	log := logger.FromContext(ctx)

	if op.Type == models.OpSimpleUpdate && op.Key != "" && op.Value == nil {
		// Defined as a no-op, not an error.
		log.Warn().
			Str("func", "clientQueueService.QueueAndAttempt").
			Str("key", op.Key).
			Msg("dropping simpleUpdate with nil value")
		return nil
	}
	if !op.Valid() {
		log.Warn().
			Str("func", "clientQueueService.QueueAndAttempt").
			Str("type", string(op.Type)).
			Msg("dropping malformed operation")
		return ErrOperationInvalid
	}

	if err := s.compressSnapshot(&op); err != nil {
		return fmt.Errorf("compress snapshot for key %s: %w", op.Key, err)
	}

	// An older buffered operation for the same key must reach the server
	// first; sending the fresh one immediately would reorder. The next flush
	// carries both in order.
	hasOlder, err := s.pending.ExistsForKeys(ctx, models.KeyForOperation(op))
	if err != nil {
		return fmt.Errorf("check buffered operations: %w", err)
	}

	buffered, err := s.pending.Enqueue(ctx, op)
	if err != nil {
		return fmt.Errorf("buffer operation: %w", err)
	}

	if hasOlder {
		return nil
	}
	s.attemptImmediate(ctx, buffered)
	return nil
}

// attemptImmediate tries to deliver a single just-buffered operation. Every
// failure is contained: the entry stays buffered and the batch path retries.
func (s *clientQueueService) attemptImmediate(ctx context.Context, op models.PendingOperation) {
	log := logger.FromContext(ctx)

	if !s.net.Online() {
		return
	}
	enabled, err := boolSetting(ctx, s.settings, models.KeySyncEnabled)
	if err != nil || !enabled || s.adapter.Token() == "" {
		return
	}

	result, err := s.adapter.PushOperations(ctx, []models.PendingOperation{op})
	if err != nil {
		log.Warn().Err(err).
			Str("func", "clientQueueService.attemptImmediate").
			Int64("id", op.LocalID).
			Msg("immediate send failed, operation stays buffered")
		return
	}

	confirmed, _ := confirmedIDs(result, op)
	if len(confirmed) == 0 {
		return
	}
	if err = s.pending.Remove(ctx, confirmed...); err != nil {
		log.Err(err).
			Str("func", "clientQueueService.attemptImmediate").
			Int64("id", op.LocalID).
			Msg("failed to remove confirmed operation")
		return
	}
	s.advanceWatermark(ctx, result.ServerTime)

	// The server may have merged the mutation with edits from other devices;
	// re-pull the touched key so the local replica holds the canonical
	// result, not just the local guess.
	if key := models.KeyForOperation(op); key != "" {
		if _, pullErr := s.pull.PullKeys(ctx, key); pullErr != nil {
			log.Warn().Err(pullErr).
				Str("func", "clientQueueService.attemptImmediate").
				Str("key", key).
				Msg("post-push re-pull failed")
		}
	}
}

// Flush implements ClientQueueService. Oldest-first, chunked, fail-stop: a
// failing chunk aborts the rest of this flush so dependent deltas are never
// reordered ahead of an unconfirmed predecessor.
func (s *clientQueueService) Flush(ctx context.Context) (models.FlushReport, error) {
	log := logger.FromContext(ctx)
	var report models.FlushReport

	if !s.net.Online() {
		return report, ErrOffline
	}
	enabled, err := boolSetting(ctx, s.settings, models.KeySyncEnabled)
	if err != nil {
		return report, fmt.Errorf("read sync toggle: %w", err)
	}
	if !enabled {
		return report, ErrSyncDisabled
	}
	if s.adapter.Token() == "" {
		return report, nil
	}

	buffer, err := s.pending.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list buffered operations: %w", err)
	}

	changed := make(map[string]bool)
	var serverTime string
	for start := 0; start < len(buffer); start += flushChunkSize {
		end := start + flushChunkSize
		if end > len(buffer) {
			end = len(buffer)
		}
		chunk := buffer[start:end]

		result, pushErr := s.adapter.PushOperations(ctx, chunk)
		if pushErr != nil {
			if transportFailure(pushErr) {
				s.net.SetOnline(false)
			}
			log.Warn().Err(pushErr).
				Str("func", "clientQueueService.Flush").
				Int("sent", report.Attempted).
				Msg("chunk failed, halting flush")
			s.finishFlush(ctx, &report, changed, serverTime)
			return report, fmt.Errorf("%w: %v", ErrFlushInterrupted, pushErr)
		}
		report.Attempted += len(chunk)

		confirmed, keys := confirmedIDs(result, chunk...)
		if len(confirmed) > 0 {
			if err = s.pending.Remove(ctx, confirmed...); err != nil {
				s.finishFlush(ctx, &report, changed, serverTime)
				return report, fmt.Errorf("remove confirmed operations: %w", err)
			}
			report.Confirmed += len(confirmed)
			for _, key := range keys {
				changed[key] = true
			}
		}
		if result.ServerTime != "" {
			serverTime = result.ServerTime
		}
	}

	s.finishFlush(ctx, &report, changed, serverTime)
	return report, nil
}

// PendingCount implements ClientQueueService.
func (s *clientQueueService) PendingCount(ctx context.Context) (int64, error) {
	return s.pending.Count(ctx)
}

func (s *clientQueueService) finishFlush(ctx context.Context, report *models.FlushReport, changed map[string]bool, serverTime string) {
	for key := range changed {
		report.ChangedKeys = append(report.ChangedKeys, key)
	}
	if report.Confirmed > 0 {
		s.advanceWatermark(ctx, serverTime)
	}
}

// compressSnapshot gzip+base64 encodes the payload of array snapshot
// updates, which can carry the full read or starred history. String values
// are assumed to be pre-encoded and pass through untouched.
func (s *clientQueueService) compressSnapshot(op *models.PendingOperation) error {
	if op.Type != models.OpSimpleUpdate || !models.ArraySnapshotKeys[op.Key] {
		return nil
	}
	if _, isString := op.Value.(string); isString {
		return nil
	}
	encoded, err := utils.CompressJSON(op.Value)
	if err != nil {
		return err
	}
	op.Value = encoded
	op.Compressed = true
	return nil
}

func (s *clientQueueService) advanceWatermark(ctx context.Context, serverTime string) {
	if serverTime == "" {
		return
	}
	if err := setSetting(ctx, s.settings, models.KeyLastStateSync, serverTime); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientQueueService.advanceWatermark").
			Msg("failed to save lastStateSync watermark")
	}
}

// confirmedIDs extracts the local ids the server marked successful, plus the
// state keys those operations touched.
func confirmedIDs(result models.BatchResult, sent ...models.PendingOperation) ([]int64, []string) {
	byID := make(map[int64]models.PendingOperation, len(sent))
	for _, op := range sent {
		byID[op.LocalID] = op
	}

	var ids []int64
	var keys []string
	for _, r := range result.Results {
		if r.Status != models.OperationStatusSuccess {
			continue
		}
		op, known := byID[r.ID]
		if !known {
			continue
		}
		ids = append(ids, r.ID)
		if key := models.KeyForOperation(op); key != "" {
			keys = append(keys, key)
		}
	}
	return ids, keys
}
