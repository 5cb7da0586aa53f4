// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

const (
	// pullCooldown drops pulls arriving too soon after the previous start,
	// bounding frequency under bursty triggers.
	pullCooldown = 500 * time.Millisecond
	// pullRequestTimeout bounds a single state fetch.
	pullRequestTimeout = 10 * time.Second
	// pullRetries is the number of additional attempts after a transport
	// failure, with linearly growing backoff.
	pullRetries      = 2
	retryBackoffStep = time.Second
)

type clientPullService struct {
	settings store.SettingsRepository
	arrays   store.ArrayRepository
	pending  store.PendingOperationRepository
	adapter  adapter.ServerAdapter
	net      *Connectivity

	mu        sync.Mutex
	pulling   bool
	lastStart time.Time

	sleep func(time.Duration)
}

func NewClientPullService(settings store.SettingsRepository, arrays store.ArrayRepository, pending store.PendingOperationRepository, serverAdapter adapter.ServerAdapter, net *Connectivity) ClientPullService {
	return &clientPullService{
		settings: settings,
		arrays:   arrays,
		pending:  pending,
		adapter:  serverAdapter,
		net:      net,
		sleep:    time.Sleep,
	}
}

// PullUserState implements ClientPullService.
func (s *clientPullService) PullUserState(ctx context.Context, force bool, skipKeys []string) (models.PullReport, error) {
	log := logger.FromContext(ctx)
	report := models.PullReport{Outcomes: make(map[string]models.PullOutcome)}

	s.mu.Lock()
	if s.pulling || (!force && time.Since(s.lastStart) < pullCooldown) {
		s.mu.Unlock()
		return report, nil
	}
	s.pulling = true
	s.lastStart = time.Now()
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pulling = false
		s.mu.Unlock()
	}()

	if !s.net.Online() {
		log.Debug().
			Str("func", "clientPullService.PullUserState").
			Msg("device offline, pull skipped")
		return report, nil
	}

	keys := pullableKeys()

	if s.adapter.Token() == "" {
		for _, key := range keys {
			report.Outcomes[key] = models.PullNoToken
		}
		return report, nil
	}

	pendingKeys, err := s.bufferedKeys(ctx)
	if err != nil {
		return report, err
	}

	if !force {
		enabled, err := boolSetting(ctx, s.settings, models.KeySyncEnabled)
		if err != nil {
			return report, fmt.Errorf("read sync toggle: %w", err)
		}
		if !enabled {
			// Another device may have re-enabled sync in the meantime;
			// refresh just the toggle before giving up. A buffered local
			// edit of the toggle wins over the fetch, same as in the main
			// loop.
			if pendingKeys[models.KeySyncEnabled] {
				report.Outcomes[models.KeySyncEnabled] = models.PullSkippedPending
				return report, nil
			}
			outcome, _ := s.pullKey(ctx, models.StateKeys[models.KeySyncEnabled], false)
			report.Outcomes[models.KeySyncEnabled] = outcome

			if enabled, err = boolSetting(ctx, s.settings, models.KeySyncEnabled); err != nil || !enabled {
				return report, err
			}
		}
	}

	skip := make(map[string]bool, len(skipKeys))
	for _, key := range skipKeys {
		skip[key] = true
	}
	if len(skip) > 0 && !force && s.themeDiverged(ctx) {
		// Divergence on a trivial key suggests the whole local snapshot is
		// stale; abandon the deferral and pull everything.
		log.Info().
			Str("func", "clientPullService.PullUserState").
			Msg("theme canary diverged, pulling deferred keys too")
		skip = nil
	}

	for _, key := range keys {
		if skip[key] {
			report.Outcomes[key] = models.PullSkippedDeferred
			continue
		}
		if pendingKeys[key] && !force {
			report.Outcomes[key] = models.PullSkippedPending
			continue
		}
		if !s.net.Online() {
			// A key earlier in this pass died at the transport level; stop
			// burning retries and leave the rest to the heartbeat.
			report.Outcomes[key] = models.PullOffline
			continue
		}

		outcome, token := s.pullKey(ctx, models.StateKeys[key], force)
		report.Outcomes[key] = outcome
		if token > report.Watermark {
			report.Watermark = token
		}
	}

	s.saveWatermark(ctx, report.Watermark)
	return report, nil
}

// PullKeys implements ClientPullService. Same per-key machinery as
// PullUserState restricted to the named keys, minus the toggle recheck and
// the deferral canary, which only make sense for a whole pass.
func (s *clientPullService) PullKeys(ctx context.Context, keys ...string) (models.PullReport, error) {
	report := models.PullReport{Outcomes: make(map[string]models.PullOutcome)}

	s.mu.Lock()
	if s.pulling {
		s.mu.Unlock()
		return report, nil
	}
	s.pulling = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pulling = false
		s.mu.Unlock()
	}()

	if !s.net.Online() || s.adapter.Token() == "" {
		return report, nil
	}

	pendingKeys, err := s.bufferedKeys(ctx)
	if err != nil {
		return report, err
	}

	for _, key := range keys {
		def, registered := models.StateKeys[key]
		if !registered || def.LocalOnly {
			continue
		}
		if pendingKeys[key] {
			report.Outcomes[key] = models.PullSkippedPending
			continue
		}
		if !s.net.Online() {
			report.Outcomes[key] = models.PullOffline
			continue
		}

		outcome, token := s.pullKey(ctx, def, false)
		report.Outcomes[key] = outcome
		if token > report.Watermark {
			report.Watermark = token
		}
	}

	s.saveWatermark(ctx, report.Watermark)
	return report, nil
}

func (s *clientPullService) saveWatermark(ctx context.Context, watermark string) {
	if watermark == "" {
		return
	}
	if err := setSetting(ctx, s.settings, models.KeyLastStateSync, watermark); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientPullService.saveWatermark").
			Msg("failed to save lastStateSync watermark")
	}
}

// pullKey fetches and reconciles a single key. It returns the outcome and
// the server modification token to fold into the pull watermark.
func (s *clientPullService) pullKey(ctx context.Context, def models.StateKeyDef, force bool) (models.PullOutcome, string) {
	log := logger.FromContext(ctx)

	etag := stateToken(ctx, s.settings, def.Key)
	if force {
		etag = ""
	}

	var since int64
	if def.Kind == models.KindArray && def.Merge == models.MergeModeMerge && !force {
		since = s.maxLocalEvent(ctx, def.Key)
	}

	state, newTag, err := s.fetchState(ctx, def.Key, etag, since)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrNotModified):
		return models.PullNotModified, ""
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrTokenExpired):
		return models.PullNoToken, ""
	default:
		if transportFailure(err) {
			// Transport retries exhausted: the server is unreachable, not
			// answering badly. Record it so the rest of the pass and the
			// other services stop trying until the heartbeat says otherwise.
			s.net.SetOnline(false)
		}
		log.Warn().Err(err).
			Str("func", "clientPullService.pullKey").
			Str("key", def.Key).
			Msg("fetch failed after retries, key left untouched")
		return models.PullError, ""
	}

	if newTag == "" {
		newTag = state.LastModified
	}

	if err = s.reconcile(ctx, def, state, newTag, force); err != nil {
		log.Err(err).
			Str("func", "clientPullService.pullKey").
			Str("key", def.Key).
			Msg("failed to apply pulled state")
		return models.PullError, ""
	}
	return models.PullOK, state.LastModified
}

func (s *clientPullService) reconcile(ctx context.Context, def models.StateKeyDef, state models.StateResponse, token string, force bool) error {
	if def.Kind == models.KindSimple {
		var value any
		if len(state.Value) > 0 {
			if err := json.Unmarshal(state.Value, &value); err != nil {
				return fmt.Errorf("decode value for key %s: %w", def.Key, err)
			}
		}
		return s.settings.Set(ctx, models.SimpleStateRecord{
			Key:          def.Key,
			Value:        value,
			LastModified: token,
		})
	}

	serverItems, err := decodeArrayItems(state.Value, def.TimestampField)
	if err != nil {
		return fmt.Errorf("decode snapshot for key %s: %w", def.Key, err)
	}

	if force || def.Merge == models.MergeModeReplace {
		if err = s.arrays.Replace(ctx, def.Store, serverItems); err != nil {
			return err
		}
		return saveStateToken(ctx, s.settings, def.Key, token)
	}

	local, err := s.arrays.List(ctx, def.Store)
	if err != nil {
		return err
	}
	localSet := make(map[string]bool, len(local))
	for _, item := range local {
		localSet[strings.ToLower(item.GUID)] = true
	}
	serverSet := make(map[string]bool, len(serverItems))

	var toAdd []models.ArrayItem
	for _, item := range serverItems {
		serverSet[item.GUID] = true
		if !localSet[item.GUID] {
			toAdd = append(toAdd, item)
		}
	}
	if len(toAdd) > 0 {
		if err = s.arrays.Add(ctx, def.Store, toAdd...); err != nil {
			return err
		}
	}

	// A partial delta cannot prove an item is gone; removal only on full
	// snapshots.
	if !state.Partial {
		var toRemove []string
		for _, item := range local {
			if !serverSet[strings.ToLower(item.GUID)] {
				toRemove = append(toRemove, item.GUID)
			}
		}
		if len(toRemove) > 0 {
			if err = s.arrays.Remove(ctx, def.Store, toRemove...); err != nil {
				return err
			}
		}
	}

	return saveStateToken(ctx, s.settings, def.Key, token)
}

// fetchState calls the profile API with a per-attempt timeout, retrying only
// transport failures. Errors the server actually answered with are final.
func (s *clientPullService) fetchState(ctx context.Context, key, etag string, since int64) (models.StateResponse, string, error) {
	var lastErr error
	for attempt := 0; attempt <= pullRetries; attempt++ {
		if attempt > 0 {
			s.sleep(time.Duration(attempt) * retryBackoffStep)
		}

		reqCtx, cancel := context.WithTimeout(ctx, pullRequestTimeout)
		state, tag, err := s.adapter.GetState(reqCtx, key, etag, since)
		cancel()

		if err == nil || !transportFailure(err) {
			return state, tag, err
		}
		lastErr = err
	}
	return models.StateResponse{}, "", lastErr
}

// transportFailure reports whether a request died before the server could
// answer. Mapped HTTP statuses carry a definitive server answer; only raw
// transport and timeout errors count. Transport failures are worth a retry
// and, once retries are exhausted, mark the device offline.
func transportFailure(err error) bool {
	for _, sentinel := range []error{
		adapter.ErrNotModified,
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrTooManyRequests,
		adapter.ErrTokenExpired,
		adapter.ErrBadGateway,
		adapter.ErrInternalServerError,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}

// themeDiverged fetches the remote theme unconditionally and compares it to
// the local value, as a cheap staleness canary for deferred pulls. Fetch
// failures keep the deferral.
func (s *clientPullService) themeDiverged(ctx context.Context) bool {
	local, err := stringSetting(ctx, s.settings, models.KeyTheme)
	if err != nil {
		return false
	}

	state, _, err := s.fetchState(ctx, models.KeyTheme, "", 0)
	if err != nil {
		return false
	}
	var remote string
	if unmarshalErr := json.Unmarshal(state.Value, &remote); unmarshalErr != nil {
		return false
	}
	return remote != "" && remote != local
}

// bufferedKeys resolves the state keys referenced by the pending buffer,
// both directly and through the delta-type registry mapping. These keys are
// protected from pulls until their operations resolve.
func (s *clientPullService) bufferedKeys(ctx context.Context) (map[string]bool, error) {
	buffered, err := s.pending.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buffered operations: %w", err)
	}
	keys := make(map[string]bool, len(buffered))
	for _, op := range buffered {
		if key := models.KeyForOperation(op); key != "" {
			keys[key] = true
		}
	}
	return keys, nil
}

func (s *clientPullService) maxLocalEvent(ctx context.Context, collection string) int64 {
	items, err := s.arrays.List(ctx, collection)
	if err != nil {
		return 0
	}
	var max int64
	for _, item := range items {
		ts, parseErr := time.Parse(time.RFC3339, item.EventAt)
		if parseErr != nil {
			continue
		}
		if ms := ts.UnixMilli(); ms > max {
			max = ms
		}
	}
	return max
}

// decodeArrayItems parses a server array snapshot, dropping structurally
// invalid entries and deduplicating guids case-insensitively.
func decodeArrayItems(raw json.RawMessage, tsField string) ([]models.ArrayItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	items := make([]models.ArrayItem, 0, len(entries))
	for _, entry := range entries {
		guid, ok := entry["guid"].(string)
		if !ok || guid == "" {
			continue
		}
		guid = strings.ToLower(guid)
		if seen[guid] {
			continue
		}
		seen[guid] = true

		eventAt, _ := entry[tsField].(string)
		items = append(items, models.ArrayItem{GUID: guid, EventAt: eventAt})
	}
	return items, nil
}

// pullableKeys lists every registered key that may travel, in stable order.
func pullableKeys() []string {
	keys := make([]string, 0, len(models.StateKeys))
	for key, def := range models.StateKeys {
		if def.LocalOnly {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
