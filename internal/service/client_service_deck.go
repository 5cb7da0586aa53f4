// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/app"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

const (
	// deckSize is the fixed target size of the curated deck.
	deckSize = 10
	// recencyWindow and recencyMax bound the fresh-item bucket at the top of
	// a new deck.
	recencyWindow = 24 * time.Hour
	recencyMax    = 2
	// dayFormat renders the device-local calendar day the shuffle budget is
	// keyed on. Compared for equality only.
	dayFormat = "Mon Jan 2 2006"
)

type clientDeckService struct {
	settings  store.SettingsRepository
	arrays    store.ArrayRepository
	feedItems store.FeedItemRepository
	queue     ClientQueueService

	mu            sync.Mutex
	pregenerating bool

	now               func() time.Time
	kickPregeneration func(context.Context)
}

func NewClientDeckService(settings store.SettingsRepository, arrays store.ArrayRepository, feedItems store.FeedItemRepository, queue ClientQueueService) ClientDeckService {
	svc := &clientDeckService{
		settings:  settings,
		arrays:    arrays,
		feedItems: feedItems,
		queue:     queue,
		now:       time.Now,
	}
	svc.kickPregeneration = func(ctx context.Context) {
		go func() {
			if err := svc.PregenerateDecks(context.WithoutCancel(ctx)); err != nil {
				logger.FromContext(ctx).Warn().Err(err).
					Str("func", "clientDeckService.kickPregeneration").
					Msg("background deck pregeneration failed")
			}
		}()
	}
	return svc
}

// deckInputs is everything one deck pass reads: the cached items newest-first
// plus the replicated curation state.
type deckInputs struct {
	items  []models.FeedItem
	byGUID map[string]models.FeedItem

	readSet     map[string]bool
	shuffled    []models.ArrayItem
	shuffledSet map[string]bool
	membership  []models.ArrayItem
	excluded    map[string]bool

	shuffleCount int
	lastReset    string
	blacklist    []string
}

// ManageDailyDeck implements ClientDeckService.
func (s *clientDeckService) ManageDailyDeck(ctx context.Context, filter models.DeckFilter, online bool) (models.DeckState, error) {
	if filter == models.FilterRead || filter == models.FilterStarred {
		return s.filteredView(ctx, filter)
	}

	inputs, err := s.loadDeckInputs(ctx)
	if err != nil {
		return models.DeckState{}, err
	}

	today := s.now().Format(dayFormat)
	newDay := inputs.lastReset != today
	consumed := len(inputs.membership) == 0 || allRead(inputs.membership, inputs.readSet)

	if !newDay && !consumed {
		return models.DeckState{
			Deck:                 s.resolveDeck(inputs, inputs.membership),
			DeckMembership:       inputs.membership,
			ShuffledOut:          inputs.shuffled,
			ShuffleCount:         inputs.shuffleCount,
			LastShuffleResetDate: inputs.lastReset,
		}, nil
	}

	if newDay {
		inputs.shuffleCount = models.DailyShuffleLimit
		inputs.lastReset = today
		inputs.shuffled = nil
		inputs.shuffledSet = make(map[string]bool)
	} else if inputs.shuffleCount < models.DailyShuffleLimit {
		// Mid-day exhaustion grants one extra shuffle, never a full reset.
		inputs.shuffleCount++
	}

	membership, err := s.nextDeck(ctx, inputs, online)
	if err != nil {
		return models.DeckState{}, err
	}
	if err = s.persistDeck(ctx, inputs, membership, newDay); err != nil {
		return models.DeckState{}, err
	}

	return models.DeckState{
		Deck:                 s.resolveDeck(inputs, membership),
		DeckMembership:       membership,
		ShuffledOut:          inputs.shuffled,
		ShuffleCount:         inputs.shuffleCount,
		LastShuffleResetDate: inputs.lastReset,
	}, nil
}

// ProcessShuffle implements ClientDeckService.
func (s *clientDeckService) ProcessShuffle(ctx context.Context, online bool) (models.DeckState, string, error) {
	// Apply the daily reset rules first so a stale budget from yesterday
	// cannot block today's shuffle.
	state, err := s.ManageDailyDeck(ctx, models.FilterUnread, online)
	if err != nil {
		return models.DeckState{}, "", err
	}
	if state.ShuffleCount <= 0 {
		return state, app.MsgNoShufflesLeft, nil
	}

	eventAt := s.now().UTC().Format(time.RFC3339)
	shuffledSet := make(map[string]bool, len(state.ShuffledOut))
	for _, entry := range state.ShuffledOut {
		shuffledSet[strings.ToLower(entry.GUID)] = true
	}

	// Idempotent union: members already shuffled out keep their original
	// timestamp.
	var added []models.ArrayItem
	for _, member := range state.DeckMembership {
		if shuffledSet[strings.ToLower(member.GUID)] {
			continue
		}
		added = append(added, models.ArrayItem{GUID: member.GUID, EventAt: eventAt})
	}
	if len(added) > 0 {
		if err = s.arrays.Add(ctx, models.KeyShuffledOut, added...); err != nil {
			return models.DeckState{}, "", fmt.Errorf("grow shuffled-out pool: %w", err)
		}
	}

	newCount := state.ShuffleCount - 1
	if err = setSetting(ctx, s.settings, models.KeyShuffleCount, newCount); err != nil {
		return models.DeckState{}, "", fmt.Errorf("save shuffle budget: %w", err)
	}

	inputs, err := s.loadDeckInputs(ctx)
	if err != nil {
		return models.DeckState{}, "", err
	}
	membership := s.toMembership(s.generateDeck(inputs, online))
	if err = s.arrays.Replace(ctx, models.KeyCurrentDeck, membership); err != nil {
		return models.DeckState{}, "", fmt.Errorf("replace deck membership: %w", err)
	}

	if err = s.queueDeckOps(ctx,
		snapshotOp(models.KeyShuffleCount, newCount),
		snapshotOp(models.KeyShuffledOut, inputs.shuffled),
		snapshotOp(models.KeyCurrentDeck, membership),
	); err != nil {
		return models.DeckState{}, "", err
	}

	s.kickPregeneration(ctx)

	return models.DeckState{
		Deck:                 s.resolveDeck(inputs, membership),
		DeckMembership:       membership,
		ShuffledOut:          inputs.shuffled,
		ShuffleCount:         newCount,
		LastShuffleResetDate: inputs.lastReset,
	}, "", nil
}

// PregenerateDecks implements ClientDeckService. The current deck members
// are excluded from the candidate pool so the precomputed decks stay useful
// after the present one is consumed.
func (s *clientDeckService) PregenerateDecks(ctx context.Context) error {
	s.mu.Lock()
	if s.pregenerating {
		s.mu.Unlock()
		return nil
	}
	s.pregenerating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pregenerating = false
		s.mu.Unlock()
	}()

	inputs, err := s.loadDeckInputs(ctx)
	if err != nil {
		return err
	}
	for _, member := range inputs.membership {
		inputs.excluded[strings.ToLower(member.GUID)] = true
	}

	online := s.toMembership(s.generateDeck(inputs, true))
	offline := s.toMembership(s.generateDeck(inputs, false))

	if err = setSetting(ctx, s.settings, models.KeyPregeneratedOnline, online); err != nil {
		return fmt.Errorf("save pregenerated online deck: %w", err)
	}
	if err = setSetting(ctx, s.settings, models.KeyPregeneratedOffline, offline); err != nil {
		return fmt.Errorf("save pregenerated offline deck: %w", err)
	}
	return nil
}

// nextDeck resolves the membership of a fresh deck, consuming a viable
// pregenerated deck when one is available. Consumption is detected by the
// first guid and clears the slot, re-triggering background regeneration.
func (s *clientDeckService) nextDeck(ctx context.Context, inputs deckInputs, online bool) ([]models.ArrayItem, error) {
	slotKey := models.KeyPregeneratedOffline
	if online {
		slotKey = models.KeyPregeneratedOnline
	}
	stored := s.storedPregenerated(ctx, slotKey)

	var membership []models.ArrayItem
	consumed := false
	if viable := s.viablePregenerated(stored, inputs); len(viable) > 0 {
		membership = s.restamp(viable)
		consumed = true
	} else {
		membership = s.toMembership(s.generateDeck(inputs, online))
	}

	if consumed {
		if err := setSetting(ctx, s.settings, slotKey, nil); err != nil {
			return nil, fmt.Errorf("clear pregenerated deck slot: %w", err)
		}
		s.kickPregeneration(ctx)
	}
	return membership, nil
}

func (s *clientDeckService) persistDeck(ctx context.Context, inputs deckInputs, membership []models.ArrayItem, newDay bool) error {
	if err := s.arrays.Replace(ctx, models.KeyCurrentDeck, membership); err != nil {
		return fmt.Errorf("replace deck membership: %w", err)
	}
	if newDay {
		if err := s.arrays.Replace(ctx, models.KeyShuffledOut, nil); err != nil {
			return fmt.Errorf("clear shuffled-out pool: %w", err)
		}
	}
	if err := setSetting(ctx, s.settings, models.KeyShuffleCount, inputs.shuffleCount); err != nil {
		return fmt.Errorf("save shuffle budget: %w", err)
	}
	if err := setSetting(ctx, s.settings, models.KeyLastShuffleReset, inputs.lastReset); err != nil {
		return fmt.Errorf("save shuffle reset date: %w", err)
	}

	ops := []models.PendingOperation{
		snapshotOp(models.KeyCurrentDeck, membership),
		snapshotOp(models.KeyShuffleCount, inputs.shuffleCount),
		snapshotOp(models.KeyLastShuffleReset, inputs.lastReset),
	}
	if newDay {
		ops = append(ops, snapshotOp(models.KeyShuffledOut, []models.ArrayItem{}))
	}
	return s.queueDeckOps(ctx, ops...)
}

func (s *clientDeckService) queueDeckOps(ctx context.Context, ops ...models.PendingOperation) error {
	for _, op := range ops {
		if err := s.queue.QueueAndAttempt(ctx, op); err != nil {
			return fmt.Errorf("queue %s update: %w", op.Key, err)
		}
	}
	return nil
}

// generateDeck builds one candidate deck, at most deckSize items, no
// duplicate guids, sorted newest-first.
func (s *clientDeckService) generateDeck(inputs deckInputs, online bool) []models.FeedItem {
	pool := eligiblePool(inputs)

	probesCache := make(map[string]itemProbes, len(pool))
	probesFor := func(item models.FeedItem) itemProbes {
		if cached, ok := probesCache[item.GUID]; ok {
			return cached
		}
		probes := probeItem(item)
		probesCache[item.GUID] = probes
		return probes
	}

	picked := make([]models.FeedItem, 0, deckSize)
	pickedSet := make(map[string]bool, deckSize)
	pick := func(item models.FeedItem) {
		if len(picked) >= deckSize || pickedSet[item.GUID] {
			return
		}
		pickedSet[item.GUID] = true
		picked = append(picked, item)
	}

	if online {
		// Recency bucket.
		cutoff := s.now().Add(-recencyWindow)
		fresh := 0
		for _, item := range pool {
			if fresh >= recencyMax {
				break
			}
			if item.PublishedAt().After(cutoff) {
				pick(item)
				fresh++
			}
		}

		// One representative per category, in fixed priority order.
		categories := []func(itemProbes) bool{
			func(p itemProbes) bool { return p.hasLink },
			func(p itemProbes) bool { return p.questionTitle },
			func(p itemProbes) bool { return p.questionFirst },
			func(p itemProbes) bool { return p.questionLast },
			func(p itemProbes) bool { return p.hasImage },
			func(p itemProbes) bool { return p.longForm() },
			func(p itemProbes) bool { return p.shortForm() },
		}
		for _, matches := range categories {
			for _, item := range pool {
				if pickedSet[item.GUID] {
					continue
				}
				if matches(probesFor(item)) {
					pick(item)
					break
				}
			}
		}

		// Random fill from the rest of the pool.
		rest := make([]models.FeedItem, 0, len(pool))
		for _, item := range pool {
			if !pickedSet[item.GUID] {
				rest = append(rest, item)
			}
		}
		rand.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, item := range rest {
			pick(item)
		}

		// Resurface the oldest shuffled-out items that were never read.
		if len(picked) < deckSize {
			resurfaced := make([]models.ArrayItem, len(inputs.shuffled))
			copy(resurfaced, inputs.shuffled)
			sort.SliceStable(resurfaced, func(i, j int) bool {
				return resurfaced[i].EventAt < resurfaced[j].EventAt
			})
			for _, entry := range resurfaced {
				guid := strings.ToLower(entry.GUID)
				if inputs.readSet[guid] {
					continue
				}
				if item, ok := inputs.byGUID[guid]; ok {
					pick(item)
				}
			}
		}

		// Last resort: oldest items regardless of read state, so the deck is
		// never smaller than available content allows.
		if len(picked) < deckSize {
			for i := len(inputs.items) - 1; i >= 0; i-- {
				pick(inputs.items[i])
			}
		}
	} else {
		// Offline: link-outs and media-heavy items are less useful, filter
		// them out first.
		keep := make([]models.FeedItem, 0, len(pool))
		var outFiltered []models.FeedItem
		for _, item := range pool {
			p := probesFor(item)
			if p.hasLink || p.hasImage || p.question() {
				outFiltered = append(outFiltered, item)
				continue
			}
			keep = append(keep, item)
		}

		// Too strict for the available content: let the filtered classes
		// back in, most tolerable first.
		restoreOrder := []func(itemProbes) bool{
			func(p itemProbes) bool { return p.hasImage },
			func(p itemProbes) bool { return p.hasLink },
			func(p itemProbes) bool { return p.questionLast },
			func(p itemProbes) bool { return p.questionFirst },
			func(p itemProbes) bool { return p.questionTitle },
		}
		restored := make(map[string]bool)
		for _, matches := range restoreOrder {
			if len(keep) >= deckSize {
				break
			}
			for _, item := range outFiltered {
				if len(keep) >= deckSize {
					break
				}
				if restored[item.GUID] || !matches(probesFor(item)) {
					continue
				}
				restored[item.GUID] = true
				keep = append(keep, item)
			}
		}

		cutoff := s.now().Add(-recencyWindow)
		fresh := 0
		for _, item := range keep {
			if fresh >= recencyMax {
				break
			}
			if item.PublishedAt().After(cutoff) {
				pick(item)
				fresh++
			}
		}
		// Remainder oldest-first.
		sort.SliceStable(keep, func(i, j int) bool { return keep[i].Timestamp < keep[j].Timestamp })
		for _, item := range keep {
			pick(item)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Timestamp > picked[j].Timestamp })
	return picked
}

// eligiblePool applies the keyword blacklist and then the eligibility
// fallback chain: unread and unshuffled, unread, unshuffled, everything.
func eligiblePool(inputs deckInputs) []models.FeedItem {
	candidates := make([]models.FeedItem, 0, len(inputs.items))
	for _, item := range inputs.items {
		if inputs.excluded[strings.ToLower(item.GUID)] {
			continue
		}
		if blacklisted(item, inputs.blacklist) {
			continue
		}
		candidates = append(candidates, item)
	}

	filters := []func(models.FeedItem) bool{
		func(item models.FeedItem) bool {
			guid := strings.ToLower(item.GUID)
			return !inputs.readSet[guid] && !inputs.shuffledSet[guid]
		},
		func(item models.FeedItem) bool { return !inputs.readSet[strings.ToLower(item.GUID)] },
		func(item models.FeedItem) bool { return !inputs.shuffledSet[strings.ToLower(item.GUID)] },
		func(models.FeedItem) bool { return true },
	}
	for _, keep := range filters {
		var pool []models.FeedItem
		for _, item := range candidates {
			if keep(item) {
				pool = append(pool, item)
			}
		}
		if len(pool) > 0 {
			return pool
		}
	}
	return nil
}

func blacklisted(item models.FeedItem, blacklist []string) bool {
	if len(blacklist) == 0 {
		return false
	}
	haystack := strings.ToLower(item.Title + " " + item.Description)
	for _, keyword := range blacklist {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func allRead(membership []models.ArrayItem, readSet map[string]bool) bool {
	for _, member := range membership {
		if !readSet[strings.ToLower(member.GUID)] {
			return false
		}
	}
	return len(membership) > 0
}

func (s *clientDeckService) filteredView(ctx context.Context, filter models.DeckFilter) (models.DeckState, error) {
	collection := models.KeyRead
	if filter == models.FilterStarred {
		collection = models.KeyStarred
	}

	entries, err := s.arrays.List(ctx, collection)
	if err != nil {
		return models.DeckState{}, fmt.Errorf("list %s collection: %w", collection, err)
	}
	guids := make([]string, 0, len(entries))
	for _, entry := range entries {
		guids = append(guids, strings.ToLower(entry.GUID))
	}

	items, err := s.feedItems.ListByGUIDs(ctx, guids)
	if err != nil {
		return models.DeckState{}, fmt.Errorf("resolve %s items: %w", collection, err)
	}

	count, err := int64Setting(ctx, s.settings, models.KeyShuffleCount)
	if err != nil {
		return models.DeckState{}, err
	}
	lastReset, err := stringSetting(ctx, s.settings, models.KeyLastShuffleReset)
	if err != nil {
		return models.DeckState{}, err
	}

	return models.DeckState{
		Deck:                 items,
		ShuffleCount:         int(count),
		LastShuffleResetDate: lastReset,
	}, nil
}

func (s *clientDeckService) loadDeckInputs(ctx context.Context) (deckInputs, error) {
	inputs := deckInputs{
		readSet:     make(map[string]bool),
		shuffledSet: make(map[string]bool),
		excluded:    make(map[string]bool),
	}

	items, err := s.feedItems.ListAll(ctx)
	if err != nil {
		return inputs, fmt.Errorf("list feed items: %w", err)
	}
	inputs.items = items
	inputs.byGUID = make(map[string]models.FeedItem, len(items))
	for _, item := range items {
		inputs.byGUID[strings.ToLower(item.GUID)] = item
	}

	read, err := s.arrays.List(ctx, models.KeyRead)
	if err != nil {
		return inputs, fmt.Errorf("list read collection: %w", err)
	}
	for _, entry := range read {
		inputs.readSet[strings.ToLower(entry.GUID)] = true
	}

	inputs.shuffled, err = s.arrays.List(ctx, models.KeyShuffledOut)
	if err != nil {
		return inputs, fmt.Errorf("list shuffled-out collection: %w", err)
	}
	for _, entry := range inputs.shuffled {
		inputs.shuffledSet[strings.ToLower(entry.GUID)] = true
	}

	inputs.membership, err = s.arrays.List(ctx, models.KeyCurrentDeck)
	if err != nil {
		return inputs, fmt.Errorf("list deck membership: %w", err)
	}

	count, err := int64Setting(ctx, s.settings, models.KeyShuffleCount)
	if err != nil {
		return inputs, err
	}
	inputs.shuffleCount = int(count)

	inputs.lastReset, err = stringSetting(ctx, s.settings, models.KeyLastShuffleReset)
	if err != nil {
		return inputs, err
	}

	blacklist, err := settingValue(ctx, s.settings, models.KeyKeywordBlacklist)
	if err != nil {
		return inputs, err
	}
	inputs.blacklist = toStringSlice(blacklist)

	return inputs, nil
}

// resolveDeck maps membership guids to cached items, newest-first. Members
// without a cached body are simply not shown.
func (s *clientDeckService) resolveDeck(inputs deckInputs, membership []models.ArrayItem) []models.FeedItem {
	deck := make([]models.FeedItem, 0, len(membership))
	for _, member := range membership {
		if item, ok := inputs.byGUID[strings.ToLower(member.GUID)]; ok {
			deck = append(deck, item)
		}
	}
	sort.SliceStable(deck, func(i, j int) bool { return deck[i].Timestamp > deck[j].Timestamp })
	return deck
}

func (s *clientDeckService) storedPregenerated(ctx context.Context, slotKey string) []models.ArrayItem {
	value, err := settingValue(ctx, s.settings, slotKey)
	if err != nil || value == nil {
		return nil
	}

	entries, ok := value.([]any)
	if !ok {
		return nil
	}
	items := make([]models.ArrayItem, 0, len(entries))
	for _, raw := range entries {
		entry, isMap := raw.(map[string]any)
		if !isMap {
			continue
		}
		guid, _ := entry["guid"].(string)
		if guid == "" {
			continue
		}
		eventAt, _ := entry["eventAt"].(string)
		items = append(items, models.ArrayItem{GUID: strings.ToLower(guid), EventAt: eventAt})
	}
	return items
}

// viablePregenerated filters a stored candidate deck down to members that
// still exist and are still unread.
func (s *clientDeckService) viablePregenerated(stored []models.ArrayItem, inputs deckInputs) []models.ArrayItem {
	var viable []models.ArrayItem
	for _, member := range stored {
		guid := strings.ToLower(member.GUID)
		if inputs.readSet[guid] {
			continue
		}
		if _, exists := inputs.byGUID[guid]; !exists {
			continue
		}
		viable = append(viable, member)
	}
	return viable
}

func (s *clientDeckService) restamp(members []models.ArrayItem) []models.ArrayItem {
	addedAt := s.now().UTC().Format(time.RFC3339)
	stamped := make([]models.ArrayItem, 0, len(members))
	for _, member := range members {
		stamped = append(stamped, models.ArrayItem{GUID: member.GUID, EventAt: addedAt})
	}
	return stamped
}

func (s *clientDeckService) toMembership(deck []models.FeedItem) []models.ArrayItem {
	addedAt := s.now().UTC().Format(time.RFC3339)
	membership := make([]models.ArrayItem, 0, len(deck))
	for _, item := range deck {
		membership = append(membership, models.ArrayItem{GUID: strings.ToLower(item.GUID), EventAt: addedAt})
	}
	return membership
}

func snapshotOp(key string, value any) models.PendingOperation {
	return models.PendingOperation{
		Type:  models.OpSimpleUpdate,
		Key:   key,
		Value: value,
	}
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
