package models

// SimpleStateRecord is one scalar piece of user state as stored locally.
// LastModified holds the opaque token last returned by the server for this
// key; it is sent back as a conditional header on pulls. Empty means the
// value has never been confirmed by the server.
type SimpleStateRecord struct {
	Key          string `json:"key"`
	Value        any    `json:"value"`
	LastModified string `json:"lastModified,omitempty"`
}

// ArrayItem is one entry of a guid-keyed collection (read, starred, deck
// membership, shuffled-out). Identity is the guid; the local numeric row id
// is storage-only and never transmitted. EventAt is the per-collection event
// timestamp (readAt, starredAt, addedAt or shuffledAt on the wire, named via
// the registry's TimestampField).
type ArrayItem struct {
	GUID    string `json:"guid"`
	EventAt string `json:"eventAt"`
}

// ShuffleState is the daily shuffle budget and the calendar day it was last
// reset on (device-local calendar, time.Time.Format("Mon Jan 2 2006") style
// day strings are compared for equality only).
type ShuffleState struct {
	ShuffleCount         int    `json:"shuffleCount"`
	LastShuffleResetDate string `json:"lastShuffleResetDate"`
}

// DailyShuffleLimit is the number of deck shuffles granted per calendar day.
const DailyShuffleLimit = 2

// DeckFilter selects which view of the item set a deck pass produces. Only
// the unread filter maintains a persisted curated deck; the others derive
// their result directly from the replicated read/starred collections.
type DeckFilter string

const (
	FilterUnread  DeckFilter = "unread"
	FilterRead    DeckFilter = "read"
	FilterStarred DeckFilter = "starred"
)

// DeckState is the outcome of a deck management pass: the resolved visible
// deck plus the replicated state that backs it.
type DeckState struct {
	Deck                 []FeedItem  `json:"deck"`
	DeckMembership       []ArrayItem `json:"currentDeckGuids"`
	ShuffledOut          []ArrayItem `json:"shuffledOutGuids"`
	ShuffleCount         int         `json:"shuffleCount"`
	LastShuffleResetDate string      `json:"lastShuffleResetDate"`
}

// PregeneratedDecks holds the two precomputed candidate decks, one per
// connectivity assumption. Local-only: consumed and cleared atomically when a
// reset uses one, then regenerated in the background.
type PregeneratedDecks struct {
	Online  []ArrayItem `json:"online,omitempty"`
	Offline []ArrayItem `json:"offline,omitempty"`
}
