// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StateKind distinguishes scalar settings from guid-keyed collections.
type StateKind string

const (
	KindSimple StateKind = "simple"
	KindArray  StateKind = "array"
)

// MergeMode controls how a pull reconciles a server snapshot with the local
// collection.
type MergeMode string

const (
	// MergeModeMerge adds server items missing locally and, for full
	// (non-partial) responses only, removes local items absent from the
	// server snapshot.
	MergeModeMerge MergeMode = "merge"
	// MergeModeReplace clears the local collection and writes the server
	// snapshot verbatim.
	MergeModeReplace MergeMode = "replace"
)

// StateKeyDef describes one syncable unit of user state. The sync machinery
// refuses to touch keys that are not registered in [StateKeys]: registration
// is what ties a key to its store, reconciliation policy and delta operation
// type, so behaviour never has to be inferred from the key name.
type StateKeyDef struct {
	// Key is the canonical name under which the state is addressed, both
	// locally and on the remote profile API.
	Key string
	// Store is the logical local collection the state lives in. Array keys
	// use the key itself; simple keys share the userSettings store.
	Store string
	// Kind is simple or array.
	Kind StateKind
	// LocalOnly state never leaves the device and is skipped by every
	// push and pull.
	LocalOnly bool
	// Merge selects the pull reconciliation policy for array keys.
	Merge MergeMode
	// DeltaOp is the pending-operation type used for incremental add/remove
	// mutations of this collection. Empty for keys whose mutations travel as
	// full simpleUpdate snapshots.
	DeltaOp OperationType
	// TimestampField names the per-item event timestamp field of an array
	// collection (readAt, starredAt, addedAt, shuffledAt).
	TimestampField string
	// Default is the value reported before anything has been stored.
	Default any
}

// Array state key names, plus the shared store simple keys live in.
const (
	KeyRead           = "read"
	KeyStarred        = "starred"
	KeyCurrentDeck    = "currentDeckGuids"
	KeyShuffledOut    = "shuffledOutGuids"
	StoreUserSettings = "userSettings"
)

// Simple state key names.
const (
	KeyLastStateSync       = "lastStateSync"
	KeyLastFeedSync        = "lastFeedSync"
	KeySyncEnabled         = "syncEnabled"
	KeyTheme               = "theme"
	KeyThemeStyle          = "themeStyle"
	KeyThemeStyleLight     = "themeStyleLight"
	KeyThemeStyleDark      = "themeStyleDark"
	KeyImagesEnabled       = "imagesEnabled"
	KeyOpenURLsInNewTab    = "openUrlsInNewTabEnabled"
	KeyAnimationSpeed      = "animationSpeed"
	KeyRSSFeeds            = "rssFeeds"
	KeyKeywordBlacklist    = "keywordBlacklist"
	KeyShuffleCount        = "shuffleCount"
	KeyLastShuffleReset    = "lastShuffleResetDate"
	KeyFontSize            = "fontSize"
	KeyFeedWidth           = "feedWidth"
	KeyPregeneratedOnline  = "pregeneratedOnlineDeck"
	KeyPregeneratedOffline = "pregeneratedOfflineDeck"
	KeyDeviceID            = "deviceID"
)

// StateKeys is the declarative registry of every syncable key. Adding a new
// collection means adding a row here, not branching in the queue or puller.
var StateKeys = map[string]StateKeyDef{
	KeyRead: {
		Key: KeyRead, Store: KeyRead, Kind: KindArray,
		Merge: MergeModeMerge, DeltaOp: OpReadDelta, TimestampField: "readAt",
		Default: []ArrayItem{},
	},
	KeyStarred: {
		Key: KeyStarred, Store: KeyStarred, Kind: KindArray,
		Merge: MergeModeMerge, DeltaOp: OpStarDelta, TimestampField: "starredAt",
		Default: []ArrayItem{},
	},
	KeyCurrentDeck: {
		Key: KeyCurrentDeck, Store: KeyCurrentDeck, Kind: KindArray,
		Merge: MergeModeMerge, TimestampField: "addedAt",
		Default: []ArrayItem{},
	},
	KeyShuffledOut: {
		Key: KeyShuffledOut, Store: KeyShuffledOut, Kind: KindArray,
		Merge: MergeModeMerge, TimestampField: "shuffledAt",
		Default: []ArrayItem{},
	},

	KeyLastStateSync:       {Key: KeyLastStateSync, Store: StoreUserSettings, Kind: KindSimple, Default: ""},
	KeyLastFeedSync:        {Key: KeyLastFeedSync, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: int64(0)},
	KeySyncEnabled:         {Key: KeySyncEnabled, Store: StoreUserSettings, Kind: KindSimple, Default: true},
	KeyTheme:               {Key: KeyTheme, Store: StoreUserSettings, Kind: KindSimple, Default: "dark"},
	KeyThemeStyle:          {Key: KeyThemeStyle, Store: StoreUserSettings, Kind: KindSimple, Default: "originalDark"},
	KeyThemeStyleLight:     {Key: KeyThemeStyleLight, Store: StoreUserSettings, Kind: KindSimple, Default: "originalLight"},
	KeyThemeStyleDark:      {Key: KeyThemeStyleDark, Store: StoreUserSettings, Kind: KindSimple, Default: "originalDark"},
	KeyImagesEnabled:       {Key: KeyImagesEnabled, Store: StoreUserSettings, Kind: KindSimple, Default: true},
	KeyOpenURLsInNewTab:    {Key: KeyOpenURLsInNewTab, Store: StoreUserSettings, Kind: KindSimple, Default: true},
	KeyAnimationSpeed:      {Key: KeyAnimationSpeed, Store: StoreUserSettings, Kind: KindSimple, Default: 100},
	KeyRSSFeeds:            {Key: KeyRSSFeeds, Store: StoreUserSettings, Kind: KindSimple, Default: map[string]any{}},
	KeyKeywordBlacklist:    {Key: KeyKeywordBlacklist, Store: StoreUserSettings, Kind: KindSimple, Default: []string{}},
	KeyShuffleCount:        {Key: KeyShuffleCount, Store: StoreUserSettings, Kind: KindSimple, Default: DailyShuffleLimit},
	KeyLastShuffleReset:    {Key: KeyLastShuffleReset, Store: StoreUserSettings, Kind: KindSimple, Default: nil},
	KeyFontSize:            {Key: KeyFontSize, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: 100},
	KeyFeedWidth:           {Key: KeyFeedWidth, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: 50},
	KeyPregeneratedOnline:  {Key: KeyPregeneratedOnline, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: nil},
	KeyPregeneratedOffline: {Key: KeyPregeneratedOffline, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: nil},
	KeyDeviceID:            {Key: KeyDeviceID, Store: StoreUserSettings, Kind: KindSimple, LocalOnly: true, Default: ""},
}

// ArraySnapshotKeys are the array-shaped keys whose full snapshots travel as
// simpleUpdate operations and are gzip-compressed before transmission.
var ArraySnapshotKeys = map[string]bool{
	KeyRead:        true,
	KeyStarred:     true,
	KeyCurrentDeck: true,
	KeyShuffledOut: true,
}

// KeyForOperation resolves the state key a pending operation refers to, via
// the registry for delta types. Returns "" for operations that do not map to
// a registered key.
func KeyForOperation(op PendingOperation) string {
	if op.Key != "" {
		return op.Key
	}
	for key, def := range StateKeys {
		if def.DeltaOp != "" && def.DeltaOp == op.Type {
			return key
		}
	}
	return ""
}
