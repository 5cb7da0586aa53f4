package models

// PullOutcome is the per-key result of a delta pull pass.
type PullOutcome string

const (
	// PullOK means the key was fetched and reconciled into the local replica.
	PullOK PullOutcome = "ok"
	// PullNotModified means the server confirmed the local copy is current.
	PullNotModified PullOutcome = "not_modified"
	// PullSkippedPending means the key has unresolved buffered operations and
	// was left untouched to protect the local edits.
	PullSkippedPending PullOutcome = "skipped_pending"
	// PullSkippedDeferred means the caller excluded the key from this pass.
	PullSkippedDeferred PullOutcome = "skipped_deferred"
	// PullOffline means the server became unreachable before this key was
	// attempted; local state unchanged.
	PullOffline PullOutcome = "offline"
	// PullNoToken means no usable bearer token was available.
	PullNoToken PullOutcome = "no_token"
	// PullError means the fetch failed after retries; local state unchanged.
	PullError PullOutcome = "error"
)

// PullReport summarises a pull pass: one outcome per requested key plus the
// highest server modification token observed.
type PullReport struct {
	Outcomes  map[string]PullOutcome `json:"outcomes"`
	Watermark string                 `json:"watermark,omitempty"`
}

// Pulled returns the keys whose local replica was actually updated.
func (r PullReport) Pulled() []string {
	var keys []string
	for key, outcome := range r.Outcomes {
		if outcome == PullOK {
			keys = append(keys, key)
		}
	}
	return keys
}

// FlushReport summarises a batch flush of the pending-operation buffer.
type FlushReport struct {
	// Attempted is the number of buffered operations sent before the flush
	// finished or fail-stopped.
	Attempted int `json:"attempted"`
	// Confirmed is the number of operations the server accepted; exactly
	// these were removed from the buffer.
	Confirmed int `json:"confirmed"`
	// ChangedKeys are the state keys touched by confirmed operations, used
	// to trigger a targeted re-pull.
	ChangedKeys []string `json:"changedKeys,omitempty"`
}

// SyncReport is the aggregate outcome of one full sync pass. Stage failures
// are collected here instead of propagating to the caller: the optimistic
// local mutations already happened and stand regardless.
type SyncReport struct {
	// Skipped is true when another full sync was already in flight and this
	// invocation returned without doing anything.
	Skipped bool `json:"skipped,omitempty"`

	// SyncDisabled is true when the user has synchronisation turned off and
	// the flush stage therefore held the buffered operations back. The pull
	// stage still runs so the toggle can come back from the server.
	SyncDisabled bool `json:"syncDisabled,omitempty"`

	// Offline is true when the device had no server connectivity and the
	// whole pass was a no-op. The heartbeat starts a fresh sync once the
	// connection comes back.
	Offline bool `json:"offline,omitempty"`

	Flush FlushReport `json:"flush"`
	Pull  PullReport  `json:"pull"`

	// FeedItemsFetched is the number of new feed item bodies downloaded.
	FeedItemsFetched int `json:"feedItemsFetched"`

	// StageErrors holds one message per failed stage.
	StageErrors []string `json:"stageErrors,omitempty"`
}

// OK reports whether the pass ran at all and every stage finished without
// error.
func (r SyncReport) OK() bool {
	return !r.Skipped && !r.Offline && len(r.StageErrors) == 0
}
