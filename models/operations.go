package models

import "time"

// OperationType enumerates the closed set of mutation intents the client can
// queue for the remote profile store.
type OperationType string

const (
	// OpSimpleUpdate replaces the remote value of a simple key (or a full
	// array snapshot for the keys in [ArraySnapshotKeys]).
	OpSimpleUpdate OperationType = "simpleUpdate"
	// OpReadDelta adds or removes a single guid in the remote read set.
	OpReadDelta OperationType = "readDelta"
	// OpStarDelta adds or removes a single guid in the remote starred set.
	OpStarDelta OperationType = "starDelta"
)

// DeltaAction is the direction of an array delta.
type DeltaAction string

const (
	ActionAdd    DeltaAction = "add"
	ActionRemove DeltaAction = "remove"
)

// PendingOperation is one durable mutation intent. It is written to the
// local buffer before any network attempt and deleted only after the server
// confirms it, so delivery is at-least-once and local removal exactly-once.
//
// Exactly one of the two payload shapes is populated, depending on Type:
// simpleUpdate carries Key+Value, the delta types carry GUID+Action.
type PendingOperation struct {
	// LocalID is the buffer-assigned identifier. It is storage-local: the
	// server echoes it back in per-operation results but never stores it.
	LocalID int64 `json:"id,omitempty"`

	Type OperationType `json:"type"`

	Key   string `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`

	GUID   string      `json:"guid,omitempty"`
	Action DeltaAction `json:"action,omitempty"`

	// Compressed marks a simpleUpdate whose Value is a gzip+base64 encoded
	// JSON snapshot rather than the raw value.
	Compressed bool `json:"compressed,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Valid reports whether the operation is well-formed enough to buffer. A
// simpleUpdate with a nil value is defined as a no-op, not an error.
func (op PendingOperation) Valid() bool {
	switch op.Type {
	case OpSimpleUpdate:
		return op.Key != "" && op.Value != nil
	case OpReadDelta, OpStarDelta:
		return op.GUID != "" && (op.Action == ActionAdd || op.Action == ActionRemove)
	default:
		return false
	}
}
