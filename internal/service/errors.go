package service

import "errors"

var (
	// ErrOperationInvalid marks a malformed pending operation. Such
	// operations are dropped before buffering, never retried.
	ErrOperationInvalid = errors.New("invalid pending operation")

	// ErrSyncDisabled is returned when a push or pull is requested while the
	// user has sync turned off and the caller did not force it.
	ErrSyncDisabled = errors.New("sync is disabled")

	// ErrFlushInterrupted marks a batch flush that fail-stopped before
	// sending every chunk; the unsent operations stay buffered.
	ErrFlushInterrupted = errors.New("flush interrupted")

	// ErrOffline is returned when network work is requested while the
	// device has no server connectivity. Buffered state is untouched.
	ErrOffline = errors.New("device is offline")
)
