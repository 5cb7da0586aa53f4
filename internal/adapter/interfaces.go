// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the deck-reader sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrTooManyRequests] for 429, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deck-reader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SetDeviceID stores the device identifier sent in the X-Device-ID
	// header of every request, letting the server ignore a device's own
	// echoed mutations.
	SetDeviceID(id string)

	// GetState fetches the remote value for a profile key via
	// GET /api/profile/:key. When etag is non-empty it is sent as
	// If-None-Match; a 304 answer is reported as [ErrNotModified]. When
	// since is non-zero it is passed as a delta filter and the server may
	// answer with a partial view. The returned string is the new entity tag
	// for the key, empty if the server sent none.
	GetState(ctx context.Context, key, etag string, since int64) (models.StateResponse, string, error)

	// PushOperations uploads a FIFO chunk of buffered operations via
	// POST /api/profile and returns the per-operation verdicts. The server
	// applies operations in order; delivery is at-least-once, so operations
	// must be idempotent server-side.
	PushOperations(ctx context.Context, ops []models.PendingOperation) (models.BatchResult, error)

	// RefreshFeed asks the feed pipeline for item headers newer than since
	// (unix milliseconds) via POST /api/refresh. A 429 answer is reported
	// as [ErrTooManyRequests] so the caller can back off.
	RefreshFeed(ctx context.Context, since int64) (models.RefreshResponse, error)

	// ListItems fetches full item bodies for the given guids via
	// POST /api/list.
	ListItems(ctx context.Context, guids []string) ([]models.FeedItem, error)

	// Ping probes server reachability. Used by the connectivity heartbeat;
	// a nil return means the device is online.
	Ping(ctx context.Context) error
}
