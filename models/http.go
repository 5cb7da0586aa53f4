// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// StateResponse is the body of GET /api/profile/:key. Value is left raw so
// the puller can decode it as either a scalar or an item slice depending on
// the key's registered kind.
type StateResponse struct {
	Value        json.RawMessage `json:"value"`
	LastModified string          `json:"lastModified"`
	// Partial marks a delta response produced by a since-filter. A partial
	// view can prove presence but never absence, so merge-mode pulls must
	// not remove anything based on it.
	Partial bool `json:"partial,omitempty"`
}

// OperationStatusSuccess is the per-operation status the server reports for
// a committed operation. Anything else leaves the operation buffered.
const OperationStatusSuccess = "success"

// OperationResult is the server's verdict on a single pushed operation,
// correlated by the client-issued buffer id.
type OperationResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// BatchRequest is the body sent to POST /api/profile: a FIFO chunk of
// buffered operations.
type BatchRequest struct {
	Operations []PendingOperation `json:"operations"`
}

// BatchResult is the body of POST /api/profile.
type BatchResult struct {
	Results    []OperationResult `json:"results"`
	ServerTime string            `json:"serverTime"`
}

// RefreshRequest asks the feed API for item headers newer than Since
// (unix milliseconds).
type RefreshRequest struct {
	Since int64 `json:"since"`
}

// ItemHeader is a guid+timestamp pair from a refresh delta; bodies are
// fetched separately through the list endpoint.
type ItemHeader struct {
	GUID      string `json:"guid"`
	Timestamp int64  `json:"timestamp"`
}

// RefreshResponse is the body of POST /api/refresh.
type RefreshResponse struct {
	Items      []ItemHeader `json:"items"`
	ServerTime string       `json:"serverTime"`
}

// ListRequest asks for full item bodies for the given guids.
type ListRequest struct {
	GUIDs []string `json:"guids"`
}
