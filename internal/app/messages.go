// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// deck reader client surfaces.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgNoShufflesLeft is shown when a shuffle is requested with an
	// exhausted daily budget.
	MsgNoShufflesLeft = "No shuffles left for today!"

	// MsgSyncFinishedWithIssues summarises a full sync in which one or more
	// stages failed; the local state is still usable.
	MsgSyncFinishedWithIssues = "Sync finished with issues."

	// MsgSyncComplete summarises a fully successful sync pass.
	MsgSyncComplete = "Sync complete."

	// MsgSyncAlreadyRunning is shown when a sync is requested while another
	// one is still in flight.
	MsgSyncAlreadyRunning = "Sync already in progress."

	// MsgSyncDisabled is shown when a sync is requested while the user has
	// synchronisation turned off.
	MsgSyncDisabled = "Sync is disabled in settings."

	// MsgDeviceOffline is shown when a sync is requested without server
	// connectivity.
	MsgDeviceOffline = "Device is offline, sync skipped."

	// MsgTokenIsExpired is shown when the configured bearer token is
	// syntactically valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"
)
