// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract the CLI drives. One-shot commands call
// Bootstrap directly instead; Run is the resident mode with the background
// workers attached.
type Client interface {
	// Run starts the resident client and blocks until exit.
	Run() error
}
