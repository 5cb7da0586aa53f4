// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the deck-reader client application runtime.
//
// It wires configuration, local storage, the sync transport, client services
// and background workers into a single process lifecycle.
package client
