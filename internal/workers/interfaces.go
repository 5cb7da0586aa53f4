// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the client's resident background loops: the
// connectivity heartbeat and the idle-gated periodic sync job. The Workers
// aggregate starts them together when the app runs in resident mode.
package workers

// Worker is one background loop. Run starts it and returns immediately;
// implementations spawn their own goroutine and stop when the context they
// were built with is cancelled.
type Worker interface {
	Run()
}
