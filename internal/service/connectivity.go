// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync/atomic"

// Connectivity is the shared last-known reachability flag for the sync
// server. The heartbeat worker owns the periodic probes; the network-facing
// services read the flag so push, pull and feed work become a no-op while
// the device is offline, and flip it themselves when a request dies at the
// transport level.
//
// The zero state is online: a process without a heartbeat (one-shot
// commands) still reaches for the network, and the first failed request
// corrects the flag.
type Connectivity struct {
	offline atomic.Bool
}

func NewConnectivity() *Connectivity {
	return &Connectivity{}
}

// Online reports the last known reachability of the sync server.
func (c *Connectivity) Online() bool {
	return !c.offline.Load()
}

// SetOnline records a probe or request outcome.
func (c *Connectivity) SetOnline(online bool) {
	c.offline.Store(!online)
}
