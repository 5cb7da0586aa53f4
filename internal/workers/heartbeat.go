// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/service"
)

const pingTimeout = 5 * time.Second

// Heartbeat probes server reachability on a fixed interval and maintains the
// shared connectivity flag the services gate on. When a probe succeeds while
// the flag says offline the device just came back, so a full sync is started
// to drain the buffer that accumulated in the meantime.
type Heartbeat struct {
	ctx      context.Context
	adapter  adapter.ServerAdapter
	sync     service.ClientSyncService
	net      *service.Connectivity
	interval time.Duration
}

func NewHeartbeat(ctx context.Context, serverAdapter adapter.ServerAdapter, syncService service.ClientSyncService, net *service.Connectivity, interval time.Duration) *Heartbeat {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Heartbeat{
		ctx:      ctx,
		adapter:  serverAdapter,
		sync:     syncService,
		net:      net,
		interval: interval,
	}
}

// Run implements Worker. The probe loop exits when the context given to
// NewHeartbeat is cancelled.
func (h *Heartbeat) Run() {
	go h.loop()
}

func (h *Heartbeat) loop() {
	log := logger.FromContext(h.ctx).With().Str("func", "Heartbeat").Logger()

	// Establish the starting state so a healthy startup does not count as a
	// connectivity transition.
	h.net.SetOnline(h.ping())

	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-t.C:
			nowOnline := h.ping()
			wasOnline := h.net.Online()
			h.net.SetOnline(nowOnline)

			// The flag can also go false between ticks, when a service
			// request dies mid-sync; the next good probe recovers that case
			// the same way.
			if nowOnline && !wasOnline {
				log.Info().Msg("connectivity regained, starting full sync")
				h.sync.FullSync(h.ctx)
			}
		}
	}
}

func (h *Heartbeat) ping() bool {
	ctx, cancel := context.WithTimeout(h.ctx, pingTimeout)
	defer cancel()
	return h.adapter.Ping(ctx) == nil
}
