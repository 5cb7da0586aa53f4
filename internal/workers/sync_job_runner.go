package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/service"
)

// SyncJobRunner adapts the periodic sync job to the Worker interface so it
// can be started alongside the other background workers.
type SyncJobRunner struct {
	ctx         context.Context
	job         service.ClientSyncJob
	interval    time.Duration
	idleTimeout time.Duration
}

func NewSyncJobRunner(ctx context.Context, job service.ClientSyncJob, interval, idleTimeout time.Duration) *SyncJobRunner {
	return &SyncJobRunner{
		ctx:         ctx,
		job:         job,
		interval:    interval,
		idleTimeout: idleTimeout,
	}
}

// Run implements Worker.
func (r *SyncJobRunner) Run() {
	r.job.Start(r.ctx, r.interval, r.idleTimeout)
}
