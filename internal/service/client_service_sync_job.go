package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-reader/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.FullSync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls FullSync every interval. If interval
// is zero or negative it defaults to 5 minutes. Ticks are skipped while the user
// has been idle longer than idleTimeout (zero disables the idle check). The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval, idleTimeout time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		log := logger.FromContext(jobCtx).With().Str("func", "clientSyncJob").Logger()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if idleTimeout > 0 {
					last := j.syncService.LastActivity()
					if last.IsZero() || time.Since(last) > idleTimeout {
						log.Debug().Msg("user idle, skipping periodic sync")
						continue
					}
				}
				report := j.syncService.FullSync(jobCtx)
				switch {
				case report.Offline:
					log.Debug().Msg("device offline, periodic sync skipped")
				case len(report.StageErrors) > 0:
					log.Warn().Strs("errors", report.StageErrors).Msg("periodic sync finished with issues")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
