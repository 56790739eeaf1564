// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/health-panda/internal/logger"
)

// DefaultProfileRefreshInterval is used when Start gets a non-positive
// interval.
const DefaultProfileRefreshInterval = 5 * time.Minute

// profileRefresher is the part of the session the job depends on.
type profileRefresher interface {
	RefreshProfile(ctx context.Context) error
}

type profileRefreshJob struct {
	session profileRefresher
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProfileRefreshJob creates a job that calls session.RefreshProfile on a
// ticker. The job is idle until Start is called.
func NewProfileRefreshJob(session profileRefresher, logger *logger.Logger) ProfileRefreshJob {
	return &profileRefreshJob{session: session, logger: logger}
}

// Start implements ProfileRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called. Refresh errors are logged and do not stop the
// job.
func (j *profileRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultProfileRefreshInterval
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.session.RefreshProfile(jobCtx); err != nil {
					j.logger.Debug().Err(err).Str("func", "profileRefreshJob.Start").Msg("scheduled profile refresh failed")
				}
			}
		}
	}()
}

// Stop implements ProfileRefreshJob. Safe to call when the job is not
// running.
func (j *profileRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
