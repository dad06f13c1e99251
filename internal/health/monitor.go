// Package health provides the periodic database liveness probe behind the
// connection-status display.
package health

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"kud-club-backend/internal/logger"
)

// DefaultInterval is how often the probe runs when not configured.
const DefaultInterval = 30 * time.Second

// Status is one probe result.
type Status struct {
	Healthy   bool
	CheckedAt time.Time
	Err       error
}

// Monitor runs a trivial liveness query on a fixed interval and hands every
// result to the registered callback. Probe failures are logged and reported
// as an unhealthy status; they never stop the loop. The callback runs on the
// probe goroutine, so it must hand results over to the presentation layer
// itself (the UI is never mutated from here).
type Monitor struct {
	db       *sql.DB
	interval time.Duration
	onStatus func(Status)

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

// NewMonitor creates a monitor. A zero or negative interval falls back to
// DefaultInterval. onStatus may be nil.
func NewMonitor(db *sql.DB, interval time.Duration, onStatus func(Status)) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{db: db, interval: interval, onStatus: onStatus}
}

// Start begins probing: once immediately, then on the fixed interval.
// Calling Start on a running monitor is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}

	m.cron = cron.New()
	_, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.interval), m.runProbe)
	if err != nil {
		logger.Error("Failed to register health probe", "error", err)
		return
	}
	m.started = true
	m.cron.Start()
	go m.runProbe()
	logger.Info("Database health monitor started", "interval", m.interval.String())
}

// Stop cancels the probe schedule and waits for a running probe to finish.
// Stop is idempotent; the monitor must be stopped when its owning view goes
// away so the timer does not leak across view transitions.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.started = false
	logger.Info("Database health monitor stopped")
}

func (m *Monitor) runProbe() {
	m.report(m.Probe(context.Background()))
}

// Probe executes the liveness query once and returns the result.
func (m *Monitor) Probe(ctx context.Context) Status {
	status := Status{CheckedAt: time.Now()}
	var one int
	if err := m.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		status.Err = err
		logger.Debug("Database health probe failed", "error", err)
		return status
	}
	status.Healthy = true
	return status
}

func (m *Monitor) report(s Status) {
	if m.onStatus != nil {
		m.onStatus(s)
	}
}
