package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/view"
)

// DefaultHealthInterval is the polling period of the health monitor.
const DefaultHealthInterval = 30 * time.Second

// CheckHealth probes the backend once, records the connection state and
// renders the indicator.
func (c *Coordinator) CheckHealth(ctx context.Context) view.HealthView {
	resp, err := c.backend.Health(ctx)
	state := view.ClassifyHealth(resp, err)
	if err != nil {
		c.logger.Debug("health check failed", zap.Error(err))
		resp = nil
	}

	c.mu.Lock()
	c.state.Connected = state == view.HealthConnected
	c.health = state
	c.lastHealth = resp
	c.mu.Unlock()

	v := view.BuildHealth(state, resp, c.Table())
	c.surface.RenderHealth(v)
	return v
}

// HealthMonitor polls the backend on a fixed interval.
type HealthMonitor struct {
	coord    *Coordinator
	interval time.Duration
}

// NewHealthMonitor creates a monitor. A non-positive interval uses
// DefaultHealthInterval.
func NewHealthMonitor(coord *Coordinator, interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &HealthMonitor{coord: coord, interval: interval}
}

// Run checks immediately and then on every tick until ctx is done.
func (m *HealthMonitor) Run(ctx context.Context) {
	m.coord.CheckHealth(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.coord.CheckHealth(ctx)
		}
	}
}
