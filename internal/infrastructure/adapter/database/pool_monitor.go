package database

import (
	"time"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
)

// PoolMonitor periodically logs connection pool statistics so saturation
// during registration bursts shows up in the logs before it shows up as
// request latency.
type PoolMonitor struct {
	manager  *Manager
	logger   coreport.Logger
	stopChan chan struct{}
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(manager *Manager, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		manager:  manager,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring at the given interval
func (m *PoolMonitor) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.logStats()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop halts monitoring
func (m *PoolMonitor) Stop() {
	close(m.stopChan)
}

func (m *PoolMonitor) logStats() {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		m.logger.Error("Failed to read connection pool stats", map[string]any{
			"error": err.Error(),
		})
		return
	}

	stats := sqlDB.Stats()
	m.logger.Debug("Connection pool stats", map[string]any{
		"open":             stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration_ms": stats.WaitDuration.Milliseconds(),
	})
}
