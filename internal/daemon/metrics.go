package daemon

import (
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// Metrics tracks daemon statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	FetchesTotal     atomic.Int64
	UpdatesTotal     atomic.Int64
	FailuresTotal    atomic.Int64
	ConnectedClients atomic.Int64
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the request counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncFetches increments the page fetch counter
func (m *Metrics) IncFetches() {
	m.FetchesTotal.Add(1)
}

// IncUpdates increments the status update counter
func (m *Metrics) IncUpdates() {
	m.UpdatesTotal.Add(1)
}

// IncFailures increments the failed request counter
func (m *Metrics) IncFailures() {
	m.FailuresTotal.Add(1)
}

// SetConnectedClients sets the current connected clients count
func (m *Metrics) SetConnectedClients(count int64) {
	m.ConnectedClients.Store(count)
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() rpc.MetricsSnapshot {
	return rpc.MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		FetchesTotal:     m.FetchesTotal.Load(),
		UpdatesTotal:     m.UpdatesTotal.Load(),
		FailuresTotal:    m.FailuresTotal.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime),
	}
}
