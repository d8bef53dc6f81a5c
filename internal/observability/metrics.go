package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory request counters. Enough for the ops
// endpoint; anything heavier belongs to an external collector.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	totalDuration map[string]time.Duration
}

// RouteStats is one row of a metrics snapshot.
type RouteStats struct {
	Route     string  `json:"route"`
	Count     int64   `json:"count"`
	AvgMillis float64 `json:"avg_ms"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		totalDuration: make(map[string]time.Duration),
	}
}

// RecordRequest increments the counter and accumulates latency per route.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalDuration[key] += duration
}

// RecordError increments error counters keyed by route and error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot returns the per-route request stats and the raw error counters.
func (m *Metrics) Snapshot() ([]RouteStats, map[string]int64) {
	if m == nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	routes := make([]RouteStats, 0, len(m.requestCount))
	for key, count := range m.requestCount {
		avg := float64(m.totalDuration[key].Microseconds()) / 1000.0 / float64(count)
		routes = append(routes, RouteStats{Route: key, Count: count, AvgMillis: avg})
	}
	errCounts := make(map[string]int64, len(m.errorCount))
	for key, count := range m.errorCount {
		errCounts[key] = count
	}
	return routes, errCounts
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
