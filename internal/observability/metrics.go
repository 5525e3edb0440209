package observability

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters keyed by route.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	latencyTotal map[string]time.Duration
	startedAt    time.Time
}

// RouteCount is one counter row in a snapshot.
type RouteCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// RouteLatency is the mean latency of a route.
type RouteLatency struct {
	Key    string  `json:"key"`
	MeanMS float64 `json:"meanMs"`
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	UptimeSeconds int64          `json:"uptimeSeconds"`
	Requests      []RouteCount   `json:"requests"`
	Errors        []RouteCount   `json:"errors"`
	Latency       []RouteLatency `json:"latency"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencyTotal: make(map[string]time.Duration),
		startedAt:    time.Now(),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := method + " " + path + " " + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latencyTotal[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := method + " " + path + " " + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the counters, sorted by key.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		UptimeSeconds: int64(time.Since(m.startedAt).Seconds()),
		Requests:      sortedCounts(m.requestCount),
		Errors:        sortedCounts(m.errorCount),
		Latency:       make([]RouteLatency, 0, len(m.latencyTotal)),
	}
	for _, rc := range snap.Requests {
		mean := m.latencyTotal[rc.Key] / time.Duration(rc.Count)
		snap.Latency = append(snap.Latency, RouteLatency{Key: rc.Key, MeanMS: float64(mean) / float64(time.Millisecond)})
	}
	return snap
}

func sortedCounts(src map[string]int64) []RouteCount {
	out := make([]RouteCount, 0, len(src))
	for k, v := range src {
		out = append(out, RouteCount{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
