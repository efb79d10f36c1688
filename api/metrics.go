package api

import (
	"sort"
	"sync"
	"time"
)

// RouteMetrics aggregates request metrics for a single method+path pair
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector keeps in-memory per-route request metrics. Collection must
// never block a request, so observations go through a buffered channel and are
// dropped when the buffer is full.
type MetricsCollector struct {
	mu            sync.RWMutex
	routeMetrics  map[string]*RouteMetrics
	totalRequests int64
	totalErrors   int64
	startedAt     time.Time
	obsChan       chan observation
}

type observation struct {
	method   string
	path     string
	status   int
	duration time.Duration
}

var globalMetrics *MetricsCollector
var metricsOnce sync.Once

// GetMetrics returns the global metrics collector, initializing it on first use
func GetMetrics() *MetricsCollector {
	metricsOnce.Do(func() {
		globalMetrics = &MetricsCollector{
			routeMetrics: make(map[string]*RouteMetrics),
			startedAt:    time.Now(),
			obsChan:      make(chan observation, 1000),
		}
		go globalMetrics.process()
	})
	return globalMetrics
}

// Record queues an observation without blocking. Full buffer means the sample is
// dropped; losing a metric is acceptable, slowing a request is not.
func (mc *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	select {
	case mc.obsChan <- observation{method: method, path: path, status: status, duration: duration}:
	default:
	}
}

func (mc *MetricsCollector) process() {
	for obs := range mc.obsChan {
		mc.mu.Lock()
		key := obs.method + " " + obs.path
		rm, ok := mc.routeMetrics[key]
		if !ok {
			rm = &RouteMetrics{Method: obs.method, Path: obs.path, MinTime: obs.duration}
			mc.routeMetrics[key] = rm
		}
		rm.Count++
		rm.TotalTime += obs.duration
		rm.AvgTime = rm.TotalTime / time.Duration(rm.Count)
		if obs.duration < rm.MinTime {
			rm.MinTime = obs.duration
		}
		if obs.duration > rm.MaxTime {
			rm.MaxTime = obs.duration
		}
		rm.LastRequest = time.Now()
		mc.totalRequests++
		if obs.status >= 400 {
			rm.ErrorCount++
			mc.totalErrors++
		}
		mc.mu.Unlock()
	}
}

// Summary returns overall counters and the per-route metrics sorted by request
// count, busiest first
func (mc *MetricsCollector) Summary() (int64, int64, time.Time, []*RouteMetrics) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	routes := make([]*RouteMetrics, 0, len(mc.routeMetrics))
	for _, rm := range mc.routeMetrics {
		c := *rm
		routes = append(routes, &c)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Count > routes[j].Count })
	return mc.totalRequests, mc.totalErrors, mc.startedAt, routes
}
