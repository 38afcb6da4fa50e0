package services

import (
	"sort"
	"sync"
	"time"
)

// AnalyticsCollector aggregates request stats across handler goroutines.
// One mutex guards both tables; recording is a handful of map writes.
type AnalyticsCollector struct {
	mu          sync.Mutex
	startedAt   time.Time
	total       int64
	paths       map[string]*pathStats
	statusCodes map[int]int64
}

type pathStats struct {
	count   int64
	totalMs int64
}

func NewAnalyticsCollector() *AnalyticsCollector {
	return &AnalyticsCollector{
		startedAt:   time.Now().UTC(),
		paths:       make(map[string]*pathStats),
		statusCodes: make(map[int]int64),
	}
}

func (c *AnalyticsCollector) Record(path string, statusCode int, durationMs int64) {
	if path == "" {
		path = "/"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.paths[path]
	if !ok {
		st = &pathStats{}
		c.paths[path] = st
	}
	st.count++
	st.totalMs += durationMs
	c.total++
	c.statusCodes[statusCode]++
}

type EndpointUsage struct {
	Path              string  `json:"path"`
	Count             int64   `json:"count"`
	AverageDurationMs float64 `json:"averageDurationMs"`
}

type UsageReport struct {
	StartedAt     time.Time       `json:"startedAt"`
	TotalRequests int64           `json:"totalRequests"`
	TopEndpoints  []EndpointUsage `json:"topEndpoints"`
}

// Usage reports the busiest endpoints, ties broken by path.
func (c *AnalyticsCollector) Usage(top int) UsageReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	endpoints := make([]EndpointUsage, 0, len(c.paths))
	for path, st := range c.paths {
		endpoints = append(endpoints, EndpointUsage{
			Path:              path,
			Count:             st.count,
			AverageDurationMs: float64(st.totalMs) / float64(st.count),
		})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Count != endpoints[j].Count {
			return endpoints[i].Count > endpoints[j].Count
		}
		return endpoints[i].Path < endpoints[j].Path
	})
	if top > 0 && len(endpoints) > top {
		endpoints = endpoints[:top]
	}

	return UsageReport{
		StartedAt:     c.startedAt,
		TotalRequests: c.total,
		TopEndpoints:  endpoints,
	}
}

type StatusCodeCount struct {
	StatusCode int   `json:"statusCode"`
	Count      int64 `json:"count"`
}

type ErrorsReport struct {
	TotalErrors  int64             `json:"totalErrors"`
	Total4xx     int64             `json:"total4xx"`
	Total5xx     int64             `json:"total5xx"`
	StatusCounts []StatusCodeCount `json:"statusCounts"`
}

func (c *AnalyticsCollector) Errors() ErrorsReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	var report ErrorsReport
	for code, count := range c.statusCodes {
		if code < 400 {
			continue
		}
		report.StatusCounts = append(report.StatusCounts, StatusCodeCount{StatusCode: code, Count: count})
		if code < 500 {
			report.Total4xx += count
		} else {
			report.Total5xx += count
		}
	}
	report.TotalErrors = report.Total4xx + report.Total5xx
	sort.Slice(report.StatusCounts, func(i, j int) bool {
		return report.StatusCounts[i].StatusCode < report.StatusCounts[j].StatusCode
	})
	return report
}
