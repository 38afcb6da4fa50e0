package services

import (
	"fmt"
	"sync"
	"testing"
)

func TestAnalyticsCollector_Usage(t *testing.T) {
	c := NewAnalyticsCollector()

	c.Record("/menu", 200, 10)
	c.Record("/menu", 200, 30)
	c.Record("/cart", 200, 5)
	c.Record("", 404, 1) // unrouted request normalizes to "/"

	report := c.Usage(2)
	if report.TotalRequests != 4 {
		t.Errorf("total = %d, want 4", report.TotalRequests)
	}
	if len(report.TopEndpoints) != 2 {
		t.Fatalf("expected top 2, got %d", len(report.TopEndpoints))
	}
	top := report.TopEndpoints[0]
	if top.Path != "/menu" || top.Count != 2 || top.AverageDurationMs != 20 {
		t.Errorf("unexpected top endpoint: %+v", top)
	}
	// single-count endpoints tie-break by path
	if report.TopEndpoints[1].Path != "/" {
		t.Errorf("second endpoint = %q, want \"/\"", report.TopEndpoints[1].Path)
	}
}

func TestAnalyticsCollector_Errors(t *testing.T) {
	c := NewAnalyticsCollector()

	c.Record("/a", 200, 1)
	c.Record("/a", 404, 1)
	c.Record("/a", 404, 1)
	c.Record("/a", 500, 1)

	report := c.Errors()
	if report.TotalErrors != 3 || report.Total4xx != 2 || report.Total5xx != 1 {
		t.Fatalf("unexpected error report: %+v", report)
	}
	if len(report.StatusCounts) != 2 || report.StatusCounts[0].StatusCode != 404 {
		t.Fatalf("status counts must be sorted by code: %+v", report.StatusCounts)
	}
}

func TestAnalyticsCollector_ConcurrentRecords(t *testing.T) {
	c := NewAnalyticsCollector()

	const workers = 20
	const perWorker = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("/p/%d", i%4)
			for j := 0; j < perWorker; j++ {
				c.Record(path, 200, 1)
			}
		}(i)
	}
	wg.Wait()

	report := c.Usage(10)
	if report.TotalRequests != workers*perWorker {
		t.Fatalf("total = %d, want %d", report.TotalRequests, workers*perWorker)
	}
	var sum int64
	for _, e := range report.TopEndpoints {
		sum += e.Count
	}
	if sum != workers*perWorker {
		t.Fatalf("per-path counts sum to %d, want %d", sum, workers*perWorker)
	}
}
