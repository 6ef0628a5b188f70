package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	clientErrors    uint64
	serverErrors    uint64
	totalDurationMs uint64
	snapshotsSaved  uint64
	feedsBuilt      uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) SnapshotSaved() {
	atomic.AddUint64(&c.snapshotsSaved, 1)
}

func (c *Collector) FeedBuilt() {
	atomic.AddUint64(&c.feedsBuilt, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"clientErrorsTotal":   atomic.LoadUint64(&c.clientErrors),
		"errorsTotal":         atomic.LoadUint64(&c.serverErrors),
		"avgDurationMs":       avg,
		"totalDurationMs":     totalMs,
		"snapshotsSavedTotal": atomic.LoadUint64(&c.snapshotsSaved),
		"feedsBuiltTotal":     atomic.LoadUint64(&c.feedsBuilt),
	}
}
