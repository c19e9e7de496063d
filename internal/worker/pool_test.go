package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	counter *atomic.Int64
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countingResult{err: fmt.Errorf("job failed")}
	}
	return &countingResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	for i := 0; i < 20; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}
	results := pool.Wait()

	if counter.Load() != 20 {
		t.Errorf("Expected 20 executions, got %d", counter.Load())
	}
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&countingJob{counter: &counter})
	pool.Submit(&countingJob{counter: &counter, fail: true})
	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failed result, got %d", failures)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countingJob{counter: &counter})
	results := pool.Wait()

	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestLimiter_PerDomain(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://a.example/page") {
		t.Error("Expected first request to a.example to pass")
	}
	if limiter.Allow("https://a.example/other") {
		t.Error("Expected second immediate request to a.example to be limited")
	}
	// A different domain carries its own budget.
	if !limiter.Allow("https://b.example/page") {
		t.Error("Expected first request to b.example to pass")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	// Drain the burst.
	_ = limiter.Allow("https://slow.example/")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, "https://slow.example/"); err == nil {
		t.Error("Expected context deadline error while rate limited")
	}
}

func TestLimiter_BadURL(t *testing.T) {
	limiter := NewLimiter(1, 1)
	if limiter.Allow("://bad") {
		t.Error("Expected unparseable URL to be rejected")
	}
	if err := limiter.Wait(context.Background(), "://bad"); err == nil {
		t.Error("Expected parse error from Wait")
	}
}
