package metrics

import (
	"sync"
	"time"
)

type stepStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about pipeline steps and
// invocation outcomes. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu          sync.Mutex
	steps       map[string]*stepStats
	invocations map[int]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		steps:       make(map[string]*stepStats),
		invocations: make(map[int]int),
		otel:        otel,
	}
}

// RecordStepAttempt increments counters for a pipeline step and stores the
// last observed latency.
func (r *Recorder) RecordStepAttempt(step string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(step)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordStepAttempt(step, duration, err)
	}
}

// RecordInvocation counts one completed invocation by result status code.
func (r *Recorder) RecordInvocation(status int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.invocations[status]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordInvocation(status)
	}
}

// StepCalls returns the total attempts recorded for a step.
func (r *Recorder) StepCalls(step string) int {
	return r.Snapshot(step).Calls
}

// StepErrors returns the total failed attempts recorded for a step.
func (r *Recorder) StepErrors(step string) int {
	return r.Snapshot(step).Errors
}

// LastStepLatency returns the last recorded latency for a step.
func (r *Recorder) LastStepLatency(step string) time.Duration {
	return r.Snapshot(step).LastLatency
}

// Invocations returns the number of invocations that finished with the given
// status code.
func (r *Recorder) Invocations(status int) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invocations[status]
}

// Snapshot is a copy of the current stats for one step.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(step string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(step)
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) ensureStats(step string) *stepStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.steps[step]
	if !ok {
		stats = &stepStats{}
		r.steps[step] = stats
	}
	return stats
}

func (r *Recorder) snapshot(step string) stepStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.steps[step]; ok && stats != nil {
		return *stats
	}
	return stepStats{}
}
