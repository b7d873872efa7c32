package model

import "time"

// Outcome is the result of a single download unit.
//
// A unit succeeded iff Err is nil. Filename is set only on success.
type Outcome struct {
	Index    int
	Bytes    int64
	Filename string
	Err      error
}

// Succeeded reports whether the unit produced a file.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// BatchResult aggregates the outcomes of one download invocation.
//
// It is derived after all units have finished and is never persisted.
type BatchResult struct {
	// ID correlates log lines of the same batch.
	ID string

	Total        int
	SuccessCount int
	FailureCount int
	TotalBytes   int64
	Elapsed      time.Duration

	// Outcomes is indexed by unit ordinal, not by completion order.
	Outcomes []Outcome
}

// Failures returns the failed outcomes in index order.
func (r *BatchResult) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Throughput returns bytes per second over the batch's wall-clock time.
func (r *BatchResult) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalBytes) / r.Elapsed.Seconds()
}
