// Package job provides the analysis job lifecycle and the runner that
// drives a job through the processing pipeline.
package job

import (
	"errors"
	"fmt"
	"sync"
)

// State represents the lifecycle state of an analysis job.
type State int

const (
	// StatePending - Job is accepted and queued, not yet running.
	StatePending State = iota
	// StateProcessing - Job is running through the pipeline.
	StateProcessing
	// StateCompleted - Job finished and a report was saved.
	// This is a terminal state.
	StateCompleted
	// StateFailed - Job failed at some stage. A failed job may be retried.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateProcessing:
		return "PROCESSING"
	case StateCompleted:
		return "COMPLETED"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", s)
	}
}

// IsTerminal returns true if no further transitions are allowed.
// Only COMPLETED is terminal; FAILED jobs can be retried.
func (s State) IsTerminal() bool {
	return s == StateCompleted
}

// Errors for invalid state transitions.
var (
	ErrAlreadyProcessing = errors.New("analysis is already processing")
	ErrAlreadyCompleted  = errors.New("analysis is already completed")
	ErrNotProcessing     = errors.New("analysis is not processing")
)

// Lifecycle manages the state machine for a single analysis job.
// Thread-safe for concurrent access.
//
// State transitions:
//
//	PENDING → PROCESSING → COMPLETED
//	              │            (terminal)
//	              └──→ FAILED ──→ PROCESSING (retry)
//
// Rules:
//   - PENDING/FAILED: Begin() starts (or restarts) processing
//   - PROCESSING: exactly one of Complete() or Fail() ends the run
//   - COMPLETED: all transitions return errors
type Lifecycle struct {
	mu         sync.RWMutex
	analysisID int64
	state      State
}

// NewLifecycle creates a new job lifecycle in PENDING state.
func NewLifecycle(analysisID int64) *Lifecycle {
	return &Lifecycle{
		analysisID: analysisID,
		state:      StatePending,
	}
}

// AnalysisID returns the analysis ID.
func (l *Lifecycle) AnalysisID() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.analysisID
}

// State returns the current state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// IsCompleted returns true if the job reached COMPLETED.
func (l *Lifecycle) IsCompleted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateCompleted
}

// IsFailed returns true if the last run failed.
func (l *Lifecycle) IsFailed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateFailed
}

// Begin validates and transitions to PROCESSING.
// Allowed from PENDING and from FAILED (retry).
func (l *Lifecycle) Begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case StatePending, StateFailed:
		l.state = StateProcessing
		return nil
	case StateProcessing:
		return ErrAlreadyProcessing
	case StateCompleted:
		return ErrAlreadyCompleted
	default:
		return fmt.Errorf("unexpected state: %v", l.state)
	}
}

// Complete transitions a PROCESSING job to COMPLETED.
func (l *Lifecycle) Complete() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateProcessing {
		if l.state == StateCompleted {
			return ErrAlreadyCompleted
		}
		return ErrNotProcessing
	}
	l.state = StateCompleted
	return nil
}

// Fail transitions a PROCESSING job to FAILED.
// The job may be retried with Begin().
func (l *Lifecycle) Fail() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateProcessing {
		if l.state == StateCompleted {
			return ErrAlreadyCompleted
		}
		return ErrNotProcessing
	}
	l.state = StateFailed
	return nil
}
