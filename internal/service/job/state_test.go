package job

import (
	"testing"
)

func TestLifecycle_InitialState(t *testing.T) {
	lc := NewLifecycle(1)

	if lc.State() != StatePending {
		t.Errorf("expected StatePending, got %v", lc.State())
	}
	if lc.AnalysisID() != 1 {
		t.Errorf("expected analysis ID 1, got %v", lc.AnalysisID())
	}
	if lc.IsCompleted() {
		t.Error("expected IsCompleted to be false")
	}
	if lc.IsFailed() {
		t.Error("expected IsFailed to be false")
	}
}

func TestLifecycle_Begin_TransitionsToProcessing(t *testing.T) {
	lc := NewLifecycle(1)

	if err := lc.Begin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.State() != StateProcessing {
		t.Errorf("expected StateProcessing, got %v", lc.State())
	}
}

func TestLifecycle_Begin_FailsWhileProcessing(t *testing.T) {
	lc := NewLifecycle(1)
	lc.Begin()

	if err := lc.Begin(); err != ErrAlreadyProcessing {
		t.Errorf("expected ErrAlreadyProcessing, got %v", err)
	}
}

func TestLifecycle_Complete(t *testing.T) {
	lc := NewLifecycle(1)
	lc.Begin()

	if err := lc.Complete(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.State() != StateCompleted {
		t.Errorf("expected StateCompleted, got %v", lc.State())
	}
	if !lc.IsCompleted() {
		t.Error("expected IsCompleted to be true")
	}
}

func TestLifecycle_Complete_FailsWhenNotProcessing(t *testing.T) {
	lc := NewLifecycle(1)

	if err := lc.Complete(); err != ErrNotProcessing {
		t.Errorf("expected ErrNotProcessing, got %v", err)
	}
}

func TestLifecycle_CompletedIsTerminal(t *testing.T) {
	lc := NewLifecycle(1)
	lc.Begin()
	lc.Complete()

	if err := lc.Begin(); err != ErrAlreadyCompleted {
		t.Errorf("Begin: expected ErrAlreadyCompleted, got %v", err)
	}
	if err := lc.Complete(); err != ErrAlreadyCompleted {
		t.Errorf("Complete: expected ErrAlreadyCompleted, got %v", err)
	}
	if err := lc.Fail(); err != ErrAlreadyCompleted {
		t.Errorf("Fail: expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestLifecycle_Fail(t *testing.T) {
	lc := NewLifecycle(1)
	lc.Begin()

	if err := lc.Fail(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lc.State() != StateFailed {
		t.Errorf("expected StateFailed, got %v", lc.State())
	}
	if !lc.IsFailed() {
		t.Error("expected IsFailed to be true")
	}
}

func TestLifecycle_Fail_FailsWhenNotProcessing(t *testing.T) {
	lc := NewLifecycle(1)

	if err := lc.Fail(); err != ErrNotProcessing {
		t.Errorf("expected ErrNotProcessing, got %v", err)
	}
}

func TestLifecycle_FailedJobCanRetry(t *testing.T) {
	lc := NewLifecycle(1)
	lc.Begin()
	lc.Fail()

	// Retry after failure
	if err := lc.Begin(); err != nil {
		t.Fatalf("retry Begin failed: %v", err)
	}
	if lc.State() != StateProcessing {
		t.Errorf("expected StateProcessing after retry, got %v", lc.State())
	}

	// Retry can succeed
	if err := lc.Complete(); err != nil {
		t.Fatalf("retry Complete failed: %v", err)
	}
	if lc.State() != StateCompleted {
		t.Errorf("expected StateCompleted, got %v", lc.State())
	}
}

func TestLifecycle_FullCycle(t *testing.T) {
	lc := NewLifecycle(42)

	if err := lc.Begin(); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := lc.Complete(); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if lc.State() != StateCompleted {
		t.Errorf("expected StateCompleted, got %v", lc.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePending, "PENDING"},
		{StateProcessing, "PROCESSING"},
		{StateCompleted, "COMPLETED"},
		{StateFailed, "FAILED"},
		{State(99), "UNKNOWN(99)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestState_IsTerminal(t *testing.T) {
	tests := []struct {
		state      State
		isTerminal bool
	}{
		{StatePending, false},
		{StateProcessing, false},
		{StateCompleted, true},
		{StateFailed, false}, // failed jobs are retryable
	}

	for _, tt := range tests {
		if got := tt.state.IsTerminal(); got != tt.isTerminal {
			t.Errorf("State(%s).IsTerminal() = %v, want %v", tt.state, got, tt.isTerminal)
		}
	}
}
