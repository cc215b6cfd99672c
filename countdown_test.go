package pollexec

import (
	"errors"
	"testing"
)

// TestCountdown_YieldsThenCompletes advances manually, checking the
// self-wake on every pending outcome.
func TestCountdown_YieldsThenCompletes(t *testing.T) {
	task := NewCountdown(2, "done")
	w := newRecordWaker()

	for i := 0; i < 2; i++ {
		outcome, err := task.Advance(NewTaskContext(w))
		if err != nil {
			t.Fatal("advance failed:", err)
		}
		if outcome.IsReady() {
			t.Fatalf("advance %d: ready too early", i)
		}
		if got := w.count(); got != int64(i+1) {
			t.Fatalf("advance %d: want %d self-wakes, got %d", i, i+1, got)
		}
	}
	if got := task.Remaining(); got != 0 {
		t.Fatalf("want 0 remaining, got %d", got)
	}

	outcome, err := task.Advance(NewTaskContext(w))
	if err != nil {
		t.Fatal("final advance failed:", err)
	}
	if !outcome.IsReady() || outcome.Value() != "done" {
		t.Fatalf("want ready %q, got %+v", "done", outcome)
	}
	// Completion itself does not wake: the executor already has control.
	if got := w.count(); got != 2 {
		t.Fatalf("want 2 wakes total, got %d", got)
	}
}

// TestCountdown_StrictPostCompletion: the strict policy fails loudly rather
// than silently recomputing.
func TestCountdown_StrictPostCompletion(t *testing.T) {
	task := NewCountdown(0, 5)
	outcome, err := task.Advance(NewTaskContext(nil))
	if err != nil || !outcome.IsReady() {
		t.Fatalf("want immediate completion, got %+v, %v", outcome, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := task.Advance(NewTaskContext(nil)); !errors.Is(err, ErrAdvanceAfterCompletion) {
			t.Fatalf("advance %d past completion: want ErrAdvanceAfterCompletion, got %v", i, err)
		}
	}
}

func TestCountdown_NegativeYields(t *testing.T) {
	task := NewCountdown(-1, true)
	outcome, err := task.Advance(NewTaskContext(nil))
	if err != nil {
		t.Fatal("advance failed:", err)
	}
	if !outcome.IsReady() || outcome.Value() != true {
		t.Fatalf("want immediate completion, got %+v", outcome)
	}
}
