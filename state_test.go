package pollexec

import "testing"

func TestExecState_String(t *testing.T) {
	cases := map[ExecState]string{
		StateIdle:     "Idle",
		StatePolling:  "Polling",
		StateWaiting:  "Waiting",
		StateDone:     "Done",
		ExecState(99): "Unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("%d.String(): want %q, got %q", state, want, got)
		}
	}
}

func TestExecState_Transitions(t *testing.T) {
	var s execState
	if got := s.Load(); got != StateIdle {
		t.Fatalf("zero value: want Idle, got %v", got)
	}

	if !s.TryTransition(StateIdle, StatePolling) {
		t.Fatal("Idle->Polling should succeed")
	}
	if s.TryTransition(StateIdle, StatePolling) {
		t.Fatal("Idle->Polling should fail once Polling")
	}
	if got := s.Load(); got != StatePolling {
		t.Fatalf("want Polling, got %v", got)
	}

	s.Store(StateWaiting)
	if got := s.Load(); got != StateWaiting {
		t.Fatalf("want Waiting, got %v", got)
	}
}
