package recovery

import (
	"errors"
	"strings"
	"testing"
)

func TestStrictStrategyFails(t *testing.T) {
	s := NewStrictStrategy()
	got := s.OnError(errors.New("lost payload"), Location{Component: "materializer", ObjectNum: 4})
	if got != ActionFail {
		t.Fatalf("action = %v, want ActionFail", got)
	}
}

func TestLenientStrategyAccumulates(t *testing.T) {
	s := NewLenientStrategy()
	base := errors.New("missing offset")
	if got := s.OnError(base, Location{Component: "xref", ObjectNum: 7, ByteOffset: 42}); got != ActionWarn {
		t.Fatalf("action = %v, want ActionWarn", got)
	}
	if len(s.Errors) != 1 {
		t.Fatalf("accumulated %d errors, want 1", len(s.Errors))
	}
	if !errors.Is(s.Errors[0], base) {
		t.Fatalf("accumulated error does not wrap the original: %v", s.Errors[0])
	}
	if !strings.Contains(s.Errors[0].Error(), "xref") {
		t.Fatalf("accumulated error missing component: %v", s.Errors[0])
	}
}
