package sim

import "testing"

func TestMultiWriterFansOut(t *testing.T) {
	a, b := &collectWriter{}, &collectWriter{}
	mw := NewMultiWriter(a, nil, b)
	ev := TraceEvent{Simulator: SimQueue, Kind: "flood"}
	if err := mw.WriteEvent(ev); err != nil {
		t.Fatalf("WriteEvent: %v", err)
	}
	if err := mw.WriteEvents([]TraceEvent{ev, ev}); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if len(a.events) != 3 || len(b.events) != 3 {
		t.Fatalf("expected 3 events each, got %d and %d", len(a.events), len(b.events))
	}
}

func TestMultiWriterStopsOnError(t *testing.T) {
	after := &collectWriter{}
	mw := NewMultiWriter(failingWriter{}, after)
	if err := mw.WriteEvent(TraceEvent{}); err == nil {
		t.Fatalf("expected error")
	}
	if len(after.events) != 0 {
		t.Fatalf("writers after a failure should not be called")
	}
}
