package sched

import (
	"reflect"
	"testing"
	"time"
)

func TestAfterFiresInDueOrder(t *testing.T) {
	s := New()
	var got []string
	s.After(300*time.Millisecond, func() { got = append(got, "c") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(100*time.Millisecond, func() { got = append(got, "b") })

	if n := s.Advance(99 * time.Millisecond); n != 0 {
		t.Fatalf("expected nothing due, fired %d", n)
	}
	if n := s.Advance(time.Second); n != 3 {
		t.Fatalf("expected 3 callbacks, fired %d", n)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if s.Now() != 1099*time.Millisecond {
		t.Fatalf("unexpected clock %v", s.Now())
	}
	if s.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", s.Pending())
	}
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	s := New()
	count := 0
	var tm *Timer
	tm = s.Every(500*time.Millisecond, func() {
		count++
		if count == 3 {
			tm.Stop()
		}
	})
	s.Advance(10 * time.Second)
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}
	if tm.Active() {
		t.Fatalf("timer should be inactive")
	}
}

func TestCallbacksScheduledDuringAdvance(t *testing.T) {
	s := New()
	var at []time.Duration
	s.After(time.Second, func() {
		at = append(at, s.Now())
		s.After(500*time.Millisecond, func() { at = append(at, s.Now()) })
	})
	s.Advance(2 * time.Second)
	want := []time.Duration{time.Second, 1500 * time.Millisecond}
	if !reflect.DeepEqual(at, want) {
		t.Fatalf("fired at %v, want %v", at, want)
	}
}

func TestTimerStop(t *testing.T) {
	s := New()
	fired := false
	tm := s.After(time.Second, func() { fired = true })
	if !tm.Stop() {
		t.Fatalf("first Stop should report true")
	}
	if tm.Stop() {
		t.Fatalf("second Stop should report false")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestGroupStopCancelsOwnedTimers(t *testing.T) {
	s := New()
	g := s.NewGroup()
	other := 0
	owned := 0
	g.After(time.Second, func() { owned++ })
	g.Every(200*time.Millisecond, func() { owned++ })
	s.After(time.Second, func() { other++ })
	if g.Live() != 2 {
		t.Fatalf("expected 2 live timers, got %d", g.Live())
	}

	g.Stop()
	if !g.Stopped() || g.Live() != 0 {
		t.Fatalf("group not disposed: stopped=%v live=%d", g.Stopped(), g.Live())
	}
	late := g.After(time.Millisecond, func() { owned++ })
	if late.Active() {
		t.Fatalf("timer created after Stop must be inert")
	}

	s.Advance(5 * time.Second)
	if owned != 0 {
		t.Fatalf("owned callbacks fired %d times after Stop", owned)
	}
	if other != 1 {
		t.Fatalf("unowned timer should still fire, got %d", other)
	}
}

func TestGroupReleasesFiredOneShots(t *testing.T) {
	s := New()
	g := s.NewGroup()
	g.After(time.Millisecond, func() {})
	s.Advance(time.Second)
	if g.Live() != 0 {
		t.Fatalf("fired one-shot should be released, live=%d", g.Live())
	}
}
