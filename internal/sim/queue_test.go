package sim

import (
	"testing"
	"time"

	"webhook-lab/internal/config"
)

func TestReduceAssignsOnePerTick(t *testing.T) {
	queue := []int{7, 8, 9}
	workers := []Worker{{ID: 1, Busy: true, Item: 6}, {ID: 2}, {ID: 3}}

	nq, nw, effects := Reduce(queue, workers)
	if len(effects) != 1 || effects[0] != (StartWork{WorkerID: 2, ItemID: 7}) {
		t.Fatalf("unexpected effects %v", effects)
	}
	if len(nq) != 2 || nq[0] != 8 {
		t.Fatalf("unexpected queue %v", nq)
	}
	if !nw[1].Busy || nw[1].Item != 7 || nw[2].Busy {
		t.Fatalf("unexpected workers %+v", nw)
	}
	if workers[1].Busy || len(queue) != 3 {
		t.Fatalf("inputs were modified")
	}
}

func TestReduceNoAssignment(t *testing.T) {
	busy := []Worker{{ID: 1, Busy: true}, {ID: 2, Busy: true}}
	if _, _, eff := Reduce([]int{1}, busy); len(eff) != 0 {
		t.Fatalf("all busy: expected no effects, got %v", eff)
	}
	if _, _, eff := Reduce(nil, []Worker{{ID: 1}}); len(eff) != 0 {
		t.Fatalf("empty queue: expected no effects, got %v", eff)
	}
}

func TestQueueDrainsFlood(t *testing.T) {
	s, g := newTestGroup()
	cfg := config.Default()
	q := NewQueue(g, cfg.Timings, cfg.Queue, nil)

	q.Flood()
	pending := q.Pending()
	if len(pending) != 10 || pending[0] != 0 || pending[9] != 9 {
		t.Fatalf("expected events #0..#9 pending, got %v", pending)
	}
	s.Advance(cfg.Timings.QueueTick)
	busy := 0
	for _, w := range q.Workers() {
		if w.Busy {
			busy++
		}
	}
	if busy != 1 || len(q.Pending()) != 9 {
		t.Fatalf("first tick: busy=%d pending=%d", busy, len(q.Pending()))
	}
	if q.Workers()[0].Item != 0 {
		t.Fatalf("head of queue should go to the first worker")
	}

	prev := q.Persisted()
	prevPending := len(q.Pending())
	for i := 0; i < 40; i++ {
		s.Advance(cfg.Timings.QueueTick)
		if q.Persisted() < prev {
			t.Fatalf("persisted count decreased")
		}
		if n := len(q.Pending()); prevPending-n > 1 || n > prevPending {
			t.Fatalf("tick %d: pending went from %d to %d, want at most one assignment", i+2, prevPending, n)
		}
		prev = q.Persisted()
		prevPending = len(q.Pending())
	}
	if q.Persisted() != 10 || len(q.Pending()) != 0 {
		t.Fatalf("expected drained queue, persisted=%d pending=%d", q.Persisted(), len(q.Pending()))
	}
	for _, w := range q.Workers() {
		if w.Busy {
			t.Fatalf("worker %d still busy", w.ID)
		}
	}

	snap, err := q.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if snap.Enqueued != 10 || snap.Persisted != 10 || snap.QueueDepth != 0 || snap.BusyWorkers != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestQueueIDsContinueAcrossFloods(t *testing.T) {
	_, g := newTestGroup()
	cfg := config.Default()
	q := NewQueue(g, cfg.Timings, cfg.Queue, nil)
	q.Flood()
	q.Flood()
	pending := q.Pending()
	for i, id := range pending {
		if id != i {
			t.Fatalf("pending[%d] = %d, want %d", i, id, i)
		}
	}
}

func TestQueueStopsOnTeardown(t *testing.T) {
	s, g := newTestGroup()
	cfg := config.Default()
	q := NewQueue(g, cfg.Timings, cfg.Queue, nil)
	q.Flood()
	s.Advance(cfg.Timings.QueueTick)
	g.Stop()
	s.Advance(time.Minute)
	if q.Persisted() != 0 || len(q.Pending()) != 9 {
		t.Fatalf("queue mutated after teardown: persisted=%d pending=%d", q.Persisted(), len(q.Pending()))
	}
}
