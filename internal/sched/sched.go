// Package sched is a cooperative, virtual-time timer queue.
//
// Callbacks never run on their own goroutine: they fire from Advance, on the
// caller's goroutine, in (due time, schedule order). Each mounted section owns
// a Group; stopping the group cancels every timer it created.
package sched

import (
	"container/heap"
	"time"
)

// Scheduler holds a virtual clock and the pending timers.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerHeap
}

// New returns a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	s       *Scheduler
	group   *Group
	due     time.Duration
	seq     uint64
	period  time.Duration
	fn      func()
	index   int
	stopped bool
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int { return len(s.queue) }

// After schedules fn to run once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.schedule(d, 0, fn, nil)
}

// Every schedules fn to run every d, first firing d from now.
// A non-positive period is treated as a one-shot timer.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	return s.schedule(d, d, fn, nil)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func(), g *Group) *Timer {
	if d < 0 {
		d = 0
	}
	if period < 0 {
		period = 0
	}
	s.seq++
	t := &Timer{s: s, group: g, due: s.now + d, seq: s.seq, period: period, fn: fn}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock forward by d and fires every callback that falls
// due, including ones scheduled by callbacks during this call. It returns the
// number of callbacks fired.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due
		if next.period > 0 {
			s.seq++
			next.due += next.period
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			next.stopped = true
			next.release()
		}
		next.fn()
		fired++
	}
	s.now = target
	return fired
}

// Stop cancels the timer. It reports whether a future firing was prevented.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 && t.index < len(t.s.queue) && t.s.queue[t.index] == t {
		heap.Remove(&t.s.queue, t.index)
	}
	t.release()
	return true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

func (t *Timer) release() {
	if t.group != nil {
		delete(t.group.timers, t)
	}
}

// Group is an owned set of timers scoped to one component lifetime.
type Group struct {
	s       *Scheduler
	timers  map[*Timer]struct{}
	stopped bool
}

// NewGroup returns a group creating its timers on s.
func (s *Scheduler) NewGroup() *Group {
	return &Group{s: s, timers: make(map[*Timer]struct{})}
}

// After schedules a one-shot timer owned by the group.
func (g *Group) After(d time.Duration, fn func()) *Timer {
	return g.add(d, 0, fn)
}

// Every schedules a repeating timer owned by the group.
func (g *Group) Every(d time.Duration, fn func()) *Timer {
	return g.add(d, d, fn)
}

func (g *Group) add(d, period time.Duration, fn func()) *Timer {
	if g.stopped {
		return &Timer{stopped: true, index: -1}
	}
	t := g.s.schedule(d, period, fn, g)
	g.timers[t] = struct{}{}
	return t
}

// Live returns the number of timers the group still owns.
func (g *Group) Live() int { return len(g.timers) }

// Stopped reports whether the group has been disposed.
func (g *Group) Stopped() bool { return g.stopped }

// Stop cancels every owned timer and refuses new ones.
func (g *Group) Stop() {
	if g.stopped {
		return
	}
	g.stopped = true
	for t := range g.timers {
		t.Stop()
	}
	g.timers = map[*Timer]struct{}{}
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
