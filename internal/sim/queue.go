package sim

import (
	"fmt"

	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
)

// Worker is one member of the fixed worker pool. Item is only meaningful
// while Busy.
type Worker struct {
	ID   int
	Busy bool
	Item int
}

// StartWork is the effect of assigning a queued item to a worker.
type StartWork struct {
	WorkerID int
	ItemID   int
}

// Reduce computes one scheduler tick. The lowest-indexed idle worker takes
// the head of the queue; at most one assignment happens per tick. The inputs
// are not modified.
func Reduce(queue []int, workers []Worker) ([]int, []Worker, []StartWork) {
	if len(queue) == 0 {
		return queue, workers, nil
	}
	for i, w := range workers {
		if w.Busy {
			continue
		}
		next := make([]Worker, len(workers))
		copy(next, workers)
		next[i].Busy = true
		next[i].Item = queue[0]
		rest := make([]int, len(queue)-1)
		copy(rest, queue[1:])
		return rest, next, []StartWork{{WorkerID: w.ID, ItemID: queue[0]}}
	}
	return queue, workers, nil
}

// Queue simulates a receiver that enqueues webhook events and drains them
// through a fixed pool of workers into a database.
type Queue struct {
	group   *sched.Group
	timings config.Timings
	tracer  *Tracer
	metrics *QueueMetrics

	flood     int
	queue     []int
	workers   []Worker
	nextID    int
	persisted int
}

// NewQueue creates the simulator and starts its scheduler tick.
func NewQueue(g *sched.Group, timings config.Timings, cfg config.Queue, tracer *Tracer) *Queue {
	q := &Queue{
		group:   g,
		timings: timings,
		tracer:  tracer,
		metrics: NewQueueMetrics(),
		flood:   cfg.FloodSize,
		workers: make([]Worker, cfg.Workers),
	}
	for i := range q.workers {
		q.workers[i].ID = i + 1
	}
	g.Every(timings.QueueTick, q.tick)
	return q
}

// Flood appends a batch of new events to the queue tail.
func (q *Queue) Flood() {
	for i := 0; i < q.flood; i++ {
		q.queue = append(q.queue, q.nextID)
		q.nextID++
	}
	q.metrics.enqueued.Add(float64(q.flood))
	q.metrics.depth.Set(float64(len(q.queue)))
	q.tracer.Emit(SimQueue, "flood", fmt.Sprintf("%d events enqueued", q.flood), SeverityInfo)
}

func (q *Queue) tick() {
	var effects []StartWork
	q.queue, q.workers, effects = Reduce(q.queue, q.workers)
	for _, eff := range effects {
		q.apply(eff)
	}
}

func (q *Queue) apply(eff StartWork) {
	q.metrics.depth.Set(float64(len(q.queue)))
	q.metrics.busy.Inc()
	q.tracer.Emit(SimQueue, "assign", fmt.Sprintf("Worker %d processing event #%d", eff.WorkerID, eff.ItemID), SeverityInfo)
	q.group.After(q.timings.QueueWorkDelay, func() {
		for i := range q.workers {
			if q.workers[i].ID == eff.WorkerID {
				q.workers[i].Busy = false
				q.workers[i].Item = 0
			}
		}
		q.persisted++
		q.metrics.busy.Dec()
		q.metrics.persisted.Inc()
		q.tracer.Emit(SimQueue, "persist", fmt.Sprintf("Event #%d saved to database", eff.ItemID), SeveritySuccess)
	})
}

// Pending returns the queued item ids, head first.
func (q *Queue) Pending() []int {
	out := make([]int, len(q.queue))
	copy(out, q.queue)
	return out
}

// Workers returns a snapshot of the worker pool.
func (q *Queue) Workers() []Worker {
	out := make([]Worker, len(q.workers))
	copy(out, q.workers)
	return out
}

// Persisted returns the number of events written to the database.
func (q *Queue) Persisted() int { return q.persisted }

// Metrics gathers the simulator's instruments.
func (q *Queue) Metrics() (MetricsSnapshot, error) { return q.metrics.Snapshot() }
