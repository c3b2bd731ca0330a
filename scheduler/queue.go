package scheduler

import "sort"

// ReadyQueue tracks which tasks are waiting to arrive and which are eligible to run.
// Ready tasks are kept in admission order; strategies that need another order
// impose it themselves.
type ReadyQueue struct {
	pending []*Task // not yet arrived, sorted by (arrival, id)
	ready   []*Task
	done    int
	total   int
}

// NewReadyQueue seeds the pending pool with tasks, ordered by arrival time then id.
func NewReadyQueue(tasks []*Task) *ReadyQueue {
	pending := make([]*Task, len(tasks))
	copy(pending, tasks)
	sort.SliceStable(pending, func(i, j int) bool {
		return arrivesBefore(pending[i], pending[j])
	})
	return &ReadyQueue{
		pending: pending,
		ready:   make([]*Task, 0, len(tasks)),
		total:   len(tasks),
	}
}

func arrivesBefore(a, b *Task) bool {
	if a.ArrivalTime() != b.ArrivalTime() {
		return a.ArrivalTime() < b.ArrivalTime()
	}
	return a.ID() < b.ID()
}

// Admit moves every pending task that has arrived by now into the ready set.
// A task with nothing to run completes at its arrival and never becomes ready.
// Calling Admit again for the same instant is a no-op.
func (q *ReadyQueue) Admit(now int) error {
	n := 0
	for n < len(q.pending) && q.pending[n].ArrivalTime() <= now {
		t := q.pending[n]
		n++
		if t.Remaining() == 0 {
			t.markStarted(t.ArrivalTime())
			if err := t.markComplete(t.ArrivalTime()); err != nil {
				return err
			}
			q.done++
			continue
		}
		t.markReady(t.ArrivalTime())
		q.ready = append(q.ready, t)
	}
	q.pending = q.pending[n:]
	return nil
}

// Ready returns the eligible tasks in queue order. The slice must not be modified.
func (q *ReadyQueue) Ready() []*Task { return q.ready }

// Upcoming returns the tasks that have not arrived yet, by arrival time.
func (q *ReadyQueue) Upcoming() []*Task { return q.pending }

// Len is the number of ready tasks.
func (q *ReadyQueue) Len() int { return len(q.ready) }

// NextArrival returns the earliest arrival still pending.
func (q *ReadyQueue) NextArrival() (int, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	return q.pending[0].ArrivalTime(), true
}

// NextDecisionTime is the earlier of the next arrival and sliceEnd, the instant
// the running task's grant runs out. Pass a negative sliceEnd when the CPU is idle.
func (q *ReadyQueue) NextDecisionTime(sliceEnd int) (int, bool) {
	next, ok := q.NextArrival()
	switch {
	case sliceEnd < 0:
		return next, ok
	case !ok || sliceEnd < next:
		return sliceEnd, true
	default:
		return next, true
	}
}

// Take removes the task with the given id from the ready set.
func (q *ReadyQueue) Take(id int) (*Task, bool) {
	for i, t := range q.ready {
		if t.ID() == id {
			q.ready = append(q.ready[:i], q.ready[i+1:]...)
			return t, true
		}
	}
	return nil, false
}

// Requeue appends a preempted task to the tail of the ready set.
func (q *ReadyQueue) Requeue(t *Task, now int) {
	t.markReady(now)
	q.ready = append(q.ready, t)
}

// Complete records that a task finished.
func (q *ReadyQueue) Complete(t *Task, now int) error {
	if err := t.markComplete(now); err != nil {
		return err
	}
	q.done++
	return nil
}

// Finished reports whether every task has completed.
func (q *ReadyQueue) Finished() bool { return q.done == q.total }
