package scheduler

import (
	"fmt"
)

// Request is one scheduling job: the algorithm identifier, its tasks, and the
// Round-Robin quantum (ignored by the other algorithms).
type Request struct {
	Algorithm string
	Tasks     []TaskSpec
	Quantum   int
}

// Schedule resolves the algorithm and simulates the tasks under it.
// On error the report is nil; a report is never partially filled.
func Schedule(req Request) (*Report, error) {
	s, err := NewStrategy(req.Algorithm, req.Quantum)
	if err != nil {
		return nil, err
	}
	report, err := Simulate(s, req.Tasks)
	if err != nil {
		return nil, err
	}
	report.ID = req.Algorithm
	return report, nil
}

// Simulate runs specs on a single simulated CPU under strategy s.
func Simulate(s Strategy, specs []TaskSpec) (*Report, error) {
	tasks, err := newTasks(specs)
	if err != nil {
		return nil, err
	}
	sim := newSimulation(s, tasks)
	if err := sim.run(); err != nil {
		return nil, fmt.Errorf("simulating %s at t=%d: %w", s.Name(), sim.now, err)
	}
	report := Metrics(tasks, sim.segments)
	report.Algorithm = s.Name()
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("checking %s schedule: %w", s.Name(), err)
	}
	return report, nil
}

func newTasks(specs []TaskSpec) ([]*Task, error) {
	tasks := make([]*Task, 0, len(specs))
	seen := make(map[int]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.ID]; dup {
			return nil, &ValidationError{TaskID: spec.ID, Field: "id", Reason: "is not unique"}
		}
		seen[spec.ID] = struct{}{}
		t, err := NewTask(spec)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// simulation is the per-call context: nothing in it outlives Simulate.
type simulation struct {
	strategy Strategy
	tasks    []*Task
	queue    *ReadyQueue
	segments []Segment
	now      int
}

func newSimulation(s Strategy, tasks []*Task) *simulation {
	return &simulation{
		strategy: s,
		tasks:    tasks,
		queue:    NewReadyQueue(tasks),
		segments: make([]Segment, 0, len(tasks)),
	}
}

func (s *simulation) run() error {
	if next, ok := s.queue.NextArrival(); ok {
		s.now = next
	}
	for {
		if err := s.queue.Admit(s.now); err != nil {
			return err
		}
		if s.queue.Finished() {
			return nil
		}
		if s.queue.Len() == 0 {
			// idle: jump straight to the next arrival
			next, ok := s.queue.NextDecisionTime(-1)
			if !ok {
				return &InvariantError{Msg: "no ready or pending tasks before all tasks completed"}
			}
			s.now = next
			continue
		}
		if err := s.step(); err != nil {
			return err
		}
	}
}

// step grants the CPU once and applies the result.
func (s *simulation) step() error {
	g := s.strategy.SelectNext(Decision{
		Now:      s.now,
		Ready:    s.queue.Ready(),
		Upcoming: s.queue.Upcoming(),
	})
	t, ok := s.queue.Take(g.TaskID)
	if !ok {
		return &InvariantError{Msg: fmt.Sprintf("granted task %d is not ready", g.TaskID)}
	}
	if err := t.Execute(g.Slice); err != nil {
		return err
	}
	t.markStarted(s.now)
	s.record(g, s.now+g.Slice)
	s.now += g.Slice

	// arrivals during the slice queue up ahead of the task that just ran
	if err := s.queue.Admit(s.now); err != nil {
		return err
	}
	if t.Remaining() == 0 {
		return s.queue.Complete(t, s.now)
	}
	s.queue.Requeue(t, s.now)
	return nil
}

func (s *simulation) record(g Grant, end int) {
	if n := len(s.segments); n > 0 && !g.Turn {
		last := &s.segments[n-1]
		if last.TaskID == g.TaskID && last.End == s.now {
			last.End = end
			return
		}
	}
	s.segments = append(s.segments, Segment{TaskID: g.TaskID, Start: s.now, End: end})
}
