package scheduler

import (
	"strconv"

	"github.com/markphelps/optional"
)

// TaskSpec is the caller-supplied description of a task.
// Priority follows the usual convention: a smaller value is a higher priority.
type TaskSpec struct {
	ID          int `json:"id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

func (s TaskSpec) validate() error {
	if s.ArrivalTime < 0 {
		return &ValidationError{TaskID: s.ID, Field: "arrival_time", Reason: "must be >= 0"}
	}
	if s.BurstTime < 0 {
		return &ValidationError{TaskID: s.ID, Field: "burst_time", Reason: "must be >= 0"}
	}
	return nil
}

// Task is a TaskSpec plus the runtime state the simulation loop keeps for it.
// Only the loop mutates a Task; strategies read it.
type Task struct {
	spec       TaskSpec
	remaining  int
	start      optional.Int
	completion optional.Int
	lastReady  int
}

// NewTask validates spec and returns a task that has not run yet.
func NewTask(spec TaskSpec) (*Task, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &Task{
		spec:      spec,
		remaining: spec.BurstTime,
		lastReady: spec.ArrivalTime,
	}, nil
}

func (t *Task) ID() int          { return t.spec.ID }
func (t *Task) ArrivalTime() int { return t.spec.ArrivalTime }
func (t *Task) BurstTime() int   { return t.spec.BurstTime }
func (t *Task) Priority() int    { return t.spec.Priority }
func (t *Task) Remaining() int   { return t.remaining }
func (t *Task) Spec() TaskSpec   { return t.spec }

// LastReady is the last instant the task entered the ready set.
func (t *Task) LastReady() int { return t.lastReady }

// Started reports whether the task has held the CPU at least once.
func (t *Task) Started() bool { return t.start.Present() }

// Done reports whether the task has a completion time.
func (t *Task) Done() bool { return t.completion.Present() }

// StartTime returns the first instant the task ran, or -1.
func (t *Task) StartTime() int { return t.start.OrElse(-1) }

// CompletionTime returns the instant remaining time reached zero, or -1.
func (t *Task) CompletionTime() int { return t.completion.OrElse(-1) }

// Execute consumes duration units of CPU time.
func (t *Task) Execute(duration int) error {
	if duration <= 0 {
		return &InvariantError{Msg: "non-positive execution slice for task " + strconv.Itoa(t.spec.ID)}
	}
	if duration > t.remaining {
		return &OverExecutionError{TaskID: t.spec.ID, Requested: duration, Remaining: t.remaining}
	}
	t.remaining -= duration
	return nil
}

func (t *Task) markStarted(now int) {
	if !t.start.Present() {
		t.start.Set(now)
	}
}

func (t *Task) markReady(now int) {
	t.lastReady = now
}

func (t *Task) markComplete(now int) error {
	if t.remaining != 0 {
		return &InvariantError{Msg: "completing task " + strconv.Itoa(t.spec.ID) + " with time left"}
	}
	if t.completion.Present() {
		return &InvariantError{Msg: "task " + strconv.Itoa(t.spec.ID) + " completed twice"}
	}
	t.completion.Set(now)
	return nil
}
