package scheduler

import "fmt"

// Segment is a contiguous stretch of time during which TaskID held the CPU.
type Segment struct {
	TaskID int `json:"task_id"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

func (s Segment) Duration() int { return s.End - s.Start }

// TaskMetrics are the timings of one finished task.
type TaskMetrics struct {
	TaskID         int `json:"task_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
	ResponseTime   int `json:"response_time"`
}

// Summary aggregates a schedule. Averages over an empty schedule are zero.
type Summary struct {
	AvgWaiting      float64 `json:"avg_waiting_time"`
	StdDevWaiting   float64 `json:"stddev_waiting_time"`
	AvgTurnaround   float64 `json:"avg_turnaround_time"`
	AvgResponse     float64 `json:"avg_response_time"`
	Makespan        int     `json:"makespan"`
	BusyTime        int     `json:"busy_time"`
	Utilization     float64 `json:"cpu_utilization"`
	Throughput      float64 `json:"throughput"`
	ContextSwitches int     `json:"context_switches"`
}

// Report is the outcome of one simulation.
type Report struct {
	ID        string        `json:"id"`        // requested identifier, set by Schedule
	Algorithm string        `json:"algorithm"` // display name
	Segments  []Segment     `json:"segments"`
	Tasks     []TaskMetrics `json:"tasks"` // by task id
	Summary   Summary       `json:"summary"`
}

// Validate checks the report's internal consistency: executed time per task
// equals its burst, segments are chronological and never overlap, and no task
// waited a negative amount of time.
func (r *Report) Validate() error {
	executed := make(map[int]int, len(r.Tasks))
	for i, seg := range r.Segments {
		if seg.Duration() <= 0 {
			return &InvariantError{Msg: fmt.Sprintf("segment %d of task %d is empty", i, seg.TaskID)}
		}
		if i > 0 && seg.Start < r.Segments[i-1].End {
			return &InvariantError{Msg: fmt.Sprintf("segment %d of task %d overlaps its predecessor", i, seg.TaskID)}
		}
		executed[seg.TaskID] += seg.Duration()
	}
	known := make(map[int]struct{}, len(r.Tasks))
	for _, m := range r.Tasks {
		known[m.TaskID] = struct{}{}
		if executed[m.TaskID] != m.BurstTime {
			return &InvariantError{Msg: fmt.Sprintf("task %d executed %d of %d", m.TaskID, executed[m.TaskID], m.BurstTime)}
		}
		if m.WaitingTime < 0 || m.TurnaroundTime != m.WaitingTime+m.BurstTime {
			return &InvariantError{Msg: fmt.Sprintf("task %d has waiting %d, turnaround %d", m.TaskID, m.WaitingTime, m.TurnaroundTime)}
		}
	}
	for _, seg := range r.Segments {
		if _, ok := known[seg.TaskID]; !ok {
			return &InvariantError{Msg: fmt.Sprintf("segment for unknown task %d", seg.TaskID)}
		}
	}
	return nil
}
