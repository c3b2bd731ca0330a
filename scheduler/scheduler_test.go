package scheduler

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func classicTasks(priorities ...int) []TaskSpec {
	specs := []TaskSpec{
		{ID: 1, ArrivalTime: 0, BurstTime: 8},
		{ID: 2, ArrivalTime: 1, BurstTime: 4},
		{ID: 3, ArrivalTime: 2, BurstTime: 9},
		{ID: 4, ArrivalTime: 3, BurstTime: 5},
	}
	for i := range priorities {
		specs[i].Priority = priorities[i]
	}
	return specs
}

func TestSchedule_Segments(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    []Segment
		waiting map[int]int
	}{
		{
			name: "fcfs two tasks",
			req: Request{Algorithm: AlgFCFS, Tasks: []TaskSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
				{ID: 2, ArrivalTime: 1, BurstTime: 3},
			}},
			want:    []Segment{{1, 0, 5}, {2, 5, 8}},
			waiting: map[int]int{1: 0, 2: 4},
		},
		{
			name:    "srtf preempts for shorter arrival",
			req:     Request{Algorithm: AlgSRTF, Tasks: classicTasks()},
			want:    []Segment{{1, 0, 1}, {2, 1, 5}, {4, 5, 10}, {1, 10, 17}, {3, 17, 26}},
			waiting: map[int]int{1: 9, 2: 0, 3: 15, 4: 2},
		},
		{
			name:    "sjf runs first arrival to completion",
			req:     Request{Algorithm: AlgSJF, Tasks: classicTasks()},
			want:    []Segment{{1, 0, 8}, {2, 8, 12}, {4, 12, 17}, {3, 17, 26}},
			waiting: map[int]int{1: 0, 2: 7, 3: 15, 4: 9},
		},
		{
			name:    "priority non-preemptive",
			req:     Request{Algorithm: AlgPriority, Tasks: classicTasks(3, 1, 0, 1)},
			want:    []Segment{{1, 0, 8}, {3, 8, 17}, {2, 17, 21}, {4, 21, 26}},
			waiting: map[int]int{1: 0, 2: 16, 3: 6, 4: 18},
		},
		{
			name:    "priority preemptive only on strictly higher priority",
			req:     Request{Algorithm: AlgPriorityPreemptive, Tasks: classicTasks(3, 1, 0, 1)},
			want:    []Segment{{1, 0, 1}, {2, 1, 2}, {3, 2, 11}, {2, 11, 14}, {4, 14, 19}, {1, 19, 26}},
			waiting: map[int]int{1: 18, 2: 9, 3: 0, 4: 11},
		},
		{
			name: "rr single task",
			req: Request{Algorithm: AlgRoundRobin, Quantum: 2, Tasks: []TaskSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 5},
			}},
			want:    []Segment{{1, 0, 2}, {1, 2, 4}, {1, 4, 5}},
			waiting: map[int]int{1: 0},
		},
		{
			name: "rr admits arrivals before requeueing",
			req: Request{Algorithm: AlgRoundRobin, Quantum: 2, Tasks: []TaskSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 4},
				{ID: 2, ArrivalTime: 2, BurstTime: 3},
			}},
			want:    []Segment{{1, 0, 2}, {2, 2, 4}, {1, 4, 6}, {2, 6, 7}},
			waiting: map[int]int{1: 2, 2: 2},
		},
		{
			name: "idle gap emits no segment",
			req: Request{Algorithm: AlgFCFS, Tasks: []TaskSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 2},
				{ID: 2, ArrivalTime: 5, BurstTime: 1},
			}},
			want:    []Segment{{1, 0, 2}, {2, 5, 6}},
			waiting: map[int]int{1: 0, 2: 0},
		},
		{
			name: "zero burst completes at arrival",
			req: Request{Algorithm: AlgSJF, Tasks: []TaskSpec{
				{ID: 1, ArrivalTime: 0, BurstTime: 3},
				{ID: 2, ArrivalTime: 1, BurstTime: 0},
			}},
			want:    []Segment{{1, 0, 3}},
			waiting: map[int]int{1: 0, 2: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Schedule(tt.req)
			if err != nil {
				t.Fatalf("Schedule: %v", err)
			}
			if diff := cmp.Diff(tt.want, r.Segments); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			got := make(map[int]int, len(r.Tasks))
			for _, m := range r.Tasks {
				got[m.TaskID] = m.WaitingTime
			}
			if diff := cmp.Diff(tt.waiting, got); diff != "" {
				t.Errorf("waiting times mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchedule_TaskMetrics(t *testing.T) {
	r, err := Schedule(Request{Algorithm: AlgSRTF, Tasks: classicTasks(2, 1, 4, 3)})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	want := []TaskMetrics{
		{TaskID: 1, ArrivalTime: 0, BurstTime: 8, Priority: 2, StartTime: 0, CompletionTime: 17, WaitingTime: 9, TurnaroundTime: 17, ResponseTime: 0},
		{TaskID: 2, ArrivalTime: 1, BurstTime: 4, Priority: 1, StartTime: 1, CompletionTime: 5, WaitingTime: 0, TurnaroundTime: 4, ResponseTime: 0},
		{TaskID: 3, ArrivalTime: 2, BurstTime: 9, Priority: 4, StartTime: 17, CompletionTime: 26, WaitingTime: 15, TurnaroundTime: 24, ResponseTime: 15},
		{TaskID: 4, ArrivalTime: 3, BurstTime: 5, Priority: 3, StartTime: 5, CompletionTime: 10, WaitingTime: 2, TurnaroundTime: 7, ResponseTime: 2},
	}
	if diff := cmp.Diff(want, r.Tasks); diff != "" {
		t.Errorf("task metrics mismatch (-want +got):\n%s", diff)
	}
	if r.Algorithm != (SRTF{}).Name() {
		t.Errorf("expected algorithm %q, got %q", (SRTF{}).Name(), r.Algorithm)
	}
	if r.ID != AlgSRTF {
		t.Errorf("expected id %q, got %q", AlgSRTF, r.ID)
	}
}

func TestSchedule_Summary(t *testing.T) {
	r, err := Schedule(Request{Algorithm: AlgFCFS, Tasks: []TaskSpec{
		{ID: 1, ArrivalTime: 0, BurstTime: 2},
		{ID: 2, ArrivalTime: 5, BurstTime: 1},
	}})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	want := Summary{
		AvgTurnaround:   1.5,
		Makespan:        6,
		BusyTime:        3,
		Utilization:     0.5,
		Throughput:      2.0 / 6.0,
		ContextSwitches: 1,
	}
	if diff := cmp.Diff(want, r.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSchedule_SummaryAverages(t *testing.T) {
	r, err := Schedule(Request{Algorithm: AlgSRTF, Tasks: classicTasks()})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	// waiting 9, 0, 15, 2; turnaround 17, 4, 24, 7; response 0, 0, 15, 2
	if r.Summary.AvgWaiting != 6.5 {
		t.Errorf("expected avg waiting 6.5, got %v", r.Summary.AvgWaiting)
	}
	if r.Summary.AvgTurnaround != 13 {
		t.Errorf("expected avg turnaround 13, got %v", r.Summary.AvgTurnaround)
	}
	if r.Summary.AvgResponse != 4.25 {
		t.Errorf("expected avg response 4.25, got %v", r.Summary.AvgResponse)
	}
	if r.Summary.StdDevWaiting <= 0 {
		t.Errorf("expected positive waiting stddev, got %v", r.Summary.StdDevWaiting)
	}
	if r.Summary.ContextSwitches != 4 {
		t.Errorf("expected 4 context switches, got %d", r.Summary.ContextSwitches)
	}
}

func TestSchedule_Empty(t *testing.T) {
	for _, alg := range Algorithms() {
		r, err := Schedule(Request{Algorithm: alg, Quantum: 1})
		if err != nil {
			t.Fatalf("%s: unexpected error %v", alg, err)
		}
		if len(r.Segments) != 0 || len(r.Tasks) != 0 {
			t.Errorf("%s: expected empty report, got %d segments, %d tasks", alg, len(r.Segments), len(r.Tasks))
		}
		if diff := cmp.Diff(Summary{}, r.Summary); diff != "" {
			t.Errorf("%s: summary mismatch (-want +got):\n%s", alg, diff)
		}
	}
}

func TestSchedule_TieBreakLowerID(t *testing.T) {
	specs := []TaskSpec{
		{ID: 7, ArrivalTime: 0, BurstTime: 3, Priority: 1},
		{ID: 2, ArrivalTime: 0, BurstTime: 3, Priority: 1},
		{ID: 5, ArrivalTime: 0, BurstTime: 3, Priority: 1},
	}
	want := []Segment{{2, 0, 3}, {5, 3, 6}, {7, 6, 9}}
	for _, alg := range Algorithms() {
		r, err := Schedule(Request{Algorithm: alg, Quantum: 3, Tasks: specs})
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		if diff := cmp.Diff(want, r.Segments); diff != "" {
			t.Errorf("%s: segments mismatch (-want +got):\n%s", alg, diff)
		}
	}
}

func TestSchedule_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		target   any
		internal bool
	}{
		{
			name:   "unknown algorithm",
			req:    Request{Algorithm: "bogus", Tasks: classicTasks()},
			target: new(*UnknownAlgorithmError),
		},
		{
			name:   "rr without quantum",
			req:    Request{Algorithm: AlgRoundRobin, Tasks: classicTasks()},
			target: new(*InvalidConfigurationError),
		},
		{
			name:   "rr negative quantum",
			req:    Request{Algorithm: AlgRoundRobin, Quantum: -2, Tasks: classicTasks()},
			target: new(*InvalidConfigurationError),
		},
		{
			name:   "negative arrival",
			req:    Request{Algorithm: AlgFCFS, Tasks: []TaskSpec{{ID: 1, ArrivalTime: -1, BurstTime: 2}}},
			target: new(*ValidationError),
		},
		{
			name:   "negative burst",
			req:    Request{Algorithm: AlgFCFS, Tasks: []TaskSpec{{ID: 1, BurstTime: -4}}},
			target: new(*ValidationError),
		},
		{
			name: "duplicate id",
			req: Request{Algorithm: AlgSJF, Tasks: []TaskSpec{
				{ID: 1, BurstTime: 2},
				{ID: 1, ArrivalTime: 3, BurstTime: 2},
			}},
			target: new(*ValidationError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Schedule(tt.req)
			if err == nil {
				t.Fatalf("expected error, got report %+v", r)
			}
			if r != nil {
				t.Errorf("expected nil report on error, got %+v", r)
			}
			if !errors.As(err, tt.target) {
				t.Errorf("expected %T, got %T (%v)", tt.target, err, err)
			}
			if !IsInputError(err) || IsInternalError(err) {
				t.Errorf("expected input error, got %v", err)
			}
		})
	}
}

func TestSchedule_QuantumIgnoredOutsideRR(t *testing.T) {
	if _, err := Schedule(Request{Algorithm: AlgFCFS, Quantum: -1, Tasks: classicTasks()}); err != nil {
		t.Fatalf("expected quantum to be ignored by fcfs, got %v", err)
	}
}

type greedyStrategy struct{}

func (greedyStrategy) Name() string { return "greedy" }

func (greedyStrategy) SelectNext(d Decision) Grant {
	return Grant{TaskID: d.Ready[0].ID(), Slice: d.Ready[0].Remaining() + 1}
}

type absentStrategy struct{}

func (absentStrategy) Name() string { return "absent" }

func (absentStrategy) SelectNext(Decision) Grant { return Grant{TaskID: 99, Slice: 1} }

func TestSimulate_InternalErrors(t *testing.T) {
	specs := []TaskSpec{{ID: 1, BurstTime: 2}}

	r, err := Simulate(greedyStrategy{}, specs)
	var oe *OverExecutionError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverExecutionError, got %v", err)
	}
	if r != nil {
		t.Errorf("expected nil report, got %+v", r)
	}
	if !IsInternalError(err) || IsInputError(err) {
		t.Errorf("expected internal error classification for %v", err)
	}

	_, err = Simulate(absentStrategy{}, specs)
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
}

func TestNewStrategy(t *testing.T) {
	for _, alg := range Algorithms() {
		s, err := NewStrategy(alg, 4)
		if err != nil {
			t.Fatalf("NewStrategy(%q): %v", alg, err)
		}
		if s.Name() == "" {
			t.Errorf("NewStrategy(%q): empty name", alg)
		}
	}
	s, err := NewStrategy(AlgRoundRobin, 4)
	if err != nil {
		t.Fatalf("NewStrategy: %v", err)
	}
	if rr, ok := s.(*RoundRobin); !ok || rr.Quantum != 4 {
		t.Errorf("expected *RoundRobin with quantum 4, got %#v", s)
	}
}
