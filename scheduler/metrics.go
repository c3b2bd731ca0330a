package scheduler

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Metrics derives the report for finished tasks from their segment log.
// It does not modify its arguments.
func Metrics(tasks []*Task, segments []Segment) *Report {
	r := &Report{
		Segments: make([]Segment, len(segments)),
		Tasks:    make([]TaskMetrics, 0, len(tasks)),
	}
	copy(r.Segments, segments)

	for _, t := range tasks {
		m := TaskMetrics{
			TaskID:         t.ID(),
			ArrivalTime:    t.ArrivalTime(),
			BurstTime:      t.BurstTime(),
			Priority:       t.Priority(),
			StartTime:      t.StartTime(),
			CompletionTime: t.CompletionTime(),
		}
		m.TurnaroundTime = m.CompletionTime - m.ArrivalTime
		m.WaitingTime = m.TurnaroundTime - m.BurstTime
		m.ResponseTime = m.StartTime - m.ArrivalTime
		r.Tasks = append(r.Tasks, m)
	}
	// the float sums below must not depend on the caller's task order
	sort.Slice(r.Tasks, func(i, j int) bool { return r.Tasks[i].TaskID < r.Tasks[j].TaskID })

	var (
		waiting    = make([]int, 0, len(r.Tasks))
		turnaround = make([]int, 0, len(r.Tasks))
		response   = make([]int, 0, len(r.Tasks))
		firstArr   = -1
		lastDone   = 0
	)
	for _, m := range r.Tasks {
		waiting = append(waiting, m.WaitingTime)
		turnaround = append(turnaround, m.TurnaroundTime)
		response = append(response, m.ResponseTime)
		if firstArr < 0 || m.ArrivalTime < firstArr {
			firstArr = m.ArrivalTime
		}
		lastDone = max(lastDone, m.CompletionTime)
	}

	s := &r.Summary
	s.AvgWaiting, s.StdDevWaiting = meanStdDev(waiting)
	s.AvgTurnaround, _ = meanStdDev(turnaround)
	s.AvgResponse, _ = meanStdDev(response)
	for i, seg := range segments {
		s.BusyTime += seg.Duration()
		if i > 0 && seg.TaskID != segments[i-1].TaskID {
			s.ContextSwitches++
		}
	}
	if len(tasks) > 0 {
		s.Makespan = lastDone - firstArr
	}
	if s.Makespan > 0 {
		s.Utilization = float64(s.BusyTime) / float64(s.Makespan)
	}
	if lastDone > 0 {
		s.Throughput = float64(len(tasks)) / float64(lastDone)
	}
	return r
}

// meanStdDev returns the mean and sample standard deviation of xs, with zeros
// where gonum would produce NaN.
func meanStdDev[T constraints.Integer](xs []T) (mean, std float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return float64(xs[0]), 0
	}
	return stat.MeanStdDev(floats(xs), nil)
}

func floats[T constraints.Integer](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
