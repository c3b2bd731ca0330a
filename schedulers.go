package main

import (
	"fmt"
	"io"

	"github.com/bradleyombachi/cpusched/render"
	"github.com/bradleyombachi/cpusched/scheduler"
)

//region Schedulers

// FCFSSchedule outputs a schedule of tasks in a GANTT chart and a table of timing given:
// • an output writer
// • a title for the chart
// • a slice of tasks
func FCFSSchedule(w io.Writer, title string, tasks []scheduler.TaskSpec) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgFCFS, Tasks: tasks})
}

func SJFSchedule(w io.Writer, title string, tasks []scheduler.TaskSpec) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgSJF, Tasks: tasks})
}

func SRTFSchedule(w io.Writer, title string, tasks []scheduler.TaskSpec) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgSRTF, Tasks: tasks})
}

func PrioritySchedule(w io.Writer, title string, tasks []scheduler.TaskSpec) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgPriority, Tasks: tasks})
}

func PreemptivePrioritySchedule(w io.Writer, title string, tasks []scheduler.TaskSpec) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgPriorityPreemptive, Tasks: tasks})
}

func RRSchedule(w io.Writer, title string, tasks []scheduler.TaskSpec, quantum int) error {
	return outputRequest(w, title, scheduler.Request{Algorithm: scheduler.AlgRoundRobin, Tasks: tasks, Quantum: quantum})
}

//endregion

// AllSchedules runs every algorithm over the same tasks, one chart after another.
func AllSchedules(w io.Writer, tasks []scheduler.TaskSpec, quantum int) error {
	runs := []func() error{
		func() error { return FCFSSchedule(w, "First-come, first-serve", tasks) },
		func() error { return SJFSchedule(w, "Shortest-job-first", tasks) },
		func() error { return SRTFSchedule(w, "Shortest-remaining-time-first", tasks) },
		func() error { return PrioritySchedule(w, "Priority", tasks) },
		func() error { return PreemptivePrioritySchedule(w, "Priority (preemptive)", tasks) },
		func() error { return RRSchedule(w, fmt.Sprintf("Round-robin (quantum %d)", quantum), tasks, quantum) },
	}
	for _, run := range runs {
		if err := run(); err != nil {
			return err
		}
	}
	return nil
}

func outputRequest(w io.Writer, title string, req scheduler.Request) error {
	report, err := scheduler.Schedule(req)
	if err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	render.Report(w, title, report)
	return nil
}
