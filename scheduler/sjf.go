package scheduler

// SJF is non-preemptive shortest-job-first: the ready task with the smallest
// burst time runs to completion.
type SJF struct{}

func (SJF) Name() string { return "Shortest-job-first" }

func (SJF) SelectNext(d Decision) Grant {
	t := pick(d.Ready, (*Task).BurstTime)
	return Grant{TaskID: t.ID(), Slice: t.Remaining()}
}

// SRTF is preemptive shortest-job-first. The choice is revisited at every
// arrival, so a grant never runs past the next one.
type SRTF struct{}

func (SRTF) Name() string { return "Shortest-remaining-time-first" }

func (SRTF) SelectNext(d Decision) Grant {
	t := pick(d.Ready, (*Task).Remaining)
	slice := untilArrival(d.Now, t.Remaining(), d.Upcoming, func(*Task) bool { return true })
	return Grant{TaskID: t.ID(), Slice: slice}
}
