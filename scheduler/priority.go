package scheduler

// Priority runs the ready task with the smallest priority value to completion.
type Priority struct{}

func (Priority) Name() string { return "Priority" }

func (Priority) SelectNext(d Decision) Grant {
	t := pick(d.Ready, (*Task).Priority)
	return Grant{TaskID: t.ID(), Slice: t.Remaining()}
}

// PriorityPreemptive is Priority where an arriving task with a strictly
// smaller priority value takes the CPU away from the running one.
type PriorityPreemptive struct{}

func (PriorityPreemptive) Name() string { return "Priority (preemptive)" }

func (PriorityPreemptive) SelectNext(d Decision) Grant {
	t := pick(d.Ready, (*Task).Priority)
	slice := untilArrival(d.Now, t.Remaining(), d.Upcoming, func(u *Task) bool {
		return u.Priority() < t.Priority()
	})
	return Grant{TaskID: t.ID(), Slice: slice}
}
