package scheduler

// FCFS runs tasks to completion in order of arrival.
type FCFS struct{}

func (FCFS) Name() string { return "First-come, first-serve" }

func (FCFS) SelectNext(d Decision) Grant {
	t := pick(d.Ready, (*Task).ArrivalTime)
	return Grant{TaskID: t.ID(), Slice: t.Remaining()}
}
