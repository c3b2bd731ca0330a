package scheduler

// Decision is what a strategy sees at a scheduling decision point.
type Decision struct {
	Now      int
	Ready    []*Task // in queue order, never empty
	Upcoming []*Task // not yet arrived, by arrival time
}

// Grant hands the CPU to TaskID for Slice time units.
// Turn marks a Round-Robin turn, which is always logged as its own segment.
type Grant struct {
	TaskID int
	Slice  int
	Turn   bool
}

// Strategy decides which ready task runs next and for how long.
type Strategy interface {
	Name() string
	SelectNext(d Decision) Grant
}

// pick returns the ready task that sorts first under key, ties going to the lower id.
func pick(ready []*Task, key func(*Task) int) *Task {
	best := ready[0]
	for _, t := range ready[1:] {
		kt, kb := key(t), key(best)
		if kt < kb || (kt == kb && t.ID() < best.ID()) {
			best = t
		}
	}
	return best
}

// untilArrival caps slice so it ends at the first upcoming arrival accepted by preempts.
func untilArrival(now, slice int, upcoming []*Task, preempts func(*Task) bool) int {
	for _, t := range upcoming {
		if t.ArrivalTime()-now >= slice {
			break
		}
		if preempts(t) {
			return t.ArrivalTime() - now
		}
	}
	return slice
}
