package scheduler

// RoundRobin gives the head of the ready queue at most Quantum time units.
// A task that still has work left goes to the tail, behind anything that
// arrived during its turn.
type RoundRobin struct {
	Quantum int
}

// NewRoundRobin returns a Round-Robin strategy, rejecting a non-positive quantum.
func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, &InvalidConfigurationError{Param: "quantum", Reason: "must be > 0"}
	}
	return &RoundRobin{Quantum: quantum}, nil
}

func (r *RoundRobin) Name() string { return "Round-robin" }

func (r *RoundRobin) SelectNext(d Decision) Grant {
	t := d.Ready[0]
	return Grant{TaskID: t.ID(), Slice: min(r.Quantum, t.Remaining()), Turn: true}
}
