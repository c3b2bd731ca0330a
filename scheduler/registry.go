package scheduler

// Algorithm identifiers accepted by NewStrategy.
const (
	AlgFCFS               = "fcfs"
	AlgSJF                = "sjf"
	AlgSRTF               = "srtf"
	AlgPriority           = "priority"
	AlgPriorityPreemptive = "priority_preemptive"
	AlgRoundRobin         = "rr"
)

type factory func(quantum int) (Strategy, error)

var strategies = map[string]factory{
	AlgFCFS:               func(int) (Strategy, error) { return FCFS{}, nil },
	AlgSJF:                func(int) (Strategy, error) { return SJF{}, nil },
	AlgSRTF:               func(int) (Strategy, error) { return SRTF{}, nil },
	AlgPriority:           func(int) (Strategy, error) { return Priority{}, nil },
	AlgPriorityPreemptive: func(int) (Strategy, error) { return PriorityPreemptive{}, nil },
	AlgRoundRobin: func(q int) (Strategy, error) {
		rr, err := NewRoundRobin(q)
		if err != nil {
			return nil, err
		}
		return rr, nil
	},
}

// Algorithms lists the accepted identifiers in a stable order.
func Algorithms() []string {
	return []string{AlgFCFS, AlgSJF, AlgSRTF, AlgPriority, AlgPriorityPreemptive, AlgRoundRobin}
}

// NewStrategy looks up the strategy for algorithm. quantum is only read by "rr".
func NewStrategy(algorithm string, quantum int) (Strategy, error) {
	f, ok := strategies[algorithm]
	if !ok {
		return nil, &UnknownAlgorithmError{Algorithm: algorithm}
	}
	return f(quantum)
}
