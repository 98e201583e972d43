package sched

import "fmt"

// Policy selects how ready tasks are ordered. Both variants share one
// contract: a single integer priority key per task, smaller key means
// higher scheduling priority. Adding a policy means adding a key.
type Policy int

const (
	// RMS assigns fixed priority by period: shorter period wins.
	RMS Policy = iota
	// EDF assigns dynamic priority by the current instance's absolute
	// deadline: earlier deadline wins.
	EDF
)

func (p Policy) String() string {
	switch p {
	case RMS:
		return "RMS"
	case EDF:
		return "EDF"
	default:
		return "Unknown"
	}
}

// ParsePolicy maps a config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "rms", "RMS":
		return RMS, nil
	case "edf", "EDF":
		return EDF, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}

// keyOf extracts the priority key of a ready task.
func (p Policy) keyOf(t *Task) int {
	if p == EDF {
		return t.Deadline
	}
	return t.Period
}

// preempts reports whether the challenger holds strictly higher priority
// than the incumbent. Equal keys never preempt; the ready queue breaks
// equal-key ties by lower task id, but a tie is not grounds for a switch.
func (p Policy) preempts(challenger, incumbent *Task) bool {
	return p.keyOf(challenger) < p.keyOf(incumbent)
}
