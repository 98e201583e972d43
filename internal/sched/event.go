package sched

import "fmt"

// EventKind represents the type of scheduler event.
type EventKind int

const (
	KindArrival EventKind = iota
	KindPreemption
	KindRunning
	KindDeadlineMiss
	KindCompletion
	KindIdle
)

func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "Arrival"
	case KindPreemption:
		return "Preemption"
	case KindRunning:
		return "Running"
	case KindDeadlineMiss:
		return "DeadlineMiss"
	case KindCompletion:
		return "Completion"
	case KindIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Event is one timestamped observation from the engine. The ordered event
// sequence is the simulation's complete observable output.
type Event struct {
	Tick   int
	Kind   EventKind
	TaskID TaskID // zero for Idle
}

func (e Event) String() string {
	if e.Kind == KindIdle {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Tick)
	}
	return fmt.Sprintf("%s(%d, %d)", e.Kind, e.Tick, e.TaskID)
}

// Sink receives events in emission order. The engine calls Emit
// synchronously from its tick loop, so implementations must not block.
type Sink interface {
	Emit(Event)
}
