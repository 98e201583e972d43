package sched

import "fmt"

// TaskID uniquely identifies a task in the simulation.
type TaskID uint64

// TaskSpec is the caller-facing definition of one periodic task.
type TaskSpec struct {
	ID     TaskID `yaml:"id"`
	Period int    `yaml:"period"` // interval between releases, in ticks
	WCET   int    `yaml:"wcet"`   // execution demand per job instance, in ticks
	Offset int    `yaml:"offset"` // tick of the first release (0 by default)
}

// Task is one periodic task plus the live state of its current job instance.
type Task struct {
	ID     TaskID
	Period int
	WCET   int
	Offset int

	Remaining   int // execution still owed by the current instance
	Deadline    int // absolute deadline of the current instance
	NextRelease int // tick at which the next instance arrives

	missReported bool // current instance already produced a miss event
}

// TaskSet owns the tasks. Everything else refers to tasks by index into
// this arena, never by pointer, so entities can be reset without
// invalidating outstanding handles.
type TaskSet struct {
	tasks []Task
}

// NewTaskSet validates the specs and builds the arena. Non-positive period
// or wcet, wcet exceeding period, and duplicate ids are configuration
// errors reported before any simulation starts.
func NewTaskSet(specs []TaskSpec) (*TaskSet, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("taskset is empty")
	}

	seen := make(map[TaskID]bool, len(specs))
	tasks := make([]Task, 0, len(specs))
	for _, sp := range specs {
		if sp.Period <= 0 {
			return nil, fmt.Errorf("task %d: period must be positive, got %d", sp.ID, sp.Period)
		}
		if sp.WCET <= 0 {
			return nil, fmt.Errorf("task %d: wcet must be positive, got %d", sp.ID, sp.WCET)
		}
		if sp.WCET > sp.Period {
			return nil, fmt.Errorf("task %d: wcet %d exceeds period %d", sp.ID, sp.WCET, sp.Period)
		}
		if sp.Offset < 0 {
			return nil, fmt.Errorf("task %d: offset must not be negative, got %d", sp.ID, sp.Offset)
		}
		if seen[sp.ID] {
			return nil, fmt.Errorf("task %d: duplicate id", sp.ID)
		}
		seen[sp.ID] = true

		tasks = append(tasks, Task{
			ID:          sp.ID,
			Period:      sp.Period,
			WCET:        sp.WCET,
			Offset:      sp.Offset,
			NextRelease: sp.Offset,
		})
	}
	return &TaskSet{tasks: tasks}, nil
}

// Len returns the number of tasks in the set.
func (ts *TaskSet) Len() int { return len(ts.tasks) }

// task returns the arena slot for the given handle.
func (ts *TaskSet) task(idx int) *Task { return &ts.tasks[idx] }

// Reset restores every task to its pre-simulation state so the same set
// can be run again, typically under the other policy.
func (ts *TaskSet) Reset() {
	for i := range ts.tasks {
		t := &ts.tasks[i]
		t.Remaining = 0
		t.Deadline = 0
		t.NextRelease = t.Offset
		t.missReported = false
	}
}
