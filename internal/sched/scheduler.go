package sched

import "fmt"

// MissReport selects how often an overrun job instance is reported.
type MissReport int

const (
	// MissEveryTick re-emits DeadlineMiss on every tick the running task
	// remains overdue and incomplete.
	MissEveryTick MissReport = iota
	// MissOnce emits DeadlineMiss at most once per job instance.
	MissOnce
)

// ParseMissReport maps a config string to a MissReport.
func ParseMissReport(s string) (MissReport, error) {
	switch s {
	case "every", "":
		return MissEveryTick, nil
	case "once":
		return MissOnce, nil
	}
	return 0, fmt.Errorf("unknown miss_report value %q", s)
}

// Scheduler steps a taskset through discrete time under one policy,
// emitting an ordered event stream. It owns the taskset and the ready
// queue exclusively for the duration of a run; the whole simulation is
// synchronous and deterministic.
type Scheduler struct {
	set     *TaskSet
	policy  Policy
	ready   *readyQueue
	sink    Sink
	miss    MissReport
	running int // arena index of the running task, -1 when the CPU is idle
}

// New creates a scheduler for the given taskset and policy. A nil sink
// discards events.
func New(set *TaskSet, policy Policy, miss MissReport, sink Sink) *Scheduler {
	if sink == nil {
		sink = discardSink{}
	}
	return &Scheduler{
		set:     set,
		policy:  policy,
		ready:   newReadyQueue(set, policy),
		sink:    sink,
		miss:    miss,
		running: -1,
	}
}

type discardSink struct{}

func (discardSink) Emit(Event) {}

// Run simulates one full hyperperiod, tick 0 up to but excluding the
// horizon. Call Reset before running the same scheduler again.
func (s *Scheduler) Run() {
	horizon := s.set.Hyperperiod()
	for t := 0; t < horizon; t++ {
		s.step(t)
	}
}

// Reset restores the taskset and the scheduler to their initial state.
func (s *Scheduler) Reset() {
	s.set.Reset()
	s.ready = newReadyQueue(s.set, s.policy)
	s.running = -1
}

// step performs one tick: arrivals, preemption check, dispatch, execution,
// deadline check, completion, idle report. Arrivals are processed in
// taskset order before any scheduling decision.
func (s *Scheduler) step(t int) {
	// arrivals
	for i := range s.set.tasks {
		tk := s.set.task(i)
		if tk.NextRelease != t {
			continue
		}
		// A release that finds the previous instance incomplete has, by
		// construction, passed that instance's deadline (it equals this
		// tick). Report the miss before abandoning the instance.
		if tk.Remaining > 0 && (s.miss == MissEveryTick || !tk.missReported) {
			s.sink.Emit(Event{Tick: t, Kind: KindDeadlineMiss, TaskID: tk.ID})
		}
		tk.Remaining = tk.WCET
		tk.Deadline = t + tk.Period
		tk.NextRelease += tk.Period
		tk.missReported = false
		// The ready queue holds released-but-not-running tasks only. A
		// release that supersedes the running task's instance refreshes
		// it in place; the task stays on the CPU.
		if i != s.running {
			s.ready.Push(i)
		}
		s.sink.Emit(Event{Tick: t, Kind: KindArrival, TaskID: tk.ID})
	}

	// preemption check: challenger vs incumbent, strictly higher only
	if s.running >= 0 && s.ready.Len() > 0 {
		top, _ := s.ready.Peek()
		if s.policy.preempts(s.set.task(top), s.set.task(s.running)) {
			s.ready.Push(s.running)
			s.ready.Pop()
			s.running = top
			s.sink.Emit(Event{Tick: t, Kind: KindPreemption, TaskID: s.set.task(top).ID})
		}
	}

	// dispatch if the CPU is idle
	if s.running < 0 {
		if idx, ok := s.ready.Pop(); ok {
			s.running = idx
		}
	}

	// no task ran this tick
	if s.running < 0 {
		s.sink.Emit(Event{Tick: t, Kind: KindIdle})
		return
	}

	// execution: one tick of CPU service
	run := s.set.task(s.running)
	s.sink.Emit(Event{Tick: t, Kind: KindRunning, TaskID: run.ID})
	run.Remaining--

	// deadline check
	if t >= run.Deadline && run.Remaining > 0 {
		if s.miss == MissEveryTick || !run.missReported {
			run.missReported = true
			s.sink.Emit(Event{Tick: t, Kind: KindDeadlineMiss, TaskID: run.ID})
		}
	}

	// completion
	if run.Remaining == 0 {
		s.sink.Emit(Event{Tick: t, Kind: KindCompletion, TaskID: run.ID})
		s.running = -1
	}
}
