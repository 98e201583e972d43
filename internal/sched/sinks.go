package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Recorder collects every event in order, mainly for tests and for
// post-run inspection.
type Recorder struct {
	events []Event
}

func (r *Recorder) Emit(ev Event) { r.events = append(r.events, ev) }

// Events returns the recorded sequence in emission order.
func (r *Recorder) Events() []Event { return r.events }

// ConsoleSink narrates the simulation as human-readable lines. It is an
// ordinary event subscriber; the engine knows nothing about printing.
type ConsoleSink struct {
	w io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (c *ConsoleSink) Emit(ev Event) {
	// an auxiliary function to center the event kind in the output
	center := func(str string, width int) string {
		spaces := int(float64(width-len(str)) / 2)
		return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
	}

	if ev.Kind == KindIdle {
		fmt.Fprintf(c.w, "Time %04d [%s]\n", ev.Tick, center(ev.Kind.String(), 14))
		return
	}
	fmt.Fprintf(c.w, "Time %04d [%s] Task %d\n", ev.Tick, center(ev.Kind.String(), 14), ev.TaskID)
}

// CSVSink logs events to a CSV file, one row per event.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVSink opens the given file path for CSV logging of events.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"tick", "event", "task_id"})
	w.Flush()
	return &CSVSink{file: f, writer: w}, nil
}

func (s *CSVSink) Emit(ev Event) {
	taskID := ""
	if ev.Kind != KindIdle {
		taskID = strconv.FormatUint(uint64(ev.TaskID), 10)
	}
	s.writer.Write([]string{
		strconv.Itoa(ev.Tick),
		ev.Kind.String(),
		taskID,
	})
	s.writer.Flush()
}

// Close flushes and closes the underlying file.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	return s.file.Close()
}

// MultiSink fans one event stream out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}
