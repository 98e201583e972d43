package main

import (
	"fmt"
	"os"

	"rtsched/internal/sched"
)

func main() {
	path := "config.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg := sched.Load(path)

	miss, err := sched.ParseMissReport(cfg.MissReport)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var policies []sched.Policy
	if cfg.Policy == "both" {
		policies = []sched.Policy{sched.RMS, sched.EDF}
	} else {
		p, err := sched.ParsePolicy(cfg.Policy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		policies = []sched.Policy{p}
	}

	for _, policy := range policies {
		set, err := sched.NewTaskSet(cfg.Tasks)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid taskset:", err)
			os.Exit(1)
		}

		sinks := sched.MultiSink{sched.NewConsoleSink(os.Stdout)}
		var csvSink *sched.CSVSink
		if cfg.CSVPath != "" {
			csvSink, err = sched.NewCSVSink(fmt.Sprintf("%s.%s.csv", cfg.CSVPath, policy))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			sinks = append(sinks, csvSink)
		}

		fmt.Printf("=== Running Preemptive %s Simulation ===\n", policy)
		s := sched.New(set, policy, miss, sinks)
		s.Run()
		fmt.Println()

		if csvSink != nil {
			csvSink.Close()
		}
	}
}
