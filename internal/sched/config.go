package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml.
type Config struct {
	Policy     string     `yaml:"policy"`      // "rms", "edf" or "both"
	MissReport string     `yaml:"miss_report"` // "every" or "once"
	CSVPath    string     `yaml:"csv_path"`    // empty disables CSV logging
	Tasks      []TaskSpec `yaml:"tasks"`
}

// If the config file is not found, we use default values: the classic
// two-task example where RMS preempts at t=5 and EDF does not.
func defaultConfig() Config {
	return Config{
		Policy:     "both",
		MissReport: "every",
		Tasks: []TaskSpec{
			{ID: 1, Period: 5, WCET: 3},
			{ID: 2, Period: 8, WCET: 3},
		},
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Policy == "" {
		cfg.Policy = "both"
	}
	if cfg.MissReport == "" {
		cfg.MissReport = "every"
	}
	if len(cfg.Tasks) == 0 {
		cfg.Tasks = defaultConfig().Tasks
	}

	return cfg
}
