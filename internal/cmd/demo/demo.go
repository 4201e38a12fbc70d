// Package demo runs the built-in scoring scenarios through the bowling core
// and reports expected-vs-actual totals.
package demo

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/MJE43/bowling-score-go/internal/scenario"
)

// Config holds demo command configuration.
type Config struct {
	Scenario  string `env:"BOWLING_DEMO_SCENARIO"`
	ShowRolls bool   `env:"BOWLING_DEMO_SHOW_ROLLS" envDefault:"true"`
}

// ParseConfig parses environment defaults and then flags into a Config.
// Flags win over environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Run a single scenario by ID (default: all)")
	fs.BoolVar(&cfg.ShowRolls, "show-rolls", cfg.ShowRolls, "Print each scenario's roll sequence")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays the configured scenarios and writes a report to w. It returns
// the combined play failures and expected-vs-actual mismatches, or nil when
// every scenario passes.
func Run(cfg Config, w io.Writer) error {
	selected, err := selectScenarios(cfg.Scenario)
	if err != nil {
		return err
	}
	return run(cfg, selected, w)
}

func run(cfg Config, selected []scenario.Scenario, w io.Writer) error {
	runID := uuid.New().String()
	log.Printf("demo starting run_id=%s version=%s commit=%s built=%s scenarios=%d", runID, Version, GitCommit, BuildTime, len(selected))

	fmt.Fprintln(w, "=== Bowling Score Demo ===")

	var failures error
	passed := 0
	for _, s := range selected {
		res, err := scenario.Play(s)
		if err != nil {
			log.Printf("scenario error run_id=%s scenario=%s error=%v", runID, s.ID, err)
			failures = multierr.Append(failures, err)
			continue
		}

		fmt.Fprintf(w, "\n%s\n", s.Name)
		if cfg.ShowRolls {
			fmt.Fprintf(w, "  rolls: %s\n", formatRolls(s.Rolls))
		}
		mark := "✓"
		if !res.Passed() {
			mark = "✗"
			failures = multierr.Append(failures, fmt.Errorf("scenario %s: expected %d, got %d", s.ID, s.Expected, res.Actual))
		} else {
			passed++
		}
		fmt.Fprintf(w, "  expected %d, got %d %s\n", s.Expected, res.Actual, mark)

		log.Printf("scenario played run_id=%s scenario=%s expected=%d actual=%d passed=%t", runID, s.ID, s.Expected, res.Actual, res.Passed())
	}

	fmt.Fprintf(w, "\n%d/%d scenarios passed\n", passed, len(selected))
	log.Printf("demo finished run_id=%s passed=%d total=%d", runID, passed, len(selected))

	return failures
}

func selectScenarios(id string) ([]scenario.Scenario, error) {
	if id == "" {
		return scenario.List(), nil
	}
	s, ok := scenario.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (known: %s)", id, strings.Join(scenario.IDs(), ", "))
	}
	return []scenario.Scenario{s}, nil
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, pins := range rolls {
		parts[i] = strconv.Itoa(pins)
	}
	return strings.Join(parts, " ")
}
