// Package scenario provides canned bowling games with known totals, used by
// the demo command and by verification tests.
package scenario

import (
	"fmt"

	"github.com/MJE43/bowling-score-go/internal/bowling"
)

// Scenario is a labeled roll sequence with its expected final score.
type Scenario struct {
	ID       string
	Name     string
	Rolls    []int
	Expected int
}

// Result pairs a played scenario with the score the game produced.
type Result struct {
	Scenario Scenario
	Actual   int
}

// Passed reports whether the computed score matches the expected total.
func (r Result) Passed() bool {
	return r.Actual == r.Scenario.Expected
}

// Built-in scenarios, in play order. IDs are stable.
var scenarios = []Scenario{
	{
		// Strikes, spares and open frames, with a strike in the tenth.
		ID:       "example",
		Name:     "Example Game",
		Rolls:    []int{10, 3, 6, 5, 5, 8, 1, 10, 10, 10, 9, 0, 7, 3, 10, 10, 8},
		Expected: 190,
	},
	{
		ID:       "perfect",
		Name:     "Perfect Game",
		Rolls:    []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
		Expected: 300,
	},
	{
		ID:       "all-spares",
		Name:     "All Spares Game",
		Rolls:    []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
		Expected: 150,
	},
	{
		ID:       "gutter",
		Name:     "Gutter Game",
		Rolls:    []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		Expected: 0,
	},
	{
		// No strikes or spares.
		ID:       "regular",
		Name:     "Regular Game",
		Rolls:    []int{3, 4, 2, 5, 1, 6, 4, 2, 8, 1, 7, 1, 5, 3, 2, 3, 4, 3, 2, 6},
		Expected: 72,
	},
}

// List returns the built-in scenarios in play order.
func List() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// Get retrieves a built-in scenario by ID.
func Get(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// IDs returns the built-in scenario IDs in play order.
func IDs() []string {
	ids := make([]string, len(scenarios))
	for i, s := range scenarios {
		ids[i] = s.ID
	}
	return ids
}

// Play records every roll of the scenario into a fresh game and computes the
// total. A roll outside the valid range surfaces as a wrapped
// *bowling.InvalidRollError naming the scenario.
func Play(s Scenario) (Result, error) {
	g := bowling.New()
	for _, pins := range s.Rolls {
		if err := g.RecordRoll(pins); err != nil {
			return Result{}, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
	}
	return Result{Scenario: s, Actual: g.ComputeScore()}, nil
}
