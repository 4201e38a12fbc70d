// Package bowling scores ten-pin bowling games from a sequence of per-roll
// pin counts.
package bowling

import "fmt"

// Standard ten-pin game constants
const (
	framesPerGame = 10
	totalPins     = 10
)

// InvalidRollError reports a roll whose pin count is outside the valid range.
type InvalidRollError struct {
	Pins int
}

func (e *InvalidRollError) Error() string {
	return fmt.Sprintf("bowling: invalid roll: pin count must be between 0 and %d, got %d", totalPins, e.Pins)
}

// Game records the rolls of a single ten-pin bowling game and scores them on
// demand. The zero value is an empty game ready for play. A Game is not safe
// for concurrent mutation; callers sharing one across goroutines must
// serialize access themselves.
type Game struct {
	rolls []int
}

// New returns an empty game.
func New() *Game {
	return &Game{}
}

// RecordRoll appends one roll to the game. pins is the number of pins
// knocked down by that roll and must be between 0 and 10 inclusive; an
// out-of-range value is rejected with *InvalidRollError and the game is left
// unchanged. Pin totals across a frame are not checked here.
func (g *Game) RecordRoll(pins int) error {
	if pins < 0 || pins > totalPins {
		return &InvalidRollError{Pins: pins}
	}
	g.rolls = append(g.rolls, pins)
	return nil
}

// ComputeScore returns the total score of the rolls recorded so far. It
// walks exactly ten frames, applying strike and spare bonuses from the rolls
// that follow each frame. Rolls not yet thrown count as zero, so the score
// of an unfinished game understates the eventual total; bonus rolls thrown
// after the tenth frame only ever count as lookahead, never as an eleventh
// frame. ComputeScore never fails and does not mutate the game.
func (g *Game) ComputeScore() int {
	score := 0
	cursor := 0
	for frame := 0; frame < framesPerGame; frame++ {
		switch {
		case g.isStrike(cursor):
			score += totalPins + g.strikeBonus(cursor)
			cursor++
		case g.isSpare(cursor):
			score += totalPins + g.spareBonus(cursor)
			cursor += 2
		default:
			score += g.framePins(cursor)
			cursor += 2
		}
	}
	return score
}

func (g *Game) isStrike(i int) bool {
	return i < len(g.rolls) && g.rolls[i] == totalPins
}

// isSpare requires both rolls of the frame to be present; a lone first roll
// is still an open frame in progress.
func (g *Game) isSpare(i int) bool {
	return i+1 < len(g.rolls) && g.rolls[i]+g.rolls[i+1] == totalPins
}

func (g *Game) strikeBonus(i int) int {
	return g.rollAt(i+1) + g.rollAt(i+2)
}

func (g *Game) spareBonus(i int) int {
	return g.rollAt(i+2)
}

func (g *Game) framePins(i int) int {
	return g.rollAt(i) + g.rollAt(i+1)
}

// rollAt returns the pin count of roll i, or zero when that roll has not
// been thrown yet.
func (g *Game) rollAt(i int) int {
	if i >= len(g.rolls) {
		return 0
	}
	return g.rolls[i]
}
