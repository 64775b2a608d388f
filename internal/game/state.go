// Package game provides the minesweeper session state machine and the main loop.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying accepts moves, reveals and flags.
	StatePlaying State = iota
	// StateGameOver follows a mine hit. The next input of any kind resets.
	StateGameOver
	// StateQuit ends the main loop.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
