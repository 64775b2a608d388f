package game

import "github.com/gdamore/tcell/v2"

// Input is an abstract player action.
type Input int

const (
	// InputNone is any key without a binding.
	InputNone Input = iota
	InputMoveUp
	InputMoveDown
	InputMoveLeft
	InputMoveRight
	InputReveal
	InputToggleFlag
	InputQuit
)

// String returns a human-readable input name.
func (in Input) String() string {
	switch in {
	case InputMoveUp:
		return "move_up"
	case InputMoveDown:
		return "move_down"
	case InputMoveLeft:
		return "move_left"
	case InputMoveRight:
		return "move_right"
	case InputReveal:
		return "reveal"
	case InputToggleFlag:
		return "toggle_flag"
	case InputQuit:
		return "quit"
	default:
		return "none"
	}
}

// delta returns the cursor movement for a move input.
func (in Input) delta() (dRow, dCol int, ok bool) {
	switch in {
	case InputMoveUp:
		return -1, 0, true
	case InputMoveDown:
		return 1, 0, true
	case InputMoveLeft:
		return 0, -1, true
	case InputMoveRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// inputFor maps a key press to an input.
func inputFor(key tcell.Key, r rune) Input {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return InputQuit
	case tcell.KeyUp:
		return InputMoveUp
	case tcell.KeyDown:
		return InputMoveDown
	case tcell.KeyLeft:
		return InputMoveLeft
	case tcell.KeyRight:
		return InputMoveRight
	case tcell.KeyRune:
		switch r {
		case ' ':
			return InputReveal
		case 'f', 'F':
			return InputToggleFlag
		case 'q', 'Q':
			return InputQuit
		}
	}
	return InputNone
}
