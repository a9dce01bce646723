// Package turn implements the push/pull state machine tracked across the
// steps of a single turn.
package turn

import (
	"fmt"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/square"
)

// Kind discriminates the three push/pull states a turn can be in.
type Kind uint8

const (
	// None means the turn just started, or the last step completed a pull
	// or a push.
	None Kind = iota
	// PossiblePull means the current player's piece moved last step; the
	// next step may optionally complete a pull by moving a weaker opposing
	// piece into the square it vacated.
	PossiblePull
	// MustCompletePush means an opposing piece was pushed out of Square
	// last step; the next step must move a stronger piece of the current
	// player into that now-empty square.
	MustCompletePush
)

// State is the push/pull state carried between the steps of a turn.
type State struct {
	Kind   Kind
	Square square.Square
	Piece  board.Piece
}

// NoneState is the zero State.
var NoneState = State{Kind: None}

func (s State) CanPush() bool {
	return s.Kind != MustCompletePush
}

func (s State) IsMustCompletePush() bool {
	return s.Kind == MustCompletePush
}

// AsPossiblePull returns the pending pull opportunity, if any.
func (s State) AsPossiblePull() (square.Square, board.Piece, bool) {
	if s.Kind != PossiblePull {
		return 0, 0, false
	}
	return s.Square, s.Piece, true
}

// UnwrapMustCompletePush returns the square/piece of a pending forced push
// completion. Panics if the state is not MustCompletePush.
func (s State) UnwrapMustCompletePush() (square.Square, board.Piece) {
	if s.Kind != MustCompletePush {
		panic(fmt.Sprintf("turn: expected MustCompletePush, got %v", s.Kind))
	}
	return s.Square, s.Piece
}

func (s State) String() string {
	switch s.Kind {
	case PossiblePull:
		return fmt.Sprintf("possible-pull(%v %v)", s.Square, s.Piece)
	case MustCompletePush:
		return fmt.Sprintf("must-complete-push(%v %v)", s.Square, s.Piece)
	default:
		return "none"
	}
}
