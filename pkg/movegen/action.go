// Package movegen enumerates the legal actions available from a board
// position: piece placements during setup, and pushes/pulls/ordinary
// moves during play. It operates purely on board.State and turn.State; it
// has no notion of move history or hash repetition, which live one layer
// up in pkg/game, and so it never emits a pass: pkg/game decides whether
// a pass is legal and appends it.
package movegen

import (
	"fmt"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/square"
)

// Kind discriminates the three shapes an Action can take.
type Kind uint8

const (
	Move Kind = iota
	Pass
	Place
)

// Action is a single step: either moving the piece on Square one step in
// Direction, passing, or placing Piece during setup. Comparable, so
// Actions can be deduplicated and stored as map keys.
type Action struct {
	Kind      Kind
	Square    square.Square
	Direction square.Direction
	Piece     board.Piece
}

func NewMove(sq square.Square, d square.Direction) Action {
	return Action{Kind: Move, Square: sq, Direction: d}
}

func NewPlace(p board.Piece) Action {
	return Action{Kind: Place, Piece: p}
}

var PassAction = Action{Kind: Pass}

func (a Action) String() string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("%v%v", a.Square, a.Direction)
	case Place:
		return a.Piece.Letter(true)
	default:
		return "p"
	}
}

// Parse parses the single-token text form of an action: a two-character
// square plus direction letter for a move ("e2n"), a single piece letter
// for a placement ("E"), or "p" for a pass.
func Parse(s string) (Action, error) {
	switch len(s) {
	case 1:
		if s == "p" {
			return PassAction, nil
		}
		if p, ok := board.ParsePiece(rune(s[0])); ok {
			return NewPlace(p), nil
		}
	case 3:
		sq, err := square.ParseSquareStr(s[:2])
		if err != nil {
			break
		}
		d, ok := square.ParseDirection(rune(s[2]))
		if !ok {
			break
		}
		return NewMove(sq, d), nil
	}
	return Action{}, fmt.Errorf("movegen: invalid action %q", s)
}
