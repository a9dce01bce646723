// Package board contains the piece-board position representation: the set
// of bitboards describing where each piece type sits, and the derived
// queries (support, traps, freezing) used by move generation.
package board

import "fmt"

// Piece identifies an Arimaa piece type, ordered by strength: a piece can
// push or pull any piece that compares less than it. Rabbit is weakest,
// Elephant strongest.
type Piece uint8

const (
	Rabbit Piece = iota
	Cat
	Dog
	Horse
	Camel
	Elephant
)

// AllPieces enumerates every piece type, weakest to strongest.
var AllPieces = [6]Piece{Rabbit, Cat, Dog, Horse, Camel, Elephant}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'e', 'E':
		return Elephant, true
	case 'm', 'M':
		return Camel, true
	case 'h', 'H':
		return Horse, true
	case 'd', 'D':
		return Dog, true
	case 'c', 'C':
		return Cat, true
	case 'r', 'R':
		return Rabbit, true
	default:
		return 0, false
	}
}

func (p Piece) IsValid() bool {
	return p <= Elephant
}

// Letter renders the piece using the standard Arimaa letter, upper-cased for
// player 1 (gold) and lower-cased for player 2 (silver).
func (p Piece) Letter(p1 bool) string {
	letter := p.String()
	if p1 {
		return fmt.Sprintf("%c", letter[0]-32)
	}
	return letter
}

func (p Piece) String() string {
	switch p {
	case Elephant:
		return "e"
	case Camel:
		return "m"
	case Horse:
		return "h"
	case Dog:
		return "d"
	case Cat:
		return "c"
	case Rabbit:
		return "r"
	default:
		return "?"
	}
}
