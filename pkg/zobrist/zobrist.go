// Package zobrist computes Zobrist hashes over Arimaa piece boards, used for
// transposition identification and 3-fold-repetition detection.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
package zobrist

import (
	"fmt"
	"math/rand"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/herohde/arimaa/pkg/turn"
)

// Hash is a position hash. Equal hashes mean the positions are identical for
// repetition purposes (board + turn-to-move + step + pending push/pull).
type Hash uint64

// numPieceTypes is the number of distinct piece types (Elephant..Rabbit).
const numPieceTypes = 6

// Table is a pseudo-randomized set of tables for computing and
// incrementally updating a Hash. Built once from a fixed seed so that two
// tables built from the same seed always agree.
type Table struct {
	squares [2 * numPieceTypes][square.NumSquares]uint64
	push    [numPieceTypes - 1][square.NumSquares]uint64 // indexed by pushPieceIndex; Elephant excluded
	pull    [numPieceTypes - 1][square.NumSquares]uint64 // indexed by pullPieceIndex; Rabbit excluded
	step    [4]uint64
	turn    uint64
	initial uint64
}

// NewTable builds a Table from seed. The same seed always yields the same
// table, so hashes computed from two independently-constructed tables with
// matching seeds are comparable.
func NewTable(seed int64) *Table {
	t := &Table{}
	r := rand.New(rand.NewSource(seed))

	for i := range t.squares {
		for sq := square.ZeroSquare; sq < square.NumSquares; sq++ {
			t.squares[i][sq] = r.Uint64()
		}
	}
	for i := range t.push {
		for sq := square.ZeroSquare; sq < square.NumSquares; sq++ {
			t.push[i][sq] = r.Uint64()
		}
	}
	for i := range t.pull {
		for sq := square.ZeroSquare; sq < square.NumSquares; sq++ {
			t.pull[i][sq] = r.Uint64()
		}
	}
	for i := range t.step {
		t.step[i] = r.Uint64()
	}
	t.turn = r.Uint64()
	t.initial = r.Uint64()

	return t
}

// Initial returns the hash of the empty board at the start of setup.
func (t *Table) Initial() Hash {
	return Hash(t.initial)
}

// FromState computes the hash of a fully-known board state from scratch.
func (t *Table) FromState(s board.State, p1ToMove bool, step int) Hash {
	hash := t.initial
	if !p1ToMove {
		hash ^= t.turn
	}
	hash ^= t.step[step]

	for _, p1 := range []bool{true, false} {
		for _, p := range board.AllPieces {
			for _, sq := range square.ToSquares(s.BitsForPiece(p, p1)) {
				hash ^= t.pieceValue(sq, p, p1)
			}
		}
	}
	return Hash(hash)
}

// MovePiece incrementally updates h for a single-step board move.
func (t *Table) MovePiece(h Hash, prev, next board.State, prevP1ToMove, nextP1ToMove bool, prevStep, nextStep int) Hash {
	hash := uint64(h)
	if prevP1ToMove != nextP1ToMove {
		hash ^= t.turn
	}
	hash ^= t.boardDiffValue(prev, next)
	hash ^= t.step[prevStep] ^ t.step[nextStep]
	return Hash(hash)
}

// PlacePiece incrementally updates h for a single setup placement.
func (t *Table) PlacePiece(h Hash, p board.Piece, sq square.Square, placeIsP1, switchPlayers, switchPhases bool) Hash {
	hash := uint64(h)
	if switchPlayers || switchPhases {
		hash ^= t.turn
	}
	hash ^= t.pieceValue(sq, p, placeIsP1)
	if switchPhases {
		hash ^= t.step[0]
	}
	return Hash(hash)
}

// Pass incrementally updates h for a pass action taken at step.
func (t *Table) Pass(h Hash, step int) Hash {
	return Hash(uint64(h) ^ t.turn ^ t.step[0] ^ t.step[step])
}

// ExcludeStep replaces the step contribution in h with that of step 0,
// leaving a value comparable across different steps of the same
// board+turn.
func (t *Table) ExcludeStep(h Hash, step int) Hash {
	return Hash(uint64(h) ^ t.step[0] ^ t.step[step])
}

// WithPushPullState folds a pending push/pull obligation into h, so that
// positions differing only in push/pull state transpose separately.
func (t *Table) WithPushPullState(h Hash, s turn.State) Hash {
	switch s.Kind {
	case turn.MustCompletePush:
		return Hash(uint64(h) ^ t.push[pushPieceIndex(s.Piece)][s.Square])
	case turn.PossiblePull:
		return Hash(uint64(h) ^ t.pull[pullPieceIndex(s.Piece)][s.Square])
	default:
		return h
	}
}

func (t *Table) boardDiffValue(prev, next board.State) uint64 {
	var value uint64
	for _, p1 := range []bool{true, false} {
		for _, p := range board.AllPieces {
			diff := prev.BitsForPiece(p, p1) ^ next.BitsForPiece(p, p1)
			for _, sq := range square.ToSquares(diff) {
				value ^= t.pieceValue(sq, p, p1)
			}
		}
	}
	return value
}

func (t *Table) pieceValue(sq square.Square, p board.Piece, p1 bool) uint64 {
	idx := zobristPieceIndex(p)
	if !p1 {
		idx += numPieceTypes
	}
	return t.squares[idx][sq]
}

// zobristPieceIndex maps a piece to its table row: Elephant=0 .. Rabbit=5,
// the reverse of board.Piece's strength ordering.
func zobristPieceIndex(p board.Piece) int {
	return int(board.Elephant) - int(p)
}

func pushPieceIndex(p board.Piece) int {
	if p == board.Elephant {
		panic("zobrist: elephants cannot be pushed")
	}
	return int(board.Camel) - int(p)
}

func pullPieceIndex(p board.Piece) int {
	if p == board.Rabbit {
		panic("zobrist: rabbits cannot pull")
	}
	return int(board.Elephant) - int(p)
}

func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}
