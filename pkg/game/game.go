// Package game assembles the board, turn, zobrist, and movegen packages
// into the public Arimaa rules-engine facade: applying actions, asking
// whether a position is terminal, and enumerating legal actions with or
// without 3rd-repetition filtering.
package game

import (
	"fmt"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/hashlist"
	"github.com/herohde/arimaa/pkg/movegen"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/herohde/arimaa/pkg/turn"
	"github.com/herohde/arimaa/pkg/zobrist"
)

// table is the single Zobrist table shared by every State. A fixed seed
// keeps hashes stable and comparable across process runs.
var table = zobrist.NewTable(0x41726931616d61) // "Ariama"-ish, arbitrary and fixed

// Terminal is the outcome of a finished game.
type Terminal uint8

const (
	GoldWin Terminal = iota
	SilverWin
)

func (t Terminal) String() string {
	if t == GoldWin {
		return "gold-win"
	}
	return "silver-win"
}

// playState is the extra bookkeeping only relevant once setup is over.
type playState struct {
	previousBoards []board.State // boards at the start of each prior step this move
	pending        turn.State
	initialHash    zobrist.Hash // hash of the board at the start of this move
	hashHistory    hashlist.List
	trapped        bool // whether any piece has been trapped so far this move
}

func (p *playState) step() int {
	return len(p.previousBoards)
}

// State is an immutable Arimaa position: the piece board, whose turn it
// is, and (once setup is complete) the push/pull and repetition
// bookkeeping needed to enumerate legal actions and detect the end of the
// game. Every mutator returns a new State; the receiver is never modified.
type State struct {
	p1ToMove   bool
	moveNumber int
	board      board.State
	hash       zobrist.Hash
	play       *playState // nil during the placement phase
}

// NewInitial returns the state at the very start of a game: an empty
// board, move 1, player 1 (gold) to place the first piece.
func NewInitial() *State {
	return &State{
		p1ToMove:   true,
		moveNumber: 1,
		board:      board.Empty(),
		hash:       table.Initial(),
	}
}

// NewFromBoard builds a play-phase state directly from a piece board, with
// a fresh single-entry hash history and no pending push/pull obligation.
// Used by arimaatext to reconstruct a state from a rendered position.
func NewFromBoard(b board.State, p1ToMove bool, moveNumber int) *State {
	hash := table.FromState(b, p1ToMove, 0)
	hist := hashlist.List{}.Append(uint64(hash))
	return &State{
		p1ToMove:   p1ToMove,
		moveNumber: moveNumber,
		board:      b,
		hash:       hash,
		play:       &playState{initialHash: hash, hashHistory: hist},
	}
}

func (s *State) IsPlayPhase() bool {
	return s.play != nil
}

func (s *State) IsP1TurnToMove() bool {
	return s.p1ToMove
}

func (s *State) MoveNumber() int {
	return s.moveNumber
}

// CurrentStep returns the step within the current turn, 0-indexed. Panics
// during the placement phase.
func (s *State) CurrentStep() int {
	return s.unwrapPlay().step()
}

// Board returns the piece board at the current step.
func (s *State) Board() board.State {
	return s.board
}

// BoardForStep returns the piece board as it stood at the start of the
// given step of the current turn. Panics during the placement phase or if
// step is out of range.
func (s *State) BoardForStep(step int) board.State {
	play := s.unwrapPlay()
	if step == play.step() {
		return s.board
	}
	return play.previousBoards[step]
}

// PushPullState returns the pending push/pull obligation, or the zero
// state during the placement phase or when none is pending.
func (s *State) PushPullState() turn.State {
	if s.play == nil {
		return turn.NoneState
	}
	return s.play.pending
}

// TranspositionHash returns the Zobrist hash of the position, including
// the pending push/pull obligation when in the play phase.
func (s *State) TranspositionHash() uint64 {
	if s.play == nil {
		return uint64(s.hash)
	}
	return uint64(table.WithPushPullState(s.hash, s.play.pending))
}

func (s *State) unwrapPlay() *playState {
	if s.play == nil {
		panic("game: not in the play phase")
	}
	return s.play
}

func (s *State) String() string {
	if !s.IsPlayPhase() {
		return fmt.Sprintf("move %d (setup, %s to place)", s.moveNumber, sideName(s.p1ToMove))
	}
	return fmt.Sprintf("move %d step %d (%s to move)", s.moveNumber, s.CurrentStep(), sideName(s.p1ToMove))
}

func sideName(p1 bool) string {
	if p1 {
		return "gold"
	}
	return "silver"
}
