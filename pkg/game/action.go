package game

import (
	"fmt"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/hashlist"
	"github.com/herohde/arimaa/pkg/movegen"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/herohde/arimaa/pkg/turn"
)

// TakeAction applies a single action and returns the resulting state. The
// receiver is left unchanged.
func (s *State) TakeAction(a movegen.Action) *State {
	switch a.Kind {
	case movegen.Pass:
		return s.takePass()
	case movegen.Place:
		return s.takePlace(a.Piece)
	default:
		return s.takeMove(a.Square, a.Direction)
	}
}

// TrappedAnimalForAction reports whether the given move action would trap
// a piece, without actually applying it. Returns ok=false for non-move
// actions or if nothing would be trapped.
func (s *State) TrappedAnimalForAction(a movegen.Action) (sq square.Square, p board.Piece, isP1 bool, ok bool) {
	if a.Kind != movegen.Move {
		return 0, 0, false, false
	}

	moved := board.MovePiece(s.board, a.Square.Bit(), a.Direction)
	trappedBit := moved.TrappedPieceBits()
	if trappedBit == 0 {
		return 0, 0, false, false
	}

	trappedSquare := square.FromBit(trappedBit)
	piece, _ := moved.PieceTypeAtSquare(trappedSquare)
	p1 := moved.BitsForPiece(piece, true)&trappedBit != 0
	return trappedSquare, piece, p1, true
}

func (s *State) takePlace(p board.Piece) *State {
	placementBit := s.board.PlacementBit()
	newBoard := board.PlacePiece(s.board, p, placementBit, s.p1ToMove)

	switchPlayers := placementBit == square.LastP1PlacementMask
	switchPhases := placementBit == square.LastP2PlacementMask

	newP1ToMove := s.p1ToMove
	switch {
	case switchPlayers:
		newP1ToMove = false
	case switchPhases:
		newP1ToMove = true
	}

	newHash := table.PlacePiece(s.hash, p, square.FromBit(placementBit), s.p1ToMove, switchPlayers, switchPhases)

	var play *playState
	newMoveNumber := s.moveNumber
	if switchPhases {
		hist := hashlist.List{}.Append(uint64(newHash))
		play = &playState{initialHash: newHash, hashHistory: hist}
		newMoveNumber = 2
	}

	return &State{
		p1ToMove:   newP1ToMove,
		moveNumber: newMoveNumber,
		board:      newBoard,
		hash:       newHash,
		play:       play,
	}
}

func (s *State) takePass() *State {
	cur := s.unwrapPlay()
	step := cur.step()
	newHash := table.Pass(s.hash, step)

	hist := cur.hashHistory
	if cur.trapped {
		hist = hashlist.List{}
	}
	hist = hist.Append(uint64(newHash))

	newMoveNumber := s.moveNumber
	if !s.p1ToMove {
		newMoveNumber++
	}

	return &State{
		p1ToMove:   !s.p1ToMove,
		moveNumber: newMoveNumber,
		board:      s.board,
		hash:       newHash,
		play:       &playState{initialHash: newHash, hashHistory: hist},
	}
}

func (s *State) takeMove(sq square.Square, d square.Direction) *State {
	cur := s.unwrapPlay()
	if s.board.AllPieces&sq.Bit() == 0 {
		panic(fmt.Sprintf("game: no piece on move source square %v", sq))
	}
	curStep := cur.step()
	isLastStep := curStep >= 3

	newBoard, trapped := board.TakeMoveAction(s.board, sq.Bit(), d)

	newP1ToMove := s.p1ToMove
	if isLastStep {
		newP1ToMove = !s.p1ToMove
	}
	newStep := 0
	if !isLastStep {
		newStep = curStep + 1
	}
	newMoveNumber := s.moveNumber
	if isLastStep && newP1ToMove {
		newMoveNumber++
	}

	newHash := table.MovePiece(s.hash, s.board, newBoard, s.p1ToMove, newP1ToMove, curStep, newStep)

	hist := cur.hashHistory
	if trapped {
		hist = hashlist.List{}
	}
	trappedThisTurn := cur.trapped || trapped

	var play *playState
	if isLastStep {
		play = &playState{
			initialHash: newHash,
			hashHistory: hist.Append(uint64(newHash)),
		}
	} else {
		previousBoards := make([]board.State, 0, curStep+1)
		previousBoards = append(previousBoards, cur.previousBoards...)
		previousBoards = append(previousBoards, s.board)

		play = &playState{
			previousBoards: previousBoards,
			pending:        s.nextPushPullState(sq, d),
			initialHash:    cur.initialHash,
			hashHistory:    hist,
			trapped:        trappedThisTurn,
		}
	}

	return &State{
		p1ToMove:   newP1ToMove,
		moveNumber: newMoveNumber,
		board:      newBoard,
		hash:       newHash,
		play:       play,
	}
}

// nextPushPullState determines, immediately after a move of the piece
// that was on sq in direction d, whether the move leaves a pull
// opportunity or a forced push completion pending for the next step.
func (s *State) nextPushPullState(sq square.Square, d square.Direction) turn.State {
	sourceBit := sq.Bit()
	isOppPiece := s.isTheirPiece(sourceBit)
	piece, _ := s.board.PieceTypeAtSquare(sq)

	switch {
	case isOppPiece && !s.moveCanBeCountedAsPull(sourceBit, d, piece):
		return turn.State{Kind: turn.MustCompletePush, Square: sq, Piece: piece}
	case !isOppPiece && !s.unwrapPlay().pending.IsMustCompletePush() && piece != board.Rabbit:
		return turn.State{Kind: turn.PossiblePull, Square: sq, Piece: piece}
	default:
		return turn.NoneState
	}
}

func (s *State) moveCanBeCountedAsPull(newMoveSquareBit uint64, d square.Direction, theirPiece board.Piece) bool {
	prevSquare, myPiece, ok := s.unwrapPlay().pending.AsPossiblePull()
	if !ok {
		return false
	}
	if prevSquare.Bit() != square.Shift(newMoveSquareBit, d) {
		return false
	}
	return myPiece > theirPiece
}

func (s *State) isTheirPiece(bit uint64) bool {
	isP1Piece := s.board.P1Pieces&bit != 0
	return s.p1ToMove != isP1Piece
}
