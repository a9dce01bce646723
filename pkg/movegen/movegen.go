package movegen

import (
	"math/bits"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/herohde/arimaa/pkg/turn"
)

// Placements returns the pieces the player to move may still place during
// setup, each piece type appearing once its per-game quota (1 elephant, 1
// camel, 2 horses, 2 dogs, 2 cats, 8 rabbits) is not yet exhausted.
func Placements(s board.State, p1ToMove bool) []Action {
	own := s.PlayerMask(p1ToMove)
	actions := make([]Action, 0, 6)

	if s.Elephants&own == 0 {
		actions = append(actions, NewPlace(board.Elephant))
	}
	if s.Camels&own == 0 {
		actions = append(actions, NewPlace(board.Camel))
	}
	if bits.OnesCount64(s.Horses&own) < 2 {
		actions = append(actions, NewPlace(board.Horse))
	}
	if bits.OnesCount64(s.Dogs&own) < 2 {
		actions = append(actions, NewPlace(board.Dog))
	}
	if bits.OnesCount64(s.Cats&own) < 2 {
		actions = append(actions, NewPlace(board.Cat))
	}
	if bits.OnesCount64(s.Rabbits&own) < 8 {
		actions = append(actions, NewPlace(board.Rabbit))
	}
	return actions
}

// AppendMoveActions appends every ordinary (non-push, non-pull) single-step
// move available to the player to move: any non-frozen piece of theirs
// moving into an empty neighboring square, excluding a rabbit's disallowed
// backward step.
func AppendMoveActions(actions []Action, s board.State, p1ToMove bool) []Action {
	own := s.PlayerMask(p1ToMove)
	opp := s.AllPieces &^ own
	nonFrozen := board.NonFrozen(own, opp, s)

	for _, d := range square.Directions {
		movable := board.CanMoveInDirection(d, s) & nonFrozen &^ invalidRabbitMoves(d, s, p1ToMove)
		for _, sq := range square.ToSquares(movable) {
			actions = append(actions, NewMove(sq, d))
		}
	}
	return actions
}

// AppendPullActions appends the moves that would complete the pending
// pull opportunity recorded in pending, if any: moving a weaker opposing
// piece into the square the pulling piece just vacated.
func AppendPullActions(actions []Action, s board.State, p1ToMove bool, pending turn.State) []Action {
	sq, piece, ok := pending.AsPossiblePull()
	if !ok {
		return actions
	}

	opp := s.AllPieces &^ s.PlayerMask(p1ToMove)
	lesser := board.LesserPieces(piece, s) & opp
	target := sq.Bit()

	for _, d := range square.Directions {
		if square.ShiftMask(lesser, d)&target == 0 {
			continue
		}
		sourceBit := square.ShiftMaskOpposite(target, d)
		action := NewMove(square.FromBit(sourceBit), d)
		if !contains(actions, action) {
			actions = append(actions, action)
		}
	}
	return actions
}

// AppendPushActions appends the moves that would begin pushing a
// threatened opposing piece: the opposing piece, threatened by a stronger
// non-frozen piece of the player to move, stepping into an empty
// neighboring square.
// Only legal through the third step of a turn, and only when no push
// completion is already pending.
func AppendPushActions(actions []Action, s board.State, p1ToMove bool, pending turn.State, step int) []Action {
	if !pending.CanPush() || step >= 3 {
		return actions
	}

	own := s.PlayerMask(p1ToMove)
	opp := s.AllPieces &^ own
	predators := board.NonFrozen(own, opp, s)
	threatened := board.ThreatenedPieces(predators, opp, s)
	if threatened == 0 {
		return actions
	}

	for _, d := range square.Directions {
		movable := board.CanMoveInDirection(d, s) & threatened
		for _, sq := range square.ToSquares(movable) {
			actions = append(actions, NewMove(sq, d))
		}
	}
	return actions
}

// MustCompleteActions returns the only actions legal when a push is
// pending: moving a stronger non-frozen piece of the player to move into
// the square the pushed piece was forced out of. Panics if pending is not
// a MustCompletePush state.
func MustCompleteActions(s board.State, p1ToMove bool, pending turn.State) []Action {
	sq, pushed := pending.UnwrapMustCompletePush()

	own := s.PlayerMask(p1ToMove)
	opp := s.AllPieces &^ own
	nonFrozen := board.NonFrozen(own, opp, s)
	target := sq.Bit()

	var actions []Action
	for _, d := range square.Directions {
		sourceBit := square.ShiftMaskOpposite(target, d) & nonFrozen
		if sourceBit == 0 {
			continue
		}
		if piece, ok := s.PieceTypeAtSquare(square.FromBit(sourceBit)); ok && piece > pushed {
			actions = append(actions, NewMove(square.FromBit(sourceBit), d))
		}
	}
	return actions
}

// invalidRabbitMoves returns the bits of the player to move's rabbits for
// which d is the disallowed backward direction (away from their goal
// edge); rabbits may never retreat.
func invalidRabbitMoves(d square.Direction, s board.State, p1ToMove bool) uint64 {
	backward := square.Down
	if !p1ToMove {
		backward = square.Up
	}
	if d != backward {
		return 0
	}
	return s.Rabbits & s.PlayerMask(p1ToMove)
}

func contains(actions []Action, a Action) bool {
	for _, existing := range actions {
		if existing == a {
			return true
		}
	}
	return false
}
