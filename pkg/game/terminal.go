package game

import (
	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/movegen"
	"github.com/herohde/arimaa/pkg/square"
)

func newBoardAfterMove(s board.State, a movegen.Action) (board.State, bool) {
	return board.TakeMoveAction(s, a.Square.Bit(), a.Direction)
}

// ValidActions returns the legal actions from this state, with
// 3rd-repetition-like actions filtered out at the end of a turn.
func (s *State) ValidActions() []movegen.Action {
	return s.validActions(true)
}

// ValidActionsNoRep returns the legal actions from this state without
// repetition filtering. Useful for populating a transposition table,
// where no action should be excluded on repetition grounds.
func (s *State) ValidActionsNoRep() []movegen.Action {
	return s.validActions(false)
}

func (s *State) validActions(checkReps bool) []movegen.Action {
	if !s.IsPlayPhase() {
		return movegen.Placements(s.board, s.p1ToMove)
	}

	play := s.unwrapPlay()

	var actions []movegen.Action
	if play.pending.IsMustCompletePush() {
		actions = movegen.MustCompleteActions(s.board, s.p1ToMove, play.pending)
	} else {
		actions = make([]movegen.Action, 0, 50)
		actions = movegen.AppendPushActions(actions, s.board, s.p1ToMove, play.pending, play.step())
		actions = movegen.AppendPullActions(actions, s.board, s.p1ToMove, play.pending)
		actions = movegen.AppendMoveActions(actions, s.board, s.p1ToMove)
		if s.CanPass(checkReps) {
			actions = append(actions, movegen.PassAction)
		}
	}

	if checkReps {
		actions = s.removePassingLikeActions(actions)
	}
	return actions
}

// CanPass reports whether the player to move may pass: not on the first
// step of a turn, not mid-push, and (when checkRepetitions is set) not
// when the board is back where this move started, nor when passing would
// produce an end-of-move position for the 3rd time.
func (s *State) CanPass(checkRepetitions bool) bool {
	if !s.IsPlayPhase() {
		return false
	}
	play := s.unwrapPlay()
	if play.step() < 1 || play.pending.IsMustCompletePush() {
		return false
	}
	if !checkRepetitions {
		return true
	}

	excluded := table.ExcludeStep(s.hash, play.step())
	if play.initialHash == excluded {
		return false
	}
	passHash := table.Pass(s.hash, play.step())
	return !play.hashHistory.ContainsAtLeastTwice(uint64(passHash))
}

// IsTerminal reports whether the game has ended, and who won. The state
// is only checked for terminal conditions at the first step of a turn;
// mid-turn it reduces to "does the player to move have any move".
func (s *State) IsTerminal() (Terminal, bool) {
	if !s.IsPlayPhase() {
		return 0, false
	}
	if s.CurrentStep() > 0 {
		return s.hasMove()
	}
	if t, ok := s.rabbitAtGoal(); ok {
		return t, true
	}
	if t, ok := s.lostAllRabbits(); ok {
		return t, true
	}
	return s.hasMove()
}

// hasMove reports whether the player to move has any move. If not, the
// last player to move wins.
func (s *State) hasMove() (Terminal, bool) {
	play := s.unwrapPlay()

	var has bool
	switch {
	case play.pending.IsMustCompletePush():
		has = s.hasNonPassingLikeAction(movegen.MustCompleteActions(s.board, s.p1ToMove, play.pending))
	case s.CanPass(true):
		has = true
	default:
		has = s.hasNonPassingLikeAction(movegen.AppendMoveActions(nil, s.board, s.p1ToMove)) ||
			s.hasNonPassingLikeAction(movegen.AppendPullActions(nil, s.board, s.p1ToMove, play.pending)) ||
			s.hasNonPassingLikeAction(movegen.AppendPushActions(nil, s.board, s.p1ToMove, play.pending, play.step()))
	}

	if has {
		return 0, false
	}
	if s.p1ToMove {
		return SilverWin, true
	}
	return GoldWin, true
}

func (s *State) hasNonPassingLikeAction(actions []movegen.Action) bool {
	if len(actions) == 0 {
		return false
	}
	play := s.unwrapPlay()
	if play.step() < 3 || play.trapped {
		return true
	}
	for _, a := range actions {
		if !s.isPassingLikeAction(a) {
			return true
		}
	}
	return false
}

// removePassingLikeActions strips actions that, taken at the last step of
// a turn with no piece trapped this turn, would recreate the position the
// turn started from, or an end-of-move position already seen twice — such
// actions are indistinguishable from passing for
// repetition purposes and are illegal under the same rule that forbids a
// 3rd repetition.
func (s *State) removePassingLikeActions(actions []movegen.Action) []movegen.Action {
	play := s.unwrapPlay()
	if play.step() != 3 || play.trapped {
		return actions
	}

	filtered := actions[:0]
	for _, a := range actions {
		if !s.isPassingLikeAction(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (s *State) isPassingLikeAction(a movegen.Action) bool {
	if a.Kind != movegen.Move {
		return false
	}
	play := s.unwrapPlay()

	newBoard, _ := newBoardAfterMove(s.board, a)
	noSwitch := table.MovePiece(s.hash, s.board, newBoard, s.p1ToMove, s.p1ToMove, play.step(), 0)
	if noSwitch == play.initialHash {
		return true
	}
	switched := table.MovePiece(s.hash, s.board, newBoard, s.p1ToMove, !s.p1ToMove, play.step(), 0)
	return play.hashHistory.ContainsAtLeastTwice(uint64(switched))
}

func (s *State) rabbitAtGoal() (Terminal, bool) {
	p1Met := s.board.P1Pieces&s.board.Rabbits&square.P1ObjectiveMask != 0
	p2Met := ^s.board.P1Pieces&s.board.Rabbits&square.P2ObjectiveMask != 0
	if !p1Met && !p2Met {
		return 0, false
	}
	lastToMoveIsP1 := !s.p1ToMove
	lastMet := p2Met
	if lastToMoveIsP1 {
		lastMet = p1Met
	}
	if lastToMoveIsP1 == lastMet {
		return GoldWin, true
	}
	return SilverWin, true
}

func (s *State) lostAllRabbits() (Terminal, bool) {
	p1Lost := s.board.P1Pieces&s.board.Rabbits == 0
	p2Lost := ^s.board.P1Pieces&s.board.Rabbits == 0
	if !p1Lost && !p2Lost {
		return 0, false
	}
	lastToMoveIsP1 := !s.p1ToMove
	lastMet := p1Lost
	if lastToMoveIsP1 {
		lastMet = p2Lost
	}
	if lastToMoveIsP1 == lastMet {
		return GoldWin, true
	}
	return SilverWin, true
}
