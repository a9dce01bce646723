package movegen_test

import (
	"testing"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/movegen"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/herohde/arimaa/pkg/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(t *testing.T, s string) square.Square {
	t.Helper()
	parsed, err := square.ParseSquareStr(s)
	require.NoError(t, err)
	return parsed
}

func containsAction(actions []movegen.Action, a movegen.Action) bool {
	for _, existing := range actions {
		if existing == a {
			return true
		}
	}
	return false
}

func TestPlacementsStartsWithAllSix(t *testing.T) {
	actions := movegen.Placements(board.Empty(), true)
	assert.Len(t, actions, 6)
}

func TestPlacementsExcludesFilledQuota(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Elephant, sq(t, "a1").Bit(), true)

	actions := movegen.Placements(s, true)
	assert.False(t, containsAction(actions, movegen.NewPlace(board.Elephant)))
	assert.Len(t, actions, 5)
}

func TestPlacementsRespectsTwoOfQuota(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Horse, sq(t, "a1").Bit(), true)

	actions := movegen.Placements(s, true)
	assert.True(t, containsAction(actions, movegen.NewPlace(board.Horse)))

	s = board.PlacePiece(s, board.Horse, sq(t, "b1").Bit(), true)
	actions = movegen.Placements(s, true)
	assert.False(t, containsAction(actions, movegen.NewPlace(board.Horse)))
}

func TestAppendMoveActionsRabbitCannotRetreat(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d4").Bit(), true)

	actions := movegen.AppendMoveActions(nil, s, true)

	assert.False(t, containsAction(actions, movegen.NewMove(sq(t, "d4"), square.Down)))
	assert.True(t, containsAction(actions, movegen.NewMove(sq(t, "d4"), square.Up)))
	assert.True(t, containsAction(actions, movegen.NewMove(sq(t, "d4"), square.Left)))
	assert.True(t, containsAction(actions, movegen.NewMove(sq(t, "d4"), square.Right)))
	assert.Len(t, actions, 3)
}

func TestAppendMoveActionsFrozenPieceHasNoMoves(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Elephant, sq(t, "d5").Bit(), false)

	actions := movegen.AppendMoveActions(nil, s, true)
	assert.Empty(t, actions)
}

func TestAppendMoveActionsSupportedPieceIsNotFrozen(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Rabbit, sq(t, "e4").Bit(), true)
	s = board.PlacePiece(s, board.Elephant, sq(t, "d5").Bit(), false)

	actions := movegen.AppendMoveActions(nil, s, true)
	assert.True(t, containsAction(actions, movegen.NewMove(sq(t, "d4"), square.Left)))
}

func TestAppendPushActions(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Elephant, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d3").Bit(), false)

	actions := movegen.AppendPushActions(nil, s, true, turn.NoneState, 0)
	assert.True(t, containsAction(actions, movegen.NewMove(sq(t, "d3"), square.Down)))
}

func TestAppendPushActionsNoneWhenAlreadyCompletingPush(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Elephant, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d3").Bit(), false)

	pending := turn.State{Kind: turn.MustCompletePush, Square: sq(t, "a1"), Piece: board.Rabbit}
	actions := movegen.AppendPushActions(nil, s, true, pending, 0)
	assert.Empty(t, actions)
}

func TestAppendPushActionsNoneAtStepThree(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Elephant, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Rabbit, sq(t, "d3").Bit(), false)

	actions := movegen.AppendPushActions(nil, s, true, turn.NoneState, 3)
	assert.Empty(t, actions)
}

func TestAppendPullActions(t *testing.T) {
	// The p1 elephant just moved d5->d4, leaving d5 empty. The opposing
	// rabbit at e5 may complete the pull by stepping Left into d5.
	s := board.Empty()
	s = board.PlacePiece(s, board.Elephant, sq(t, "d4").Bit(), true)
	s = board.PlacePiece(s, board.Rabbit, sq(t, "e5").Bit(), false)

	pending := turn.State{Kind: turn.PossiblePull, Square: sq(t, "d5"), Piece: board.Elephant}
	actions := movegen.AppendPullActions(nil, s, true, pending)

	assert.Equal(t, []movegen.Action{movegen.NewMove(sq(t, "e5"), square.Left)}, actions)
}

func TestAppendPullActionsNoneWhenNotPending(t *testing.T) {
	s := board.Empty()
	actions := movegen.AppendPullActions(nil, s, true, turn.NoneState)
	assert.Empty(t, actions)
}

func TestMustCompleteActions(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Cat, sq(t, "c3").Bit(), true)

	pending := turn.State{Kind: turn.MustCompletePush, Square: sq(t, "d3"), Piece: board.Rabbit}
	actions := movegen.MustCompleteActions(s, true, pending)

	assert.Equal(t, []movegen.Action{movegen.NewMove(sq(t, "c3"), square.Right)}, actions)
}

func TestMustCompleteActionsExcludesWeakerPiece(t *testing.T) {
	s := board.Empty()
	s = board.PlacePiece(s, board.Cat, sq(t, "c3").Bit(), true)

	pending := turn.State{Kind: turn.MustCompletePush, Square: sq(t, "d3"), Piece: board.Horse}
	actions := movegen.MustCompleteActions(s, true, pending)

	assert.Empty(t, actions)
}

func TestActionStringAndParseRoundTrip(t *testing.T) {
	cases := []movegen.Action{
		movegen.NewMove(sq(t, "e2"), square.Up),
		movegen.NewPlace(board.Elephant),
		movegen.PassAction,
	}

	for _, a := range cases {
		parsed, err := movegen.Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestParseInvalidAction(t *testing.T) {
	_, err := movegen.Parse("zz")
	assert.Error(t, err)
}
