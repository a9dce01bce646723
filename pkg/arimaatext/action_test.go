package arimaatext_test

import (
	"testing"

	"github.com/herohde/arimaa/pkg/arimaatext"
	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/movegen"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatActionMatchesOneTokenForm(t *testing.T) {
	cases := []struct {
		name string
		a    movegen.Action
		want string
	}{
		{"move", movegen.NewMove(sqAction(t, "e2"), square.Up), "e2n"},
		{"place", movegen.NewPlace(board.Elephant), "E"},
		{"pass", movegen.PassAction, "p"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, arimaatext.FormatAction(c.a))
		})
	}
}

func TestParseActionRoundTripsWithFormatAction(t *testing.T) {
	cases := []movegen.Action{
		movegen.NewMove(sqAction(t, "e2"), square.Up),
		movegen.NewPlace(board.Elephant),
		movegen.PassAction,
	}

	for _, a := range cases {
		text := arimaatext.FormatAction(a)
		parsed, err := arimaatext.ParseAction(text)
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestParseActionRejectsInvalidToken(t *testing.T) {
	_, err := arimaatext.ParseAction("zz")
	require.Error(t, err)
	var pe *arimaatext.ParseError
	assert.ErrorAs(t, err, &pe)
}

func sqAction(t *testing.T, s string) square.Square {
	t.Helper()
	parsed, err := square.ParseSquareStr(s)
	require.NoError(t, err)
	return parsed
}
