package board_test

import (
	"testing"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPieceStrength(t *testing.T) {
	assert.Less(t, board.Rabbit, board.Cat)
	assert.Less(t, board.Cat, board.Dog)
	assert.Less(t, board.Dog, board.Horse)
	assert.Less(t, board.Horse, board.Camel)
	assert.Less(t, board.Camel, board.Elephant)
}

func TestParsePiece(t *testing.T) {
	cases := []struct {
		r    rune
		want board.Piece
	}{
		{'E', board.Elephant}, {'e', board.Elephant},
		{'M', board.Camel}, {'m', board.Camel},
		{'R', board.Rabbit}, {'r', board.Rabbit},
	}
	for _, c := range cases {
		got, ok := board.ParsePiece(c.r)
		assert.True(t, ok)
		assert.Equal(t, c.want, got)
	}

	_, ok := board.ParsePiece('x')
	assert.False(t, ok)
}

func TestPieceLetter(t *testing.T) {
	assert.Equal(t, "E", board.Elephant.Letter(true))
	assert.Equal(t, "e", board.Elephant.Letter(false))
	assert.Equal(t, "R", board.Rabbit.Letter(true))
	assert.Equal(t, "r", board.Rabbit.Letter(false))
}
