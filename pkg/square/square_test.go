package square_test

import (
	"testing"

	"github.com/herohde/arimaa/pkg/square"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.Equal(t, square.ZeroSquare, square.NewSquare(square.FileA, square.Rank8))
	assert.Equal(t, square.Square(63), square.NewSquare(square.FileH, square.Rank1))
	assert.Equal(t, square.Square(42), square.NewSquare(square.FileC, square.Rank3))

	assert.Equal(t, "a8", square.ZeroSquare.String())
	assert.Equal(t, "h1", square.Square(63).String())
	assert.Equal(t, "e5", square.Square(28).String())
}

func TestParseSquareStr(t *testing.T) {
	cases := []struct {
		in   string
		want square.Square
	}{
		{"a1", square.NewSquare(square.FileA, square.Rank1)},
		{"a8", square.NewSquare(square.FileA, square.Rank8)},
		{"h1", square.NewSquare(square.FileH, square.Rank1)},
		{"h8", square.NewSquare(square.FileH, square.Rank8)},
		{"e5", square.NewSquare(square.FileE, square.Rank5)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := square.ParseSquareStr(c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseSquareStrInvalid(t *testing.T) {
	_, err := square.ParseSquareStr("z9")
	assert.Error(t, err)

	_, err = square.ParseSquareStr("a")
	assert.Error(t, err)
}

func TestSquareBitRoundTrip(t *testing.T) {
	for s := square.ZeroSquare; s < square.NumSquares; s++ {
		assert.Equal(t, s, square.FromBit(s.Bit()))
	}
}

func TestToSquaresAscendingOrder(t *testing.T) {
	mask := square.Square(5).Bit() | square.Square(0).Bit() | square.Square(20).Bit()
	got := square.ToSquares(mask)
	assert.Equal(t, []square.Square{0, 5, 20}, got)
}

func TestDirectionParse(t *testing.T) {
	d, ok := square.ParseDirection('n')
	assert.True(t, ok)
	assert.Equal(t, square.Up, d)
	assert.Equal(t, "n", square.Up.String())

	assert.Equal(t, square.Down, square.Up.Opposite())
	assert.Equal(t, square.Left, square.Right.Opposite())
}
