package arimaatext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/arimaa/pkg/board"
	"github.com/herohde/arimaa/pkg/game"
	"github.com/herohde/arimaa/pkg/square"
	"github.com/pkg/errors"
)

var headerRegexp = regexp.MustCompile(`(?s)^\s*(\d+)\s*([gswb])`)

// Render renders the board, always preceded by a "<move><side>" header
// line, in the bordered text format:
//
//	2g
//	 +-----------------+
//	8| h c d m e d c h |
//	7| r r r r r r r r |
//	6|     x     x     |
//	5|                 |
//	4|                 |
//	3|     x     x     |
//	2| R R R R R R R R |
//	1| H C D M E D C H |
//	 +-----------------+
//	   a b c d e f g h
func Render(s *game.State) string {
	var sb strings.Builder

	side := "s"
	if s.IsP1TurnToMove() {
		side = "g"
	}
	fmt.Fprintf(&sb, "%d%s\n", s.MoveNumber(), side)

	sb.WriteString(" +-----------------+\n")

	b := s.Board()
	for row := 0; row < square.BoardHeight; row++ {
		fmt.Fprintf(&sb, "%d|", square.BoardHeight-row)
		for col := 0; col < square.BoardWidth; col++ {
			idx := row*square.BoardWidth + col
			bit := uint64(1) << uint(idx)

			letter := " "
			if p, ok := b.PieceTypeAtSquare(square.Square(idx)); ok {
				isP1 := b.BitsForPiece(p, true)&bit != 0
				letter = p.Letter(isP1)
			} else if bit&square.TrapMask != 0 {
				letter = "x"
			}
			fmt.Fprintf(&sb, " %s", letter)
		}
		sb.WriteString(" |\n")
	}

	sb.WriteString(" +-----------------+\n")
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// Parse parses the bordered board-text format back into a play-phase
// state. A missing or malformed "<move><side>" header defaults to move 2,
// player 1 to move; Parse does not otherwise validate that the position
// looks like a legal setup.
func Parse(input string) (*game.State, error) {
	moveNumber := 2
	p1ToMove := true
	if m := headerRegexp.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Wrapf(err, "arimaatext: move number in %q", input)
		}
		moveNumber = n
		p1ToMove = m[2] != "s" && m[2] != "b"
	}

	rows, err := splitRows(input)
	if err != nil {
		return nil, err
	}

	var p1Pieces, elephants, camels, horses, dogs, cats, rabbits uint64
	for rowIdx, row := range rows {
		cells := []rune(row)
		col := 0
		for i := 1; i < len(cells) && col < square.BoardWidth; i += 2 {
			p, isP1, ok := parseCell(cells[i])
			if !ok {
				col++
				continue
			}

			bit := uint64(1) << uint(rowIdx*square.BoardWidth+col)
			switch p {
			case board.Elephant:
				elephants |= bit
			case board.Camel:
				camels |= bit
			case board.Horse:
				horses |= bit
			case board.Dog:
				dogs |= bit
			case board.Cat:
				cats |= bit
			case board.Rabbit:
				rabbits |= bit
			}
			if isP1 {
				p1Pieces |= bit
			}
			col++
		}
	}

	b := board.New(p1Pieces, elephants, camels, horses, dogs, cats, rabbits)
	return game.NewFromBoard(b, p1ToMove, moveNumber), nil
}

// splitRows extracts the 8 row interiors from the bordered text, in the
// same way the piped row format does it naturally: splitting the whole
// input on '|' leaves the odd-indexed segments as the interiors of the 8
// row lines, in top-to-bottom order, since the border and header lines
// carry no '|' at all.
func splitRows(input string) ([]string, error) {
	parts := strings.Split(input, "|")

	var rows []string
	for i := 1; i < len(parts); i += 2 {
		rows = append(rows, parts[i])
	}
	if len(rows) != square.BoardHeight {
		return nil, parseErrorf(input, "expected %d board rows, found %d", square.BoardHeight, len(rows))
	}
	return rows, nil
}

func parseCell(r rune) (board.Piece, bool, bool) {
	p, ok := board.ParsePiece(r)
	if !ok {
		return 0, false, false
	}
	return p, unicode.IsUpper(r), true
}
