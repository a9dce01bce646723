// arimaa-perft is a movegen debugging tool. See:
// https://www.chessprogramming.org/Perft_Results for the chess analogue
// this is modeled on; Arimaa perft counts single steps, not full moves.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/herohde/arimaa/pkg/arimaatext"
	"github.com/herohde/arimaa/pkg/game"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth    = flag.Int("depth", 2, "Search depth, in steps")
	position = flag.String("board", "", "Start position in board-text form (default: standard opening setup)")
	divide   = flag.Bool("divide", false, "Divide counts by initial action")
	print    = flag.Bool("print", false, "Print the start position and exit, without searching")
	replay   = flag.String("replay", "", "Space-separated action tokens to replay on the start position before searching")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	text := *position
	if text == "" {
		text = standardOpening
	}

	s, err := arimaatext.Parse(text)
	if err != nil {
		logw.Exitf(ctx, "Invalid board %q: %v", text, err)
	}

	if *replay != "" {
		s = replayActions(ctx, s, *replay)
	}

	logw.Infof(ctx, "arimaa-perft %v: searching %v to depth %v", version, s, *depth)

	if outcome, ok := startingTerminalOutcome(s).V(); ok {
		logw.Infof(ctx, "Start position is already terminal: %v", outcome)
	}

	if *print {
		printBoard(s)
		return
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(s, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

// replayActions applies each space-separated action token to s in order,
// using the same one-token text form the divide output prints.
func replayActions(ctx context.Context, s *game.State, tokens string) *game.State {
	for _, tok := range strings.Fields(tokens) {
		a, err := arimaatext.ParseAction(tok)
		if err != nil {
			logw.Exitf(ctx, "Invalid replay action %q: %v", tok, err)
		}
		s = s.TakeAction(a)
	}
	return s
}

// startingTerminalOutcome wraps the optional terminal result at this CLI
// boundary, mirroring the engine package's own lang.Optional use at its
// public-facing edge rather than inside the pure search/game packages.
func startingTerminalOutcome(s *game.State) lang.Optional[game.Terminal] {
	if t, ok := s.IsTerminal(); ok {
		return lang.Some(t)
	}
	return lang.Optional[game.Terminal]{}
}

func search(s *game.State, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}
	if _, ok := s.IsTerminal(); ok {
		return 1
	}

	var nodes int64
	for _, a := range s.ValidActionsNoRep() {
		next := s.TakeAction(a)
		count := search(next, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", arimaatext.FormatAction(a), count)
		}
		nodes += count
	}
	return nodes
}

// printBoard renders the board-text form of s, colorizing player 1 (gold)
// pieces yellow and player 2 (silver) pieces cyan.
func printBoard(s *game.State) {
	gold := color.New(color.FgYellow).SprintFunc()
	silver := color.New(color.FgCyan).SprintFunc()

	for _, r := range arimaatext.Render(s) {
		switch {
		case r >= 'A' && r <= 'Z':
			fmt.Print(gold(string(r)))
		case r >= 'a' && r <= 'z' && r != 'x':
			fmt.Print(silver(string(r)))
		default:
			fmt.Print(string(r))
		}
	}
}

// standardOpening is the standard Arimaa opening setup: each side's
// rabbits on the row closest to the board's middle, majors on the row
// closest to its own edge.
const standardOpening = `2g
 +-----------------+
8| h c d m e d c h |
7| r r r r r r r r |
6|     x     x     |
5|                 |
4|                 |
3|     x     x     |
2| R R R R R R R R |
1| H C D M E D C H |
 +-----------------+
   a b c d e f g h
`
