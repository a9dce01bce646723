package arimaatext

import "github.com/herohde/arimaa/pkg/movegen"

// FormatAction renders a single action in its one-token text form, e.g.
// "e2n" for a move, "E" for a placement, "p" for a pass.
func FormatAction(a movegen.Action) string {
	return a.String()
}

// ParseAction parses the one-token text form of a single action.
func ParseAction(s string) (movegen.Action, error) {
	a, err := movegen.Parse(s)
	if err != nil {
		return movegen.Action{}, parseErrorf(s, "%v", err)
	}
	return a, nil
}
