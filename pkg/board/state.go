package board

import "github.com/herohde/arimaa/pkg/square"

// State is a set of bitboards representing a full piece placement. Bits are
// from the perspective of player 1 (gold): bit i is set iff square i (see
// package square) is occupied by the relevant piece type/owner.
type State struct {
	P1Pieces uint64 // squares occupied by a player-1 piece, of any type
	AllPieces uint64 // squares occupied by any piece

	Elephants uint64
	Camels    uint64
	Horses    uint64
	Dogs      uint64
	Cats      uint64
	Rabbits   uint64
}

// Empty returns the board with no pieces placed, as at the start of setup.
func Empty() State {
	return State{}
}

// New builds a board from the given per-piece-type bitboards (each combining
// both players' pieces of that type) and a mask of which of those squares
// belong to player 1.
func New(p1Pieces, elephants, camels, horses, dogs, cats, rabbits uint64) State {
	return State{
		P1Pieces:  p1Pieces,
		AllPieces: elephants | camels | horses | dogs | cats | rabbits,
		Elephants: elephants,
		Camels:    camels,
		Horses:    horses,
		Dogs:      dogs,
		Cats:      cats,
		Rabbits:   rabbits,
	}
}

// BitsByPieceType returns the bits occupied by the given piece type, for
// both players.
func (s State) BitsByPieceType(p Piece) uint64 {
	switch p {
	case Elephant:
		return s.Elephants
	case Camel:
		return s.Camels
	case Horse:
		return s.Horses
	case Dog:
		return s.Dogs
	case Cat:
		return s.Cats
	default:
		return s.Rabbits
	}
}

// PlayerMask returns the bits occupied by the given player's pieces, of any
// type.
func (s State) PlayerMask(p1 bool) uint64 {
	if p1 {
		return s.P1Pieces
	}
	return ^s.P1Pieces & s.AllPieces
}

// BitsForPiece returns the bits occupied by the given player's pieces of the
// given type.
func (s State) BitsForPiece(p Piece, p1 bool) uint64 {
	return s.BitsByPieceType(p) & s.PlayerMask(p1)
}

// PlacementBit returns the single lowest-index empty square within whichever
// player's setup area still has room, or 0 if setup is complete. Only
// meaningful during the placement phase.
func (s State) PlacementBit() uint64 {
	mask := square.P1PlacementMask
	if s.P1Pieces&square.P1PlacementMask == square.P1PlacementMask {
		mask = square.P2PlacementMask
	}
	open := ^s.AllPieces & mask
	if open == 0 {
		return 0
	}
	return open & -open
}

// PieceTypeAtBit returns the piece type occupying the single given bit. The
// bit must be occupied.
func (s State) PieceTypeAtBit(bit uint64) Piece {
	switch {
	case s.Rabbits&bit != 0:
		return Rabbit
	case s.Elephants&bit != 0:
		return Elephant
	case s.Camels&bit != 0:
		return Camel
	case s.Horses&bit != 0:
		return Horse
	case s.Dogs&bit != 0:
		return Dog
	default:
		return Cat
	}
}

// PieceTypeAtSquare returns the piece type at the given square, if occupied.
func (s State) PieceTypeAtSquare(sq square.Square) (Piece, bool) {
	bit := sq.Bit()
	if bit&s.AllPieces == 0 {
		return 0, false
	}
	return s.PieceTypeAtBit(bit), true
}

// TrappedPieceBits returns the bit of any unsupported piece sitting on a trap
// square, or 0 if none. At most one piece can be trapped per action since
// only one piece moves at a time.
func (s State) TrappedPieceBits() uint64 {
	if s.AllPieces&square.TrapMask == 0 {
		return 0
	}
	return unsupportedPieceBits(s) & square.TrapMask
}

// Supported returns the subset of mask that is orthogonally adjacent to
// another bit of mask (i.e. pieces of the same owner standing next to each
// other).
func Supported(mask uint64) uint64 {
	var supported uint64
	for _, d := range square.Directions {
		supported |= mask & square.ShiftMask(mask, d)
	}
	return supported
}

// Influence returns every square orthogonally adjacent to a bit of mask.
func Influence(mask uint64) uint64 {
	var influence uint64
	for _, d := range square.Directions {
		influence |= square.ShiftMask(mask, d)
	}
	return influence
}

func unsupportedPieceBits(s State) uint64 {
	return s.AllPieces &^ bothPlayerSupported(s)
}

func bothPlayerSupported(s State) uint64 {
	p2 := s.AllPieces &^ s.P1Pieces
	return Supported(s.P1Pieces) | Supported(p2)
}

// ThreatenedPieces returns the subset of preyMask that stands adjacent to a
// strictly stronger piece in predatorMask. Elephants threaten camels and
// below, camels threaten horses and below (directly or via an elephant's
// influence), and so on down to cats threatening rabbits.
func ThreatenedPieces(predatorMask, preyMask uint64, s State) uint64 {
	elephantInfluence := Influence(s.Elephants & predatorMask)
	camelInfluence := Influence(s.Camels & predatorMask)
	horseInfluence := Influence(s.Horses & predatorMask)
	dogInfluence := Influence(s.Dogs & predatorMask)
	catInfluence := Influence(s.Cats & predatorMask)

	camelThreats := elephantInfluence
	horseThreats := camelThreats | camelInfluence
	dogThreats := horseThreats | horseInfluence
	catThreats := dogThreats | dogInfluence
	rabbitThreats := catThreats | catInfluence

	threatened := (s.Camels & camelThreats) |
		(s.Horses & horseThreats) |
		(s.Dogs & dogThreats) |
		(s.Cats & catThreats) |
		(s.Rabbits & rabbitThreats)

	return threatened & preyMask
}

// NonFrozen returns the subset of ownMask that can legally take an action:
// a piece is frozen only if it is threatened by an opposing piece and has no
// friendly piece supporting it.
func NonFrozen(ownMask, oppMask uint64, s State) uint64 {
	threatened := ThreatenedPieces(oppMask, ownMask, s)
	return ownMask & (^threatened | Supported(ownMask))
}

// LesserPieces returns the bits of every piece type strictly weaker than p,
// for both players. A piece may only pull (or be pulled as) a lesser piece.
func LesserPieces(p Piece, s State) uint64 {
	var mask uint64
	for _, other := range AllPieces {
		if other < p {
			mask |= s.BitsByPieceType(other)
		}
	}
	return mask
}

// CanMoveInDirection returns the bits of every square whose neighbor in
// direction d is empty. Empty squares are included too; callers intersect
// the result with the pieces they care about.
func CanMoveInDirection(d square.Direction, s State) uint64 {
	empty := ^s.AllPieces
	return square.ShiftMaskOpposite(empty, d)
}

// MovePiece shifts the single piece on sourceBit one square in direction d,
// returning the resulting board. remove_trapped_pieces-equivalent handling
// is the caller's responsibility (see TakeMoveAction).
func MovePiece(s State, sourceBit uint64, d square.Direction) State {
	shift := func(mask uint64) uint64 {
		return square.Shift(mask&sourceBit, d) | mask&^sourceBit
	}
	return State{
		P1Pieces:  shift(s.P1Pieces),
		AllPieces: shift(s.AllPieces),
		Elephants: shift(s.Elephants),
		Camels:    shift(s.Camels),
		Horses:    shift(s.Horses),
		Dogs:      shift(s.Dogs),
		Cats:      shift(s.Cats),
		Rabbits:   shift(s.Rabbits),
	}
}

// RemoveTrappedPieces clears any currently-trapped piece from the board,
// returning the updated board and whether a piece was removed.
func RemoveTrappedPieces(s State) (State, bool) {
	trapped := s.TrappedPieceBits()
	if trapped == 0 {
		return s, false
	}
	keep := ^trapped
	return State{
		P1Pieces:  s.P1Pieces & keep,
		AllPieces: s.AllPieces & keep,
		Elephants: s.Elephants & keep,
		Camels:    s.Camels & keep,
		Horses:    s.Horses & keep,
		Dogs:      s.Dogs & keep,
		Cats:      s.Cats & keep,
		Rabbits:   s.Rabbits & keep,
	}, true
}

// TakeMoveAction applies a single-step move and the resulting trap removal,
// returning the new board and whether a piece was trapped.
func TakeMoveAction(s State, sourceBit uint64, d square.Direction) (State, bool) {
	moved := MovePiece(s, sourceBit, d)
	return RemoveTrappedPieces(moved)
}

// PlacePiece adds a piece of the given type to the empty square identified
// by bit, owned by player 1 iff p1.
func PlacePiece(s State, p Piece, bit uint64, p1 bool) State {
	n := s
	switch p {
	case Elephant:
		n.Elephants |= bit
	case Camel:
		n.Camels |= bit
	case Horse:
		n.Horses |= bit
	case Dog:
		n.Dogs |= bit
	case Cat:
		n.Cats |= bit
	default:
		n.Rabbits |= bit
	}
	n.AllPieces |= bit
	if p1 {
		n.P1Pieces |= bit
	}
	return n
}
