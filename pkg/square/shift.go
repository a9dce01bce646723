package square

// Edge masks used to keep directional bitboard shifts from wrapping around
// the board (e.g. a piece on file h "moving right" must not reappear on
// file a of the row below).
const (
	TopRowMask      uint64 = 0x00000000000000FF
	BottomRowMask   uint64 = 0xFF00000000000000
	LeftColumnMask  uint64 = 0x0101010101010101
	RightColumnMask uint64 = 0x8080808080808080
)

// TrapMask marks the four trap squares: c6, f6, c3, f3.
const TrapMask uint64 = (uint64(1) << 18) | (uint64(1) << 21) | (uint64(1) << 42) | (uint64(1) << 45)

// Setup-phase placement masks: player 1 (gold) fills ranks 1-2, player 2
// (silver) fills ranks 7-8.
const (
	P1PlacementMask uint64 = BottomRowMask | (BottomRowMask >> BoardWidth)
	P2PlacementMask uint64 = TopRowMask | (TopRowMask << BoardWidth)

	LastP1PlacementMask uint64 = uint64(1) << 63 // h1, filled last among P1PlacementMask
	LastP2PlacementMask uint64 = uint64(1) << 15 // h7, filled last among P2PlacementMask
)

// Goal masks: player 1 (gold) moves toward rank 8, player 2 (silver) toward
// rank 1.
const (
	P1ObjectiveMask uint64 = TopRowMask
	P2ObjectiveMask uint64 = BottomRowMask
)

// Shift shifts a single occupied bit one square in the given direction with
// no edge masking. The caller is responsible for knowing the move is legal;
// shifting off an edge quietly produces 0 or an unrelated bit.
func Shift(bit uint64, d Direction) uint64 {
	switch d {
	case Up:
		return bit >> BoardWidth
	case Down:
		return bit << BoardWidth
	case Left:
		return bit >> 1
	default:
		return bit << 1
	}
}

// ShiftMask shifts every bit of mask one square in the given direction,
// first clearing any bit that would wrap around an edge.
func ShiftMask(mask uint64, d Direction) uint64 {
	switch d {
	case Up:
		return (mask &^ TopRowMask) >> BoardWidth
	case Down:
		return (mask &^ BottomRowMask) << BoardWidth
	case Left:
		return (mask &^ LeftColumnMask) >> 1
	default:
		return (mask &^ RightColumnMask) << 1
	}
}

// ShiftMaskOpposite is ShiftMask in the opposite direction.
func ShiftMaskOpposite(mask uint64, d Direction) uint64 {
	return ShiftMask(mask, d.Opposite())
}
