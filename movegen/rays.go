package movegen

import (
	"chess-attacks/bitboard"
	"chess-attacks/geometry"
)

// RayAttack casts a ray from origin in each direction and returns every
// square reached. A ray includes the first occupied square it meets and
// stops there.
func RayAttack(directions []geometry.Direction, origin geometry.SquarePosition, occupancy bitboard.BitBoard) bitboard.BitBoard {
	var result bitboard.BitBoard
	for _, d := range directions {
		for p, ok := geometry.Step(origin, d); ok; p, ok = geometry.Step(p, d) {
			bb := p.BitBoard()
			result |= bb
			if occupancy&bb != 0 {
				break
			}
		}
	}
	return result
}

// RayMask is the union of the empty-board rays from square. With edges
// false the last square of each ray is dropped: a piece there cannot
// shorten the ray, so it never affects the attack set.
func RayMask(square int, directions []geometry.Direction, edges bool) bitboard.BitBoard {
	origin, err := geometry.FromIndex(square)
	if err != nil {
		return bitboard.Empty
	}
	var result bitboard.BitBoard
	for _, d := range directions {
		last, moved := origin, false
		for p, ok := geometry.Step(origin, d); ok; p, ok = geometry.Step(p, d) {
			result |= p.BitBoard()
			last, moved = p, true
		}
		if !edges && moved {
			result &^= last.BitBoard()
		}
	}
	return result
}

// RayMasks computes RayMask for every square.
func RayMasks(directions []geometry.Direction, edges bool) [64]bitboard.BitBoard {
	var masks [64]bitboard.BitBoard
	for sq := range masks {
		masks[sq] = RayMask(sq, directions, edges)
	}
	return masks
}

// SlidingAttackBoards returns the reference attack for every subset of
// mask, in subset enumeration order.
func SlidingAttackBoards(mask bitboard.BitBoard, directions []geometry.Direction, origin geometry.SquarePosition) []bitboard.BitBoard {
	out := make([]bitboard.BitBoard, 0, bitboard.SubsetCount(mask))
	bitboard.ForEachSubset(mask, func(occ bitboard.BitBoard) {
		out = append(out, RayAttack(directions, origin, occ))
	})
	return out
}

var (
	rookDirections   = geometry.Cardinal[:]
	bishopDirections = geometry.Intermediate[:]
)

// Directions returns the ray or step set used for pt.
func Directions(pt PieceType) []geometry.Direction {
	switch pt {
	case PieceTypeRook:
		return rookDirections
	case PieceTypeBishop:
		return bishopDirections
	case PieceTypeQueen:
		return append(append([]geometry.Direction(nil), rookDirections...), bishopDirections...)
	case PieceTypeKing:
		return geometry.KingDirections[:]
	case PieceTypeKnight:
		return geometry.KnightDirections[:]
	}
	return nil
}
