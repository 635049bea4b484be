package geometry

import (
	"errors"
	"fmt"

	"chess-attacks/bitboard"
)

// ErrOutOfBounds is returned when a square index lies outside [0,63].
var ErrOutOfBounds = errors.New("square index out of bounds")

// SquarePosition addresses a square by rank and file, both in [0,7].
type SquarePosition struct {
	Rank int
	File int
}

func New(rank, file int) SquarePosition {
	return SquarePosition{Rank: rank, File: file}
}

// FromIndex converts a flat square index (rank*8+file) into a position.
func FromIndex(index int) (SquarePosition, error) {
	if index < 0 || index > 63 {
		return SquarePosition{}, fmt.Errorf("%w: %d", ErrOutOfBounds, index)
	}
	return SquarePosition{Rank: index / 8, File: index % 8}, nil
}

// MustFromIndex is FromIndex for indices already known to be on the board.
func MustFromIndex(index int) SquarePosition {
	p, err := FromIndex(index)
	if err != nil {
		panic(err)
	}
	return p
}

func (p SquarePosition) Index() int { return p.Rank*8 + p.File }

func (p SquarePosition) BitBoard() bitboard.BitBoard { return bitboard.Square(p.Index()) }

func (p SquarePosition) String() string {
	if p.Rank < 0 || p.Rank > 7 || p.File < 0 || p.File > 7 {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{'a' + byte(p.File), '1' + byte(p.Rank)})
}

// Squares returns all 64 positions in index order.
func Squares() []SquarePosition {
	out := make([]SquarePosition, 64)
	for i := range out {
		out[i] = SquarePosition{Rank: i / 8, File: i % 8}
	}
	return out
}
