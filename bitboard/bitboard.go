package bitboard

import "math/bits"

// BitBoard is a set of squares, one bit per square. Bit i corresponds to
// square rank*8+file, so a1 is bit 0 and h8 is bit 63.
type BitBoard uint64

const (
	Empty BitBoard = 0
	Full  BitBoard = ^Empty

	FileA BitBoard = 0x0101010101010101
	FileB BitBoard = FileA << 1
	FileC BitBoard = FileA << 2
	FileD BitBoard = FileA << 3
	FileE BitBoard = FileA << 4
	FileF BitBoard = FileA << 5
	FileG BitBoard = FileA << 6
	FileH BitBoard = FileA << 7

	Rank1 BitBoard = 0xff
	Rank2 BitBoard = Rank1 << (8 * 1)
	Rank3 BitBoard = Rank1 << (8 * 2)
	Rank4 BitBoard = Rank1 << (8 * 3)
	Rank5 BitBoard = Rank1 << (8 * 4)
	Rank6 BitBoard = Rank1 << (8 * 5)
	Rank7 BitBoard = Rank1 << (8 * 6)
	Rank8 BitBoard = Rank1 << (8 * 7)

	// Edges holds every square on the outer ring of the board.
	Edges BitBoard = FileA | FileH | Rank1 | Rank8
)

// FileBoards and RankBoards are indexed by file and rank number (0-7).
var FileBoards = [8]BitBoard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
var RankBoards = [8]BitBoard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Square returns the single-bit board for square index i. Indices outside
// [0,63] yield Empty.
func Square(i int) BitBoard {
	if i < 0 || i > 63 {
		return Empty
	}
	return BitBoard(1) << uint(i)
}

func (b BitBoard) Has(i int) bool { return b&Square(i) != 0 }

func (b BitBoard) Set(i int) BitBoard { return b | Square(i) }

func (b BitBoard) Clear(i int) BitBoard { return b &^ Square(i) }

func (b BitBoard) IsEmpty() bool { return b == 0 }

// PopCount returns the number of squares in b.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// PopLSB removes the lowest square from b and returns its index. ok is
// false when b is empty.
func (b *BitBoard) PopLSB() (sq int, ok bool) {
	sq, ok = BitScanForward(*b)
	if ok {
		*b &= *b - 1
	}
	return sq, ok
}

// Squares lists the indices of the set bits of b in increasing order.
func (b BitBoard) Squares() []int {
	out := make([]int, 0, b.PopCount())
	for it := b; ; {
		sq, ok := it.PopLSB()
		if !ok {
			return out
		}
		out = append(out, sq)
	}
}
