package movegen

import (
	"context"
	"errors"
	"fmt"

	"chess-attacks/bitboard"
	"chess-attacks/geometry"
	"chess-attacks/rkiss"
)

// Sizes of the shared attack arrays: the sum over all squares of
// 2^popcount(mask).
const (
	RookAttacksSize   = 0x19000
	BishopAttacksSize = 0x1480
)

// ErrBadMagic is returned when a supplied magic number maps two
// occupancies with different attack sets to the same slot.
var ErrBadMagic = errors.New("magic number has a destructive collision")

// MagicEntry locates one square's slice of the shared attack array.
type MagicEntry struct {
	Mask   bitboard.BitBoard
	Shift  uint
	Offset int
	Magic  bitboard.BitBoard
}

// Index hashes occupancy into the shared attack array.
func (e *MagicEntry) Index(occupancy bitboard.BitBoard) int {
	return e.Offset + int(uint64((occupancy&e.Mask)*e.Magic)>>e.Shift)
}

// Size is the number of slots owned by the square.
func (e *MagicEntry) Size() int { return 1 << (64 - e.Shift) }

// MagicAttackBoard answers sliding attacks with one multiply, one shift and
// one load. It is immutable after construction.
type MagicAttackBoard struct {
	pieceType PieceType
	entries   [64]MagicEntry
	attempts  [64]int
	attacks   []bitboard.BitBoard
}

// AttacksSize returns the length of the shared attack array for a rook or
// a bishop, and 0 for anything else.
func AttacksSize(pt PieceType) int {
	switch pt {
	case PieceTypeRook:
		return RookAttacksSize
	case PieceTypeBishop:
		return BishopAttacksSize
	}
	return 0
}

func mustSlider(caller string, pt PieceType) {
	if pt != PieceTypeRook && pt != PieceTypeBishop {
		panic(fmt.Sprintf("%s: illegal piece type argument %v", caller, pt))
	}
}

// NewMagicAttackBoard runs the canonical, sequential magic search for a
// rook or a bishop. Any other piece type panics.
func NewMagicAttackBoard(pt PieceType) *MagicAttackBoard {
	mustSlider("NewMagicAttackBoard", pt)
	b, err := BuildMagicAttackBoard(context.Background(), pt, DefaultConfig())
	if err != nil {
		// Only cancellation can fail a build.
		panic(err)
	}
	return b
}

// newLayout fills in masks, shifts and offsets. Offsets are cumulative in
// square order, so the squares partition the attack array.
func newLayout(pt PieceType) *MagicAttackBoard {
	b := &MagicAttackBoard{
		pieceType: pt,
		attacks:   make([]bitboard.BitBoard, AttacksSize(pt)),
	}
	dirs := Directions(pt)
	offset := 0
	for sq := range b.entries {
		e := &b.entries[sq]
		e.Mask = RayMask(sq, dirs, false)
		e.Shift = uint(64 - e.Mask.PopCount())
		e.Offset = offset
		offset += e.Size()
	}
	if offset != len(b.attacks) {
		panic(fmt.Sprintf("%v attack table layout uses %#x slots, want %#x", pt, offset, len(b.attacks)))
	}
	return b
}

// occupancySet is every subset of a square's mask paired with the attack
// set it must hash to.
type occupancySet struct {
	occupancy []bitboard.BitBoard
	reference []bitboard.BitBoard
}

func newOccupancySet(sq int, e *MagicEntry, dirs []geometry.Direction) occupancySet {
	origin := geometry.MustFromIndex(sq)
	n := e.Size()
	set := occupancySet{
		occupancy: make([]bitboard.BitBoard, 0, n),
		reference: make([]bitboard.BitBoard, 0, n),
	}
	bitboard.ForEachSubset(e.Mask, func(occ bitboard.BitBoard) {
		set.occupancy = append(set.occupancy, occ)
		set.reference = append(set.reference, RayAttack(dirs, origin, occ))
	})
	return set
}

// fill writes every reference attack through e. It reports false at the
// first slot already holding a different attack set. region is zeroed
// first, so a failed fill leaves garbage that the next attempt clears.
func (set *occupancySet) fill(e *MagicEntry, region []bitboard.BitBoard) bool {
	for i := range region {
		region[i] = 0
	}
	for i, occ := range set.occupancy {
		idx := e.Index(occ) - e.Offset
		if region[idx] != 0 && region[idx] != set.reference[i] {
			return false
		}
		region[idx] = set.reference[i]
	}
	return true
}

// ctxCheckInterval is how many candidates are drawn between context checks.
const ctxCheckInterval = 1 << 12

// search draws candidates from rng until one fills the square's region
// without a destructive collision. There is no attempt limit; only ctx can
// stop it. It returns the number of candidates that passed the sparsity
// filter and were tried.
func (set *occupancySet) search(ctx context.Context, rng *rkiss.RKISS, booster int, e *MagicEntry, region []bitboard.BitBoard) (int, error) {
	attempts, draws := 0, 0
	for {
		var magic uint64
		for {
			if draws%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return attempts, err
				}
			}
			draws++
			magic = rng.MagicRand(booster)
			if bitboard.BitBoard((magic*uint64(e.Mask))>>56).PopCount() < 6 {
				break
			}
		}
		attempts++
		e.Magic = bitboard.BitBoard(magic)
		if set.fill(e, region) {
			return attempts, nil
		}
	}
}

// NewMagicAttackBoardFromMagics rebuilds a table from previously found
// magic numbers without searching. A magic that collides destructively is
// reported with ErrBadMagic.
func NewMagicAttackBoardFromMagics(pt PieceType, magics [64]bitboard.BitBoard) (*MagicAttackBoard, error) {
	mustSlider("NewMagicAttackBoardFromMagics", pt)
	b := newLayout(pt)
	dirs := Directions(pt)
	for sq := range b.entries {
		e := &b.entries[sq]
		e.Magic = magics[sq]
		set := newOccupancySet(sq, e, dirs)
		if !set.fill(e, b.region(sq)) {
			return nil, fmt.Errorf("%w: %v on %v magic=%#x", ErrBadMagic, pt, geometry.MustFromIndex(sq), uint64(e.Magic))
		}
	}
	return b, nil
}

func (b *MagicAttackBoard) region(sq int) []bitboard.BitBoard {
	e := &b.entries[sq]
	return b.attacks[e.Offset : e.Offset+e.Size()]
}

func (b *MagicAttackBoard) Attacks(square int, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return b.attacks[b.entries[square].Index(occupancy)]
}

func (b *MagicAttackBoard) AttacksFrom(p geometry.SquarePosition, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return b.Attacks(p.Index(), occupancy)
}

// ComputeIndex exposes the slot Attacks would read.
func (b *MagicAttackBoard) ComputeIndex(square int, occupancy bitboard.BitBoard) int {
	return b.entries[square].Index(occupancy)
}

func (b *MagicAttackBoard) PieceType() PieceType { return b.pieceType }

func (b *MagicAttackBoard) Entry(square int) MagicEntry { return b.entries[square] }

func (b *MagicAttackBoard) Entries() [64]MagicEntry { return b.entries }

func (b *MagicAttackBoard) Magics() [64]bitboard.BitBoard {
	var out [64]bitboard.BitBoard
	for sq := range out {
		out[sq] = b.entries[sq].Magic
	}
	return out
}

// Attempts reports how many candidates each square's search tried. Tables
// rebuilt from known magics report zero.
func (b *MagicAttackBoard) Attempts() [64]int { return b.attempts }

// Len is the size of the shared attack array.
func (b *MagicAttackBoard) Len() int { return len(b.attacks) }
