package crosscheck

import (
	"fmt"

	"golang.org/x/exp/rand"

	"chess-attacks/bitboard"
	"chess-attacks/geometry"
	"chess-attacks/movegen"
)

// Mismatch is one occupancy on which a table and its comparison disagree.
type Mismatch struct {
	Oracle    string
	Piece     movegen.PieceType
	Square    int
	Occupancy bitboard.BitBoard
	Got       bitboard.BitBoard
	Want      bitboard.BitBoard
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %v on %v occ=%#016x got=%#016x want=%#016x",
		m.Oracle, m.Piece, geometry.MustFromIndex(m.Square), uint64(m.Occupancy), uint64(m.Got), uint64(m.Want))
}

// Check compares rook, bishop and queen attacks from t with o on every
// square. Each square sees the empty and full boards plus samples random
// occupancies drawn from a generator seeded with seed.
func Check(t *movegen.Tables, o Oracle, samples int, seed uint64) []Mismatch {
	rng := rand.New(rand.NewSource(seed))
	var out []Mismatch
	compare := func(pt movegen.PieceType, sq int, occ, got, want bitboard.BitBoard) {
		if got != want {
			out = append(out, Mismatch{o.Name(), pt, sq, occ, got, want})
		}
	}
	for sq := 0; sq < 64; sq++ {
		occs := make([]bitboard.BitBoard, 0, samples+2)
		occs = append(occs, bitboard.Empty, bitboard.Full)
		for i := 0; i < samples; i++ {
			occs = append(occs, bitboard.BitBoard(rng.Uint64()))
		}
		for _, occ := range occs {
			rook := bitboard.BitBoard(o.Rook(sq, uint64(occ)))
			bishop := bitboard.BitBoard(o.Bishop(sq, uint64(occ)))
			compare(movegen.PieceTypeRook, sq, occ, t.Rook.Attacks(sq, occ), rook)
			compare(movegen.PieceTypeBishop, sq, occ, t.Bishop.Attacks(sq, occ), bishop)
			compare(movegen.PieceTypeQueen, sq, occ, t.Queen(sq, occ), rook|bishop)
		}
	}
	return out
}

// CheckReference compares b with the ray walker on every subset of every
// square's mask, which covers every distinct lookup the table can make.
func CheckReference(b *movegen.MagicAttackBoard) []Mismatch {
	var out []Mismatch
	dirs := movegen.Directions(b.PieceType())
	for sq, p := range geometry.Squares() {
		bitboard.ForEachSubset(b.Entry(sq).Mask, func(occ bitboard.BitBoard) {
			got, want := b.Attacks(sq, occ), movegen.RayAttack(dirs, p, occ)
			if got != want {
				out = append(out, Mismatch{"reference", b.PieceType(), sq, occ, got, want})
			}
		})
	}
	return out
}
