package crosscheck

import (
	"sync"
	"testing"

	"chess-attacks/bitboard"
	"chess-attacks/movegen"
)

var (
	tablesOnce sync.Once
	tables     *movegen.Tables
)

func canonicalTables() *movegen.Tables {
	tablesOnce.Do(func() { tables = movegen.NewTables() })
	return tables
}

func TestOraclesAgree(t *testing.T) {
	tables := canonicalTables()
	for _, o := range []Oracle{Dragontooth(), Goose(), Reference()} {
		if ms := Check(tables, o, 200, 0x5eed); len(ms) != 0 {
			t.Errorf("%s: %d mismatches, first %v", o.Name(), len(ms), ms[0])
		}
	}
}

func TestCheckReference(t *testing.T) {
	tables := canonicalTables()
	for _, b := range []*movegen.MagicAttackBoard{tables.Rook, tables.Bishop} {
		if ms := CheckReference(b); len(ms) != 0 {
			t.Errorf("%v: %d mismatches, first %v", b.PieceType(), len(ms), ms[0])
		}
	}
}

// swapped answers rook queries with bishop attacks and vice versa.
type swapped struct{ Oracle }

func (s swapped) Rook(sq int, occ uint64) uint64   { return s.Oracle.Bishop(sq, occ) }
func (s swapped) Bishop(sq int, occ uint64) uint64 { return s.Oracle.Rook(sq, occ) }

func TestCheckReportsMismatches(t *testing.T) {
	ms := Check(canonicalTables(), swapped{Reference()}, 0, 1)
	// Empty and full boards on 64 squares, three pieces each; the queen
	// union is symmetric so only rook and bishop disagree.
	if len(ms) != 2*64*2 {
		t.Fatalf("got %d mismatches", len(ms))
	}
	m := ms[0]
	if m.Piece != movegen.PieceTypeRook || m.Square != 0 || m.Occupancy != bitboard.Empty {
		t.Fatalf("first mismatch %v", m)
	}
	if got := m.String(); got == "" || m.Oracle != "reference" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCheckIsDeterministic(t *testing.T) {
	// A deliberately broken oracle makes the sampled occupancies visible.
	a := Check(canonicalTables(), swapped{Dragontooth()}, 3, 42)
	b := Check(canonicalTables(), swapped{Dragontooth()}, 3, 42)
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestOracles(t *testing.T) {
	got, err := Oracles("all")
	if err != nil || len(got) != 3 {
		t.Fatalf("Oracles(all) = %v, %v", got, err)
	}
	got, err = Oracles("goose, dragontooth")
	if err != nil || len(got) != 2 || got[0].Name() != "goose" || got[1].Name() != "dragontooth" {
		t.Fatalf("Oracles(goose, dragontooth) = %v, %v", got, err)
	}
	if _, err := Oracles("stockfish"); err == nil {
		t.Fatal("unknown oracle accepted")
	}
}
