package magicstore

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"chess-attacks/bitboard"
	"chess-attacks/movegen"
)

var (
	bishopOnce sync.Once
	bishop     *movegen.MagicAttackBoard
)

func bishopTable() *movegen.MagicAttackBoard {
	bishopOnce.Do(func() {
		bishop = movegen.NewMagicAttackBoard(movegen.PieceTypeBishop)
	})
	return bishop
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "magics.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openStore(t)
	b := bishopTable()
	if err := s.Save(b, 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	magics, err := s.Load(movegen.PieceTypeBishop, 203)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if magics != b.Magics() {
		t.Fatalf("loaded magics differ")
	}
}

func TestSaveLoadHighBit(t *testing.T) {
	s := openStore(t)
	rook := movegen.NewMagicAttackBoard(movegen.PieceTypeRook)
	if rook.Entry(0).Magic>>63 == 0 {
		t.Fatal("canonical rook a1 magic no longer has its top bit set")
	}
	if err := s.Save(rook, 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(movegen.PieceTypeRook, 203)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != rook.Magics() {
		t.Fatal("magics with the top bit set did not survive the signed column")
	}
	if err := s.Save(bishopTable(), 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok, err := s.Has(203); err != nil || !ok {
		t.Fatalf("Has(203) = %v, %v", ok, err)
	}
}

func TestRebuild(t *testing.T) {
	s := openStore(t)
	b := bishopTable()
	if err := s.Save(b, 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rebuilt, err := s.Rebuild(movegen.PieceTypeBishop, 203)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if rebuilt.Entries() != b.Entries() {
		t.Fatal("rebuilt entries differ")
	}
	for sq := 0; sq < 64; sq++ {
		for _, occ := range []uint64{0, 0xffffffffffffffff, 0x0000181818180000, 0x8142241818244281} {
			if rebuilt.Attacks(sq, bitboard.BitBoard(occ)) != b.Attacks(sq, bitboard.BitBoard(occ)) {
				t.Fatalf("square %d occ=%x differs", sq, occ)
			}
		}
	}
}

func TestNotFound(t *testing.T) {
	s := openStore(t)
	if _, err := s.Load(movegen.PieceTypeRook, 203); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty store: err = %v", err)
	}
	if err := s.Save(bishopTable(), 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Rebuild(movegen.PieceTypeBishop, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other warmup: err = %v", err)
	}
	if _, err := s.db.Exec(`DELETE FROM magics WHERE square = 17`); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(movegen.PieceTypeBishop, 203); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing square: err = %v", err)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := openStore(t)
	b := bishopTable()
	for i := 0; i < 2; i++ {
		if err := s.Save(b, 203); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM magics`); err != nil {
		t.Fatal(err)
	}
	if n != 64 {
		t.Fatalf("%d rows after saving twice", n)
	}
	if err := s.Save(b, 7); err != nil {
		t.Fatalf("Save: %v", err)
	}
	warmups, err := s.Warmups(movegen.PieceTypeBishop)
	if err != nil {
		t.Fatalf("Warmups: %v", err)
	}
	if len(warmups) != 2 || warmups[0] != 7 || warmups[1] != 203 {
		t.Fatalf("Warmups = %v", warmups)
	}
	if ok, err := s.Has(203); err != nil || ok {
		t.Fatalf("Has(203) without rook = %v, %v", ok, err)
	}
}

func TestCorruptRows(t *testing.T) {
	s := openStore(t)
	if err := s.Save(bishopTable(), 203); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.db.Exec(`UPDATE magics SET slot_offset = slot_offset + 1 WHERE square = 9`); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Rebuild(movegen.PieceTypeBishop, 203); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("shifted offset: err = %v", err)
	}
	if _, err := s.db.Exec(`UPDATE magics SET magic = 0 WHERE square = 9`); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Rebuild(movegen.PieceTypeBishop, 203); !errors.Is(err, movegen.ErrBadMagic) {
		t.Fatalf("zero magic: err = %v", err)
	}
}
