package geometry

import (
	"errors"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	for i, p := range Squares() {
		if p.Index() != i {
			t.Errorf("Squares()[%d].Index() = %d", i, p.Index())
		}
		q, err := FromIndex(i)
		if err != nil || q != p {
			t.Errorf("FromIndex(%d) = %v, %v", i, q, err)
		}
		if p.BitBoard() != 1<<uint(i) {
			t.Errorf("%v.BitBoard() = %x", p, uint64(p.BitBoard()))
		}
	}
}

func TestFromIndexOutOfBounds(t *testing.T) {
	for _, i := range []int{-1, 64, 100} {
		if _, err := FromIndex(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("FromIndex(%d) err = %v", i, err)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		p   SquarePosition
		out string
	}{
		{New(0, 0), "a1"},
		{New(3, 3), "d4"},
		{New(7, 7), "h8"},
		{New(8, 0), "(8,0)"},
	}
	for _, tc := range cases {
		if got := tc.p.String(); got != tc.out {
			t.Errorf("%#v.String() = %q != %q", tc.p, got, tc.out)
		}
	}
}

func TestDirectionArithmetic(t *testing.T) {
	if NorthEast != (Direction{1, 1}) || SouthWest != (Direction{-1, -1}) {
		t.Fatalf("diagonals: %v %v", NorthEast, SouthWest)
	}
	if got := North.Scale(3); got != (Direction{3, 0}) {
		t.Errorf("North*3 = %v", got)
	}
	if got := (Direction{2, -3}).Mul(Direction{-1, 2}); got != (Direction{-2, -6}) {
		t.Errorf("Mul = %v", got)
	}
	if got := FromCardinal(2, 0, 1, 0); got != KnightDirections[0] {
		t.Errorf("FromCardinal(2,0,1,0) = %v want %v", got, KnightDirections[0])
	}
	if got := FromCardinal(1, 1, 1, 1); got != (Direction{}) {
		t.Errorf("FromCardinal(1,1,1,1) = %v", got)
	}
}

func TestStepExhaustive(t *testing.T) {
	var dirs []Direction
	dirs = append(dirs, Cardinal[:]...)
	dirs = append(dirs, Intermediate[:]...)
	dirs = append(dirs, KnightDirections[:]...)
	for _, p := range Squares() {
		for _, d := range dirs {
			rank, file := p.Rank+d.Rank, p.File+d.File
			inside := rank >= 0 && rank < 8 && file >= 0 && file < 8
			got, ok := Step(p, d)
			if ok != inside {
				t.Errorf("Step(%v, %v) ok=%v want %v", p, d, ok, inside)
				continue
			}
			if ok && (got.Rank != rank || got.File != file) {
				t.Errorf("Step(%v, %v) = %v want (%d,%d)", p, d, got, rank, file)
			}
		}
	}
}

func TestStepNoWrap(t *testing.T) {
	cases := []struct {
		p SquarePosition
		d Direction
	}{
		{New(1, 0), West},
		{New(0, 7), East},
		{New(0, 0), South},
		{New(7, 3), North},
		{New(3, 7), Direction{0, 9}},
		{New(3, 0), Direction{0, -9}},
		{New(6, 6), Direction{-9, 0}},
	}
	for _, tc := range cases {
		if got, ok := Step(tc.p, tc.d); ok {
			t.Errorf("Step(%v, %v) = %v, want off-board", tc.p, tc.d, got)
		}
	}
}

func TestKingKnightSets(t *testing.T) {
	seen := map[Direction]bool{}
	for _, d := range KnightDirections {
		ar, af := abs(d.Rank), abs(d.File)
		if !(ar == 1 && af == 2 || ar == 2 && af == 1) {
			t.Errorf("bad knight direction %v", d)
		}
		seen[d] = true
	}
	for _, d := range KingDirections {
		if abs(d.Rank) > 1 || abs(d.File) > 1 || d == (Direction{}) {
			t.Errorf("bad king direction %v", d)
		}
		seen[d] = true
	}
	if len(seen) != 16 {
		t.Errorf("expected 16 distinct directions, got %d", len(seen))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
