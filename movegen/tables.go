package movegen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"chess-attacks/bitboard"
)

// Tables is the complete set of attack tables an engine needs. Build it
// once at start-up and share it freely.
type Tables struct {
	King   *StepAttackBoard
	Knight *StepAttackBoard
	Pawn   [2]*PawnAttackBoard
	Rook   *MagicAttackBoard
	Bishop *MagicAttackBoard
}

// NewTables builds every table with the canonical magic search.
func NewTables() *Tables {
	t, err := BuildTables(context.Background(), DefaultConfig())
	if err != nil {
		panic(err)
	}
	return t
}

// BuildTables builds the step tables and searches rook and bishop magics
// concurrently. Each slider has its own generator, so running them side by
// side does not change the result.
func BuildTables(ctx context.Context, cfg Config) (*Tables, error) {
	t := newStepTables()
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		b, err := BuildMagicAttackBoard(ctx, PieceTypeRook, cfg)
		t.Rook = b
		return err
	})
	grp.Go(func() error {
		b, err := BuildMagicAttackBoard(ctx, PieceTypeBishop, cfg)
		t.Bishop = b
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTablesFromMagics rebuilds the tables from known magic numbers.
func NewTablesFromMagics(rook, bishop [64]bitboard.BitBoard) (*Tables, error) {
	t := newStepTables()
	var err error
	if t.Rook, err = NewMagicAttackBoardFromMagics(PieceTypeRook, rook); err != nil {
		return nil, err
	}
	if t.Bishop, err = NewMagicAttackBoardFromMagics(PieceTypeBishop, bishop); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTablesWith wraps already built sliding tables.
func NewTablesWith(rook, bishop *MagicAttackBoard) *Tables {
	if rook.PieceType() != PieceTypeRook || bishop.PieceType() != PieceTypeBishop {
		panic(fmt.Sprintf("NewTablesWith: got %v and %v tables", rook.PieceType(), bishop.PieceType()))
	}
	t := newStepTables()
	t.Rook, t.Bishop = rook, bishop
	return t
}

func newStepTables() *Tables {
	return &Tables{
		King:   NewStepAttackBoard(PieceTypeKing),
		Knight: NewStepAttackBoard(PieceTypeKnight),
		Pawn:   [2]*PawnAttackBoard{NewPawnAttackBoard(White), NewPawnAttackBoard(Black)},
	}
}

func (t *Tables) Queen(square int, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return t.Rook.Attacks(square, occupancy) | t.Bishop.Attacks(square, occupancy)
}

// Attacks dispatches on piece type. Pawns need a color; use
// t.Pawn[color] instead.
func (t *Tables) Attacks(pt PieceType, square int, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return t.Generator(pt).Attacks(square, occupancy)
}

// Generator returns the table for pt behind the common interface.
func (t *Tables) Generator(pt PieceType) AttackGenerator {
	switch pt {
	case PieceTypeKing:
		return t.King
	case PieceTypeKnight:
		return t.Knight
	case PieceTypeRook:
		return t.Rook
	case PieceTypeBishop:
		return t.Bishop
	case PieceTypeQueen:
		return queenGenerator{t}
	}
	panic(fmt.Sprintf("Tables.Generator: illegal piece type argument %v", pt))
}

type queenGenerator struct{ t *Tables }

func (q queenGenerator) Attacks(square int, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return q.t.Queen(square, occupancy)
}
