package movegen

import (
	"fmt"

	"chess-attacks/bitboard"
	"chess-attacks/geometry"
)

// AttackGenerator answers "which squares does this piece attack from square
// given occupancy". Implementations are immutable once built and safe for
// concurrent use.
type AttackGenerator interface {
	Attacks(square int, occupancy bitboard.BitBoard) bitboard.BitBoard
}

// StepAttackBoard is a 64-entry lookup for pieces that jump (king, knight).
// Occupancy is ignored.
type StepAttackBoard struct {
	pieceType PieceType
	attacks   [64]bitboard.BitBoard
}

// NewStepAttackBoard builds the table for a king or a knight. Any other
// piece type is a programming error and panics.
func NewStepAttackBoard(pt PieceType) *StepAttackBoard {
	if pt != PieceTypeKing && pt != PieceTypeKnight {
		panic(fmt.Sprintf("NewStepAttackBoard: illegal piece type argument %v", pt))
	}
	b := &StepAttackBoard{pieceType: pt}
	fillStepAttacks(&b.attacks, Directions(pt))
	return b
}

func fillStepAttacks(attacks *[64]bitboard.BitBoard, directions []geometry.Direction) {
	for sq, p := range geometry.Squares() {
		for _, d := range directions {
			if to, ok := geometry.Step(p, d); ok {
				attacks[sq] |= to.BitBoard()
			}
		}
	}
}

func (b *StepAttackBoard) PieceType() PieceType { return b.pieceType }

func (b *StepAttackBoard) Attacks(square int, _ bitboard.BitBoard) bitboard.BitBoard {
	return b.attacks[square]
}

func (b *StepAttackBoard) AttacksFrom(p geometry.SquarePosition, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return b.Attacks(p.Index(), occupancy)
}

// PawnAttackBoard holds the capture targets of a pawn of one color.
type PawnAttackBoard struct {
	color   Color
	attacks [64]bitboard.BitBoard
}

func NewPawnAttackBoard(c Color) *PawnAttackBoard {
	forward := geometry.North
	if c == Black {
		forward = geometry.South
	}
	b := &PawnAttackBoard{color: c}
	fillStepAttacks(&b.attacks, []geometry.Direction{
		forward.Add(geometry.East),
		forward.Add(geometry.West),
	})
	return b
}

func (b *PawnAttackBoard) Color() Color { return b.color }

func (b *PawnAttackBoard) Attacks(square int, _ bitboard.BitBoard) bitboard.BitBoard {
	return b.attacks[square]
}

func (b *PawnAttackBoard) AttacksFrom(p geometry.SquarePosition, occupancy bitboard.BitBoard) bitboard.BitBoard {
	return b.Attacks(p.Index(), occupancy)
}
