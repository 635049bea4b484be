package movegen

import "fmt"

// PieceType is a colorless piece kind used to pick attack tables.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

var pieceTypeNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) < len(pieceTypeNames) {
		return pieceTypeNames[pt]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(pt))
}

// IsSlider reports whether attacks of pt are blocked by occupancy.
func (pt PieceType) IsSlider() bool {
	return pt == PieceTypeBishop || pt == PieceTypeRook || pt == PieceTypeQueen
}

// ParsePieceType is the inverse of String.
func ParsePieceType(s string) (PieceType, error) {
	for i, name := range pieceTypeNames {
		if name == s && i != 0 {
			return PieceType(i), nil
		}
	}
	return PieceTypeNone, fmt.Errorf("unknown piece type %q", s)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}
