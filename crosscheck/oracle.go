// Package crosscheck compares the magic attack tables with independent
// move generators.
package crosscheck

import (
	"fmt"
	"strings"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"chess-attacks/bitboard"
	"chess-attacks/geometry"
	"chess-attacks/movegen"
)

// Oracle answers sliding attacks independently of the tables under test.
type Oracle interface {
	Name() string
	Rook(square int, occupancy uint64) uint64
	Bishop(square int, occupancy uint64) uint64
}

type dragontooth struct{}

// Dragontooth uses dragontoothmg's magic bitboards.
func Dragontooth() Oracle { return dragontooth{} }

func (dragontooth) Name() string { return "dragontooth" }

func (dragontooth) Rook(square int, occupancy uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(square), occupancy)
}

func (dragontooth) Bishop(square int, occupancy uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(square), occupancy)
}

type gooseOracle struct{}

// Goose uses GooseEngine's move generator, which indexes its slider tables
// with pext rather than magic multiplication.
func Goose() Oracle { return gooseOracle{} }

func (gooseOracle) Name() string { return "goose" }

func (gooseOracle) Rook(square int, occupancy uint64) uint64 {
	return goose.CalculateRookMoveBitboard(uint8(square), occupancy)
}

func (gooseOracle) Bishop(square int, occupancy uint64) uint64 {
	return goose.CalculateBishopMoveBitboard(uint8(square), occupancy)
}

type reference struct{}

// Reference walks rays square by square. It is slow but has no tables.
func Reference() Oracle { return reference{} }

func (reference) Name() string { return "reference" }

func (reference) Rook(square int, occupancy uint64) uint64 {
	return uint64(movegen.RayAttack(movegen.Directions(movegen.PieceTypeRook), geometry.MustFromIndex(square), bitboard.BitBoard(occupancy)))
}

func (reference) Bishop(square int, occupancy uint64) uint64 {
	return uint64(movegen.RayAttack(movegen.Directions(movegen.PieceTypeBishop), geometry.MustFromIndex(square), bitboard.BitBoard(occupancy)))
}

// OracleNames lists the names accepted by Oracles, "all" aside.
var OracleNames = []string{"dragontooth", "goose", "reference"}

// Oracles parses a comma-separated list of oracle names. "all" selects
// every oracle.
func Oracles(names string) ([]Oracle, error) {
	var out []Oracle
	for _, name := range strings.Split(names, ",") {
		switch strings.TrimSpace(name) {
		case "all":
			return []Oracle{Dragontooth(), Goose(), Reference()}, nil
		case "dragontooth":
			out = append(out, Dragontooth())
		case "goose":
			out = append(out, Goose())
		case "reference":
			out = append(out, Reference())
		default:
			return nil, fmt.Errorf("unknown oracle %q (want one of %s or all)", name, strings.Join(OracleNames, ", "))
		}
	}
	return out, nil
}
