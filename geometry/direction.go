package geometry

// Direction is a signed (rank, file) step.
type Direction struct {
	Rank int
	File int
}

var (
	North = Direction{1, 0}
	South = Direction{-1, 0}
	East  = Direction{0, 1}
	West  = Direction{0, -1}

	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

// Cardinal and Intermediate are the rook and bishop ray directions.
var (
	Cardinal     = [4]Direction{North, South, East, West}
	Intermediate = [4]Direction{NorthEast, SouthEast, NorthWest, SouthWest}
)

var KingDirections = [8]Direction{
	North,
	North.Add(East),
	East,
	South.Add(East),
	South,
	South.Add(West),
	West,
	North.Add(West),
}

var KnightDirections = [8]Direction{
	North.Add(North).Add(East),
	North.Add(East).Add(East),
	South.Add(East).Add(East),
	South.Add(South).Add(East),
	South.Add(South).Add(West),
	South.Add(West).Add(West),
	North.Add(West).Add(West),
	North.Add(North).Add(West),
}

func (d Direction) Add(o Direction) Direction {
	return Direction{d.Rank + o.Rank, d.File + o.File}
}

func (d Direction) Scale(k int) Direction {
	return Direction{d.Rank * k, d.File * k}
}

// Mul multiplies component-wise.
func (d Direction) Mul(o Direction) Direction {
	return Direction{d.Rank * o.Rank, d.File * o.File}
}

// FromCardinal sums the given number of steps in each cardinal direction.
func FromCardinal(north, south, east, west int) Direction {
	return North.Scale(north).Add(South.Scale(south)).Add(East.Scale(east)).Add(West.Scale(west))
}

// Step moves p by d. ok is false when the result leaves the board in
// either axis; a step off one edge never aliases a square on the opposite
// edge.
//
// This is the 0x88 test with each coordinate kept in its own word: any
// value outside [0,7], negative ones included, has a bit above bit 2 set.
// Packing both into a single 0x88 byte would let steps longer than 7 carry
// from the file nibble into the rank nibble.
func Step(p SquarePosition, d Direction) (SquarePosition, bool) {
	rank, file := p.Rank+d.Rank, p.File+d.File
	if (rank|file)&^7 != 0 {
		return SquarePosition{}, false
	}
	return SquarePosition{Rank: rank, File: file}, true
}
