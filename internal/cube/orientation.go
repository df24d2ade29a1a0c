package cube

// Rotation is a quarter-turn count in the cyclic group of order 4. It describes
// how a face is drawn on the net relative to its canonical orientation.
type Rotation uint8

const (
	None             Rotation = 0
	Clockwise        Rotation = 1
	UpsideDown       Rotation = 2
	Counterclockwise Rotation = 3
)

// Rotations lists every rotation in quarter-turn order.
var Rotations = [4]Rotation{None, Clockwise, UpsideDown, Counterclockwise}

func (r Rotation) String() string {
	switch r {
	case None:
		return "none"
	case Clockwise:
		return "cw"
	case UpsideDown:
		return "180"
	case Counterclockwise:
		return "ccw"
	default:
		return "?"
	}
}

// Add composes two rotations.
func (r Rotation) Add(other Rotation) Rotation {
	return (r + other) % 4
}

// Neg returns the inverse rotation.
func (r Rotation) Neg() Rotation {
	switch r {
	case Clockwise:
		return Counterclockwise
	case Counterclockwise:
		return Clockwise
	default:
		return r % 4
	}
}

// Direction is a compass heading on the grid. North is towards row 0.
type Direction uint8

const (
	North Direction = 0
	East  Direction = 1
	South Direction = 2
	West  Direction = 3
)

// Directions lists the headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Rotate turns the heading by r.
func (d Direction) Rotate(r Rotation) Direction {
	return Direction((uint8(d) + uint8(r)) % 4)
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return d.Rotate(UpsideDown)
}

// Horizontal reports whether the heading runs along a row.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Delta returns the (row, col) offset of one step.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Ordinal returns the facing value used in the password:
// East=0, South=1, West=2, North=3.
func (d Direction) Ordinal() int {
	return int((d + 3) % 4)
}

// RotateLocal maps a cell of a size×size face to where it ends up when the
// face is turned by r about its centre.
//
// Coordinates are doubled and shifted so the centre sits at the origin, which
// keeps the half-integer centre of even-sized faces on integer values.
func RotateLocal(row, col int, r Rotation, size int) (int, int) {
	u, v := 2*row-(size-1), 2*col-(size-1)
	switch r % 4 {
	case Clockwise:
		u, v = v, -u
	case UpsideDown:
		u, v = -u, -v
	case Counterclockwise:
		u, v = -v, u
	}
	return (u + size - 1) / 2, (v + size - 1) / 2
}
