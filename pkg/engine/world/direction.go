package world

// Direction represents a cardinal move vector
type Direction int

// Direction constants, in the order searches expand them.
// Y grows downwards, so North is (0,-1).
const (
	West Direction = iota
	East
	North
	South
)

// AllDirections returns all valid directions for iteration.
// The order is fixed so that path searches break ties deterministically.
func AllDirections() []Direction {
	return []Direction{West, East, North, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= West && d <= South
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, -1
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}

// DirectionFromDelta maps a unit move vector back to its direction
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	for _, d := range AllDirections() {
		ddx, ddy := d.Delta()
		if ddx == dx && ddy == dy {
			return d, true
		}
	}
	return 0, false
}
