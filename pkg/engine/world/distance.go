package world

// ChebyshevDistance returns the chessboard distance between two cells:
// max(|dx|, |dy|). Diagonal neighbours are at distance 1.
func ChebyshevDistance(a, b Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// ManhattanDistance returns |dx| + |dy|, the length of the shortest
// unobstructed 4-connected path between two cells
func ManhattanDistance(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
