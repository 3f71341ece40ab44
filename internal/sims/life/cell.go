package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Weight is the cell's contribution to a neighbour count.
func (c Cell) Weight() int {
	if c == Alive {
		return 1
	}
	return 0
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

// nextState applies Conway's rule to a cell with n live neighbours.
func nextState(c Cell, n int) Cell {
	switch {
	case c == Alive && n < 2:
		return Dead
	case c == Alive && (n == 2 || n == 3):
		return Alive
	case c == Alive && n > 3:
		return Dead
	case c == Dead && n == 3:
		return Alive
	default:
		return c
	}
}
