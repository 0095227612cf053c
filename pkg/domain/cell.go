package domain

// CellState is the content of a single grid cell.
type CellState int

const (
	Empty CellState = iota
	Dirt
	Obstacle
	Cleaned
)

// String returns the lowercase name of the state.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Obstacle:
		return "obstacle"
	case Cleaned:
		return "cleaned"
	default:
		return "unknown"
	}
}

// Symbol returns the single character used to draw the state.
func (c CellState) Symbol() string {
	switch c {
	case Dirt:
		return "D"
	case Obstacle:
		return "#"
	case Cleaned:
		return "C"
	default:
		return "."
	}
}

// RobotSymbol marks the robot's cell. It overrides the cell state in display only.
const RobotSymbol = "R"
