package life

// CellState is what a renderer should show for a cell.
type CellState uint8

const (
	// Dead is an empty cell.
	Dead CellState = iota
	// Alive is a live cell.
	Alive
	// Reviving previews a dead cell the open stroke will bring to life.
	Reviving
	// Dying previews a live cell the open stroke will kill.
	Dying
)

// Alive reports the committed state behind the displayed one.
func (s CellState) Alive() bool { return s == Alive || s == Dying }

func (s CellState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Reviving:
		return "reviving"
	case Dying:
		return "dying"
	default:
		return "dead"
	}
}

func stateOf(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// CellFunc receives per-cell render events.
type CellFunc func(i, j int, state CellState)

type listeners struct {
	cell  []CellFunc
	reset []func()
}

func (l *listeners) emitCell(i, j int, state CellState) {
	for _, fn := range l.cell {
		fn(i, j, state)
	}
}

func (l *listeners) emitReset() {
	for _, fn := range l.reset {
		fn()
	}
}
