package game

type Phase int

const (
	// Idle is a fresh board waiting for its first reveal. Mines are not
	// placed until that reveal happens.
	Idle Phase = iota
	Running
	Won
	Lost
)

// AwaitingFirstReveal is the same state as Idle: a new game is always
// waiting on its first reveal.
const AwaitingFirstReveal = Idle

var phaseNames = map[Phase]string{
	Idle:    "idle",
	Running: "running",
	Won:     "won",
	Lost:    "lost",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return "unknown"
}

// IsOver reports whether the phase is terminal
func (phase Phase) IsOver() bool {
	return phase == Won || phase == Lost
}

// Face is the status icon a renderer shows above the board
type Face int

const (
	Smile Face = iota
	Surprised
	Dead
	Cool
)

// MineValue is the Tile value of a mined tile
const MineValue = -1

const (
	MinWidth  = 9
	MaxWidth  = 30
	MinHeight = 9
	MaxHeight = 24
	MinMines  = 1
)

// MaxMines is the largest mine count allowed on a width x height board.
// It always leaves at least one safe tile besides the first click.
func MaxMines(width, height int) int {
	return (width - 1) * (height - 1)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
