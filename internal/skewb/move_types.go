package skewb

// Axis identifies the corner a move pivots around. Each of the four free
// corners of the puzzle carries one turning axis; NoAxis marks the
// identity move used as a search sentinel.
type Axis int

const (
	NoAxis Axis = iota
	Up          // axis through upper corner 6
	Down        // axis through lower corner 2
	Left        // axis through upper corner 5
	Right       // axis through the upper corner beside the anchor
)

func (a Axis) String() string {
	return []string{"I", "U", "D", "L", "R"}[a]
}

// Move represents a single elementary move: a 120-degree twist of one
// corner axis. The zero Move is the identity.
type Move struct {
	Axis      Axis
	Clockwise bool
}

// Identity reports whether the move is the identity sentinel.
func (m Move) Identity() bool {
	return m.Axis == NoAxis
}

// Inverse returns the move undoing m. The identity is its own inverse.
func (m Move) Inverse() Move {
	if m.Identity() {
		return m
	}
	return Move{Axis: m.Axis, Clockwise: !m.Clockwise}
}

// String returns the move in standard notation, with a prime suffix for
// counter-clockwise twists.
func (m Move) String() string {
	if m.Identity() {
		return "I"
	}
	if m.Clockwise {
		return m.Axis.String()
	}
	return m.Axis.String() + "'"
}

// Moves lists the eight elementary moves in expansion order.
var Moves = []Move{
	{Axis: Up, Clockwise: true},
	{Axis: Up, Clockwise: false},
	{Axis: Down, Clockwise: true},
	{Axis: Down, Clockwise: false},
	{Axis: Left, Clockwise: true},
	{Axis: Left, Clockwise: false},
	{Axis: Right, Clockwise: true},
	{Axis: Right, Clockwise: false},
}
