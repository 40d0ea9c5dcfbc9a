package game

// EventKind classifies something that happened during a tick
type EventKind int

const (
	EventFired EventKind = iota
	EventHit
	EventGoal
	EventStalemate
	EventGameOver
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventGoal:
		return "goal"
	case EventStalemate:
		return "stalemate"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by Match.Tick for presentation layers (sound, logs)
type Event struct {
	Kind EventKind

	// Side that fired, hit, scored or won
	Side SideID

	// Tick number the event happened on
	Tick uint64
}
