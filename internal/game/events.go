package game

// EventKind names a state transition of the engine.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventRowEvaluated EventKind = "row_evaluated"
	EventRowRejected  EventKind = "row_rejected"
	EventRoundWon     EventKind = "round_won"
	EventRoundLost    EventKind = "round_lost"
)

// Event describes one transition. Row and Word are set for row events;
// Variants only for EventRowEvaluated.
type Event struct {
	Kind     EventKind
	Round    int
	Row      int
	Word     string
	Variants [WordLength]Variant
}

// Listener observes engine transitions. OnEvent runs synchronously while the
// engine is locked.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
