package engine

// EventKind names something that happened during a frame.
type EventKind string

// Feedback events forwarded to the audio collaborator.
const (
	EventShoot         EventKind = "shoot"
	EventJump          EventKind = "jump"
	EventHit           EventKind = "hit"
	EventEnemyDeath    EventKind = "enemy_death"
	EventCollect       EventKind = "collect"
	EventCheckpoint    EventKind = "checkpoint"
	EventLevelComplete EventKind = "level_complete"
	EventPlateActivate EventKind = "plate_activate"
)

// Bookkeeping events the simulation also reports.
const (
	EventEnemyHit        EventKind = "enemy_hit"
	EventPlayerDied      EventKind = "player_died"
	EventRespawn         EventKind = "respawn"
	EventGameOver        EventKind = "game_over"
	EventGameWon         EventKind = "game_won"
	EventLevelStarted    EventKind = "level_started"
	EventProjectileSplat EventKind = "splat"
)

// Event is a single frame event. X and Y locate it in the world; Points is
// the score it awarded, if any.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Points int
	Detail string
}

// EventSink receives every event after the frame that produced it.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(e).
func (f EventSinkFunc) Emit(e Event) {
	f(e)
}

// Audible reports whether the event is part of the audio contract.
func (e Event) Audible() bool {
	switch e.Kind {
	case EventShoot, EventJump, EventHit, EventEnemyDeath, EventCollect,
		EventCheckpoint, EventLevelComplete, EventPlateActivate:
		return true
	}
	return false
}
