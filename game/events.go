package game

import "fmt"

// EventKind classifies lifecycle events.
type EventKind int

const (
	// EventSpawned follows a spawn batch; Count is the batch size.
	EventSpawned EventKind = iota
	// EventDeletionArmed marks the start of a deletion episode.
	EventDeletionArmed
	// EventRemoved follows an aging pass that removed Count renderables.
	EventRemoved
	// EventEpisodeEnded marks the collection becoming empty during an
	// episode.
	EventEpisodeEnded
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventDeletionArmed:
		return "deletion-armed"
	case EventRemoved:
		return "removed"
	case EventEpisodeEnded:
		return "episode-ended"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event reports a change to the object collection.
type Event struct {
	Kind  EventKind
	Count int // items spawned or removed
	Len   int // collection size after the change
}

// Listener receives events synchronously from Update. Listeners must not
// call back into the Game.
type Listener func(Event)
