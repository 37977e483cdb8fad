package paperchain

// EventKind tags the registry events consumed by external indexers.
type EventKind string

const (
	EventPaperRegistered  EventKind = "paper.registered"
	EventPaperUpdated     EventKind = "paper.updated"
	EventPaperDeactivated EventKind = "paper.deactivated"
)

// Event is a structured, append-only notification emitted after a mutating
// operation commits. ID is only set for registrations.
type Event struct {
	Kind EventKind `json:"kind"`
	Hash Hash      `json:"hash"`
	ID   uint64    `json:"id,omitempty"`
}

// EventSink receives registry events. Sinks are external indexer feeds: the
// registry never reads events back, and a sink error does not undo the
// transition that produced the event.
type EventSink interface {
	Emit(Event) error
}
