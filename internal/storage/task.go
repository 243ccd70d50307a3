package storage

// Task ist die kanonische Repräsentation eines Tasks im lokalen Store.
// ID wird ausschließlich vom Store vergeben; ExternalID ist der
// Merge-Schlüssel und pro Quelle eindeutig.
type Task struct {
	ID         int64
	ExternalID string
	Content    string
	Due        *string // YYYY-MM-DD, nil = kein Fälligkeitsdatum
	Completed  bool
	Source     string
}
