package delivery

import "time"

// StatusUpdate is one entry of the append-only status history.
type StatusUpdate struct {
	Status    Status
	Timestamp time.Time
	Notes     string
}

// Note is a free-text remark attached to the delivery.
type Note struct {
	Timestamp time.Time
	Text      string
}

// String renders the note as "[HH:MM:SS] text".
func (n Note) String() string {
	return "[" + n.Timestamp.Format(time.TimeOnly) + "] " + n.Text
}
