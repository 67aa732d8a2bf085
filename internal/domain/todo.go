package domain

import "time"

// Todo is the domain entity for a task record. OwnerID is 0 when the record
// is not associated with a user (in-memory and single-user variants).
type Todo struct {
	ID      int64
	OwnerID int64
	Task    string
	Done    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
