package domain

import "time"

// Record is a single versioned inventory row. Version is the optimistic
// locking token: it starts at 0 and advances by exactly one on every
// committed write.
type Record struct {
	ID        string
	Quantity  int64
	Version   uint64 // optimistic locking
	CreatedAt time.Time
	UpdatedAt time.Time
}
