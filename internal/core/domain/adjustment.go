package domain

import "time"

// Adjustment is the audit entry for one committed quantity change. It is
// written after the store's compare-and-set has already won, so persisting
// it never participates in the commit itself.
type Adjustment struct {
	ID        string
	RecordID  string
	Delta     int64
	Quantity  int64 // quantity after the adjustment
	AppliedAt time.Time
}
