package domain

import "time"

// RefreshStats holds statistics about one favorites refresh run.
type RefreshStats struct {
	Favorites int
	Refreshed int
	Errors    int
	Duration  time.Duration
}
