package domain

import "time"

// CacheEntry is a serialized query result kept until ExpiresAt.
type CacheEntry struct {
	Key       string    `db:"key"`
	Payload   []byte    `db:"payload"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Expired reports whether the entry can no longer be served at now.
func (e CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
