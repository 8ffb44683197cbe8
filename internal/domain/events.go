package domain

import "time"

type EventType string

const (
	EventFavoritesChanged      EventType = "favorites-changed"
	EventFavoriteStatusChanged EventType = "favorite-status-changed"
)

// FavoriteEvent is broadcast after the favorite set changed. CharacterID and IsFavorite
// are only meaningful for EventFavoriteStatusChanged.
type FavoriteEvent struct {
	Type        EventType `json:"type"`
	CharacterID int64     `json:"character_id,omitempty"`
	IsFavorite  bool      `json:"is_favorite"`
	OccurredAt  time.Time `json:"occurred_at"`
}
