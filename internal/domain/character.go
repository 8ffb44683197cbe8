package domain

import "time"

type Character struct {
	ID              int64
	Name            string
	Description     *string // may contain HTML markup
	Deck            *string
	Aliases         *string
	RealName        *string
	Image           Image
	IssueCount      int
	APIDetailURL    string
	SiteDetailURL   string
	DateAdded       string
	DateLastUpdated string
	Enemies         []Reference
	Friends         []Reference
	Powers          []Reference
	Teams           []Reference
	IssueCredits    []Reference
	VolumeCredits   []Reference
	IsFavorite      bool
	FavoritedAt     *time.Time
	CachedAt        time.Time
	LastUpdated     time.Time
}

// Reference points at a related entity of the remote catalog.
type Reference struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	APIDetailURL  *string `json:"api_detail_url,omitempty"`
	SiteDetailURL *string `json:"site_detail_url,omitempty"`
}

// Equal reports whether both records describe the same character. Only the ID counts.
func (c Character) Equal(other Character) bool {
	return c.ID == other.ID
}

// IssueCreditIDs returns the ids of every issue the character is credited in.
func (c Character) IssueCreditIDs() []int64 {
	ids := make([]int64, 0, len(c.IssueCredits))
	for _, ref := range c.IssueCredits {
		ids = append(ids, ref.ID)
	}
	return ids
}

// DedupeCharacters merges result pages, keeping the first record seen for each ID.
func DedupeCharacters(pages ...[]Character) []Character {
	seen := make(map[int64]struct{})
	var merged []Character
	for _, page := range pages {
		for _, c := range page {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			merged = append(merged, c)
		}
	}
	return merged
}

// FavoriteInput carries the summary fields available when a character is favorited
// from a list card, before its detail was ever loaded.
type FavoriteInput struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	IssueCount int    `json:"issue_count" validate:"min=0"`
}
