package domain

import (
	"fmt"
	"sort"
	"time"
)

type Issue struct {
	ID              int64
	Name            *string
	IssueNumber     *string
	Description     *string
	Deck            *string
	Image           Image
	CoverDate       *string // YYYY-MM-DD, compared as an opaque string
	StoreDate       *string
	Volume          *Reference
	APIDetailURL    string
	SiteDetailURL   string
	DateAdded       string
	DateLastUpdated string
	CharacterID     *int64
	CachedAt        time.Time
}

// Title renders the display title: "Volume #N", then name, then volume name.
func (i Issue) Title() string {
	switch {
	case i.Volume != nil && i.IssueNumber != nil:
		return fmt.Sprintf("%s #%s", i.Volume.Name, *i.IssueNumber)
	case i.Name != nil:
		return *i.Name
	case i.Volume != nil:
		return i.Volume.Name
	}
	return "Unknown Comic"
}

// SortIssuesByRecency orders issues most recent first. Issues with a cover date come
// first, newest date first and higher id first on equal dates. Issues without a cover
// date follow, higher id first.
func SortIssuesByRecency(issues []Issue) {
	sort.SliceStable(issues, func(a, b int) bool {
		x, y := issues[a], issues[b]
		switch {
		case x.CoverDate != nil && y.CoverDate != nil:
			if *x.CoverDate != *y.CoverDate {
				return *x.CoverDate > *y.CoverDate
			}
			return x.ID > y.ID
		case x.CoverDate != nil:
			return true
		case y.CoverDate != nil:
			return false
		}
		return x.ID > y.ID
	})
}
