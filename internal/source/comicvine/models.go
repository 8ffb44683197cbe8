package comicvine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"comicvault/internal/domain"
)

// Response represents the ComicVine envelope shared by every endpoint.
type Response[T any] struct {
	Error                string     `json:"error"`
	StatusCode           int        `json:"status_code"`
	Limit                int        `json:"limit"`
	Offset               int        `json:"offset"`
	NumberOfPageResults  int        `json:"number_of_page_results"`
	NumberOfTotalResults int        `json:"number_of_total_results"`
	Results              Results[T] `json:"results"`
}

const statusOK = 1

// Success reports whether the envelope carries a successful payload.
func (r *Response[T]) Success() bool {
	return r.StatusCode == statusOK && r.Error == "OK"
}

// Results holds the "results" field, which list endpoints send as an array and detail
// endpoints send as a single object. Both shapes decode into a slice.
type Results[T any] []T

func (r *Results[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return resultsError(err)
		}
		*r = many
	case '{':
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return resultsError(err)
		}
		*r = Results[T]{one}
	default:
		return &domain.DecodeError{
			Path: "results",
			Err:  fmt.Errorf("expected array or object, got %q", trimmed[0]),
		}
	}
	return nil
}

// resultsError keeps the nested field path, which the outer decoder would otherwise
// replace with "results".
func resultsError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &domain.DecodeError{Path: "results." + typeErr.Field, Err: err}
	}
	return &domain.DecodeError{Path: "results", Err: err}
}

type Character struct {
	ID                      int64          `json:"id"`
	Name                    string         `json:"name"`
	Description             *string        `json:"description"`
	Deck                    *string        `json:"deck"`
	Aliases                 *string        `json:"aliases"`
	Image                   domain.Image   `json:"image"`
	APIDetailURL            string         `json:"api_detail_url"`
	SiteDetailURL           string         `json:"site_detail_url"`
	CountOfIssueAppearances int            `json:"count_of_issue_appearances"`
	RealName                *string        `json:"real_name"`
	DateAdded               string         `json:"date_added"`
	DateLastUpdated         string         `json:"date_last_updated"`
	CharacterEnemies        []APIReference `json:"character_enemies"`
	CharacterFriends        []APIReference `json:"character_friends"`
	Powers                  []APIReference `json:"powers"`
	Teams                   []APIReference `json:"teams"`
	IssueCredits            []APIReference `json:"issue_credits"`
	VolumeCredits           []APIReference `json:"volume_credits"`
	Publisher               *APIReference  `json:"publisher"`
	FirstAppearedInIssue    *APIReference  `json:"first_appeared_in_issue"`
}

type Issue struct {
	ID              int64         `json:"id"`
	Name            *string       `json:"name"`
	IssueNumber     *string       `json:"issue_number"`
	Description     *string       `json:"description"`
	Deck            *string       `json:"deck"`
	Image           domain.Image  `json:"image"`
	CoverDate       *string       `json:"cover_date"`
	StoreDate       *string       `json:"store_date"`
	APIDetailURL    string        `json:"api_detail_url"`
	SiteDetailURL   string        `json:"site_detail_url"`
	Volume          *APIReference `json:"volume"`
	DateAdded       string        `json:"date_added"`
	DateLastUpdated string        `json:"date_last_updated"`
}

// APIReference is the compact form ComicVine uses for related entities. Names are
// nullable on some resources (issue credits).
type APIReference struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name"`
	APIDetailURL  *string `json:"api_detail_url"`
	SiteDetailURL *string `json:"site_detail_url"`
}

const (
	characterFields = "id,name,description,deck,aliases,image,api_detail_url,site_detail_url," +
		"first_appeared_in_issue,count_of_issue_appearances,real_name,date_added,date_last_updated," +
		"publisher,character_enemies,character_friends,issue_credits,powers,teams,volume_credits"
	issueFields = "id,name,issue_number,description,deck,image,cover_date,store_date," +
		"api_detail_url,site_detail_url,volume,date_added,date_last_updated"
)
