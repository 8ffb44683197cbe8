package api

import (
	"time"

	"comicvault/internal/domain"
)

type imageResponse struct {
	Best      string `json:"best,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func toImageResponse(img domain.Image) imageResponse {
	return imageResponse{
		Best:      img.Best(),
		Medium:    img.Medium(),
		Thumbnail: img.Thumbnail(),
	}
}

type characterResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Description     *string            `json:"description,omitempty"`
	Deck            *string            `json:"deck,omitempty"`
	Aliases         *string            `json:"aliases,omitempty"`
	RealName        *string            `json:"real_name,omitempty"`
	Image           imageResponse      `json:"image"`
	IssueCount      int                `json:"issue_count"`
	APIDetailURL    string             `json:"api_detail_url"`
	SiteDetailURL   string             `json:"site_detail_url"`
	DateAdded       string             `json:"date_added"`
	DateLastUpdated string             `json:"date_last_updated"`
	Enemies         []domain.Reference `json:"enemies,omitempty"`
	Friends         []domain.Reference `json:"friends,omitempty"`
	Powers          []domain.Reference `json:"powers,omitempty"`
	Teams           []domain.Reference `json:"teams,omitempty"`
	IssueCredits    []domain.Reference `json:"issue_credits,omitempty"`
	VolumeCredits   []domain.Reference `json:"volume_credits,omitempty"`
	IsFavorite      bool               `json:"is_favorite"`
	FavoritedAt     *time.Time         `json:"favorited_at,omitempty"`
}

func toCharacterResponse(c domain.Character, favorite bool) characterResponse {
	return characterResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Deck:            c.Deck,
		Aliases:         c.Aliases,
		RealName:        c.RealName,
		Image:           toImageResponse(c.Image),
		IssueCount:      c.IssueCount,
		APIDetailURL:    c.APIDetailURL,
		SiteDetailURL:   c.SiteDetailURL,
		DateAdded:       c.DateAdded,
		DateLastUpdated: c.DateLastUpdated,
		Enemies:         c.Enemies,
		Friends:         c.Friends,
		Powers:          c.Powers,
		Teams:           c.Teams,
		IssueCredits:    c.IssueCredits,
		VolumeCredits:   c.VolumeCredits,
		IsFavorite:      favorite,
		FavoritedAt:     c.FavoritedAt,
	}
}

type issueResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Name          *string           `json:"name,omitempty"`
	IssueNumber   *string           `json:"issue_number,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Deck          *string           `json:"deck,omitempty"`
	Image         imageResponse     `json:"image"`
	CoverDate     *string           `json:"cover_date,omitempty"`
	StoreDate     *string           `json:"store_date,omitempty"`
	Volume        *domain.Reference `json:"volume,omitempty"`
	APIDetailURL  string            `json:"api_detail_url"`
	SiteDetailURL string            `json:"site_detail_url"`
}

func toIssueResponses(issues []domain.Issue) []issueResponse {
	out := make([]issueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, issueResponse{
			ID:            i.ID,
			Title:         i.Title(),
			Name:          i.Name,
			IssueNumber:   i.IssueNumber,
			Description:   i.Description,
			Deck:          i.Deck,
			Image:         toImageResponse(i.Image),
			CoverDate:     i.CoverDate,
			StoreDate:     i.StoreDate,
			Volume:        i.Volume,
			APIDetailURL:  i.APIDetailURL,
			SiteDetailURL: i.SiteDetailURL,
		})
	}
	return out
}

type favoriteStatus struct {
	ID         int64 `json:"id"`
	IsFavorite bool  `json:"is_favorite"`
}

type favoriteRequest struct {
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	IssueCount int    `json:"issue_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}
