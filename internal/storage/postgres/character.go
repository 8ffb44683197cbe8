package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"comicvault/internal/domain"
)

type CharacterStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewCharacterStore(db *sqlx.DB) *CharacterStore {
	return &CharacterStore{db: db, now: time.Now}
}

type characterRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Description     *string        `db:"description"`
	Deck            *string        `db:"deck"`
	Aliases         *string        `db:"aliases"`
	RealName        *string        `db:"real_name"`
	IssueCount      int            `db:"issue_count"`
	FriendsCount    int            `db:"friends_count"`
	PowersCount     int            `db:"powers_count"`
	EnemiesCount    int            `db:"enemies_count"`
	APIDetailURL    string         `db:"api_detail_url"`
	SiteDetailURL   string         `db:"site_detail_url"`
	DateAdded       string         `db:"date_added"`
	DateLastUpdated string         `db:"date_last_updated"`
	Details         types.JSONText `db:"details"`
	IsFavorite      bool           `db:"is_favorite"`
	FavoritedAt     *time.Time     `db:"favorited_at"`
	LastUpdated     time.Time      `db:"last_updated"`
	CachedAt        time.Time      `db:"cached_at"`
	imageColumns
}

// characterDetails is the JSONB payload holding the related entity lists.
type characterDetails struct {
	Enemies       []domain.Reference `json:"enemies,omitempty"`
	Friends       []domain.Reference `json:"friends,omitempty"`
	Powers        []domain.Reference `json:"powers,omitempty"`
	Teams         []domain.Reference `json:"teams,omitempty"`
	IssueCredits  []domain.Reference `json:"issue_credits,omitempty"`
	VolumeCredits []domain.Reference `json:"volume_credits,omitempty"`
}

const characterColumns = `id, name, description, deck, aliases, real_name,
	image_original, image_super, image_screen_large, image_screen, image_medium,
	image_small, image_thumb, image_icon, image_tiny,
	issue_count, friends_count, powers_count, enemies_count,
	api_detail_url, site_detail_url, date_added, date_last_updated, details,
	is_favorite, favorited_at, last_updated, cached_at`

func newCharacterRow(c domain.Character, now time.Time) (characterRow, error) {
	details, err := json.Marshal(characterDetails{
		Enemies:       c.Enemies,
		Friends:       c.Friends,
		Powers:        c.Powers,
		Teams:         c.Teams,
		IssueCredits:  c.IssueCredits,
		VolumeCredits: c.VolumeCredits,
	})
	if err != nil {
		return characterRow{}, fmt.Errorf("marshal character details: %w", err)
	}
	return characterRow{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Deck:            c.Deck,
		Aliases:         c.Aliases,
		RealName:        c.RealName,
		IssueCount:      c.IssueCount,
		FriendsCount:    len(c.Friends),
		PowersCount:     len(c.Powers),
		EnemiesCount:    len(c.Enemies),
		APIDetailURL:    c.APIDetailURL,
		SiteDetailURL:   c.SiteDetailURL,
		DateAdded:       c.DateAdded,
		DateLastUpdated: c.DateLastUpdated,
		Details:         types.JSONText(details),
		IsFavorite:      c.IsFavorite,
		FavoritedAt:     c.FavoritedAt,
		LastUpdated:     now,
		CachedAt:        now,
		imageColumns:    imageColumnsFrom(c.Image),
	}, nil
}

func (r characterRow) toDomain() (domain.Character, error) {
	var details characterDetails
	if len(r.Details) > 0 {
		if err := r.Details.Unmarshal(&details); err != nil {
			return domain.Character{}, fmt.Errorf("unmarshal details of character %d: %w", r.ID, err)
		}
	}
	return domain.Character{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Deck:            r.Deck,
		Aliases:         r.Aliases,
		RealName:        r.RealName,
		Image:           r.imageColumns.toDomain(),
		IssueCount:      r.IssueCount,
		APIDetailURL:    r.APIDetailURL,
		SiteDetailURL:   r.SiteDetailURL,
		DateAdded:       r.DateAdded,
		DateLastUpdated: r.DateLastUpdated,
		Enemies:         details.Enemies,
		Friends:         details.Friends,
		Powers:          details.Powers,
		Teams:           details.Teams,
		IssueCredits:    details.IssueCredits,
		VolumeCredits:   details.VolumeCredits,
		IsFavorite:      r.IsFavorite,
		FavoritedAt:     r.FavoritedAt,
		CachedAt:        r.CachedAt,
		LastUpdated:     r.LastUpdated,
	}, nil
}

// Save upserts the character. An existing row keeps its favorite state and its
// cached_at timestamp; every other column is replaced.
func (s *CharacterStore) Save(ctx context.Context, c domain.Character) error {
	row, err := newCharacterRow(c, s.now())
	if err != nil {
		return storageErr("save character", err)
	}

	query := `
		INSERT INTO characters (` + characterColumns + `) VALUES (
			:id, :name, :description, :deck, :aliases, :real_name,
			:image_original, :image_super, :image_screen_large, :image_screen, :image_medium,
			:image_small, :image_thumb, :image_icon, :image_tiny,
			:issue_count, :friends_count, :powers_count, :enemies_count,
			:api_detail_url, :site_detail_url, :date_added, :date_last_updated, :details,
			:is_favorite, :favorited_at, :last_updated, :cached_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			deck = EXCLUDED.deck,
			aliases = EXCLUDED.aliases,
			real_name = EXCLUDED.real_name,
			image_original = EXCLUDED.image_original,
			image_super = EXCLUDED.image_super,
			image_screen_large = EXCLUDED.image_screen_large,
			image_screen = EXCLUDED.image_screen,
			image_medium = EXCLUDED.image_medium,
			image_small = EXCLUDED.image_small,
			image_thumb = EXCLUDED.image_thumb,
			image_icon = EXCLUDED.image_icon,
			image_tiny = EXCLUDED.image_tiny,
			issue_count = EXCLUDED.issue_count,
			friends_count = EXCLUDED.friends_count,
			powers_count = EXCLUDED.powers_count,
			enemies_count = EXCLUDED.enemies_count,
			api_detail_url = EXCLUDED.api_detail_url,
			site_detail_url = EXCLUDED.site_detail_url,
			date_added = EXCLUDED.date_added,
			date_last_updated = EXCLUDED.date_last_updated,
			details = EXCLUDED.details,
			last_updated = EXCLUDED.last_updated`

	if _, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, row); err != nil {
		return storageErr(fmt.Sprintf("save character %d", c.ID), err)
	}
	return nil
}

func (s *CharacterStore) Load(ctx context.Context, id int64) (domain.Character, error) {
	var row characterRow
	query := `SELECT ` + characterColumns + ` FROM characters WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Character{}, fmt.Errorf("character %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Character{}, storageErr(fmt.Sprintf("load character %d", id), err)
	}

	c, err := row.toDomain()
	if err != nil {
		return domain.Character{}, storageErr("load character", err)
	}
	return c, nil
}

func (s *CharacterStore) LoadAll(ctx context.Context) ([]domain.Character, error) {
	return s.selectCharacters(ctx, "load characters",
		`SELECT `+characterColumns+` FROM characters ORDER BY id`)
}

// LoadFavorites returns favorite characters in the order they were favorited.
func (s *CharacterStore) LoadFavorites(ctx context.Context) ([]domain.Character, error) {
	return s.selectCharacters(ctx, "load favorites",
		`SELECT `+characterColumns+` FROM characters WHERE is_favorite ORDER BY favorited_at, id`)
}

func (s *CharacterStore) selectCharacters(ctx context.Context, op, query string, args ...any) ([]domain.Character, error) {
	var rows []characterRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, storageErr(op, err)
	}

	characters := make([]domain.Character, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, storageErr(op, err)
		}
		characters = append(characters, c)
	}
	return characters, nil
}

// Delete removes the character. Deleting an absent id is not an error.
func (s *CharacterStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM characters WHERE id = $1", id)
	if err != nil {
		return storageErr(fmt.Sprintf("delete character %d", id), err)
	}
	return nil
}

// SetFavorite flips the favorite flag and reports whether the stored value changed.
// Marking an absent character as favorite fails with ErrNotFound; unmarking one is a
// no-op.
func (s *CharacterStore) SetFavorite(ctx context.Context, id int64, favorite bool) (bool, error) {
	exec := GetExecutor(ctx, s.db)
	now := s.now()

	var favoritedAt *time.Time
	if favorite {
		favoritedAt = &now
	}

	res, err := exec.ExecContext(ctx, `
		UPDATE characters
		SET is_favorite = $2, favorited_at = $3, last_updated = $4
		WHERE id = $1 AND is_favorite <> $2`,
		id, favorite, favoritedAt, now,
	)
	if err != nil {
		return false, storageErr(fmt.Sprintf("set favorite %d", id), err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageErr(fmt.Sprintf("set favorite %d", id), err)
	}
	if affected > 0 {
		return true, nil
	}

	if favorite {
		var exists bool
		if err := sqlx.GetContext(ctx, exec, &exists,
			"SELECT EXISTS (SELECT 1 FROM characters WHERE id = $1)", id); err != nil {
			return false, storageErr(fmt.Sprintf("set favorite %d", id), err)
		}
		if !exists {
			return false, fmt.Errorf("character %d: %w", id, domain.ErrNotFound)
		}
	}
	return false, nil
}

// IsFavorite reports the stored favorite flag. Unknown characters are not favorites.
func (s *CharacterStore) IsFavorite(ctx context.Context, id int64) (bool, error) {
	var favorite bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &favorite,
		"SELECT is_favorite FROM characters WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(fmt.Sprintf("check favorite %d", id), err)
	}
	return favorite, nil
}
