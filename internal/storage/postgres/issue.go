package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"comicvault/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type IssueStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewIssueStore(db *sqlx.DB) *IssueStore {
	return &IssueStore{db: db, now: time.Now}
}

type issueRow struct {
	ID              int64     `db:"id"`
	Name            *string   `db:"name"`
	IssueNumber     *string   `db:"issue_number"`
	Description     *string   `db:"description"`
	Deck            *string   `db:"deck"`
	CoverDate       *string   `db:"cover_date"`
	StoreDate       *string   `db:"store_date"`
	VolumeID        *int64    `db:"volume_id"`
	VolumeName      *string   `db:"volume_name"`
	APIDetailURL    string    `db:"api_detail_url"`
	SiteDetailURL   string    `db:"site_detail_url"`
	DateAdded       string    `db:"date_added"`
	DateLastUpdated string    `db:"date_last_updated"`
	CharacterID     *int64    `db:"character_id"`
	CachedAt        time.Time `db:"cached_at"`
	imageColumns
}

var issueColumnNames = append([]string{
	"id", "name", "issue_number", "description", "deck", "cover_date", "store_date",
	"volume_id", "volume_name", "api_detail_url", "site_detail_url",
	"date_added", "date_last_updated", "character_id", "cached_at",
}, imageColumnNames...)

func (r issueRow) values() []any {
	return append([]any{
		r.ID, r.Name, r.IssueNumber, r.Description, r.Deck, r.CoverDate, r.StoreDate,
		r.VolumeID, r.VolumeName, r.APIDetailURL, r.SiteDetailURL,
		r.DateAdded, r.DateLastUpdated, r.CharacterID, r.CachedAt,
	}, r.imageColumns.values()...)
}

func newIssueRow(i domain.Issue, characterID *int64, now time.Time) issueRow {
	row := issueRow{
		ID:              i.ID,
		Name:            i.Name,
		IssueNumber:     i.IssueNumber,
		Description:     i.Description,
		Deck:            i.Deck,
		CoverDate:       i.CoverDate,
		StoreDate:       i.StoreDate,
		APIDetailURL:    i.APIDetailURL,
		SiteDetailURL:   i.SiteDetailURL,
		DateAdded:       i.DateAdded,
		DateLastUpdated: i.DateLastUpdated,
		CharacterID:     characterID,
		CachedAt:        now,
		imageColumns:    imageColumnsFrom(i.Image),
	}
	if row.CharacterID == nil {
		row.CharacterID = i.CharacterID
	}
	if i.Volume != nil {
		row.VolumeID = &i.Volume.ID
		row.VolumeName = &i.Volume.Name
	}
	return row
}

func (r issueRow) toDomain() domain.Issue {
	issue := domain.Issue{
		ID:              r.ID,
		Name:            r.Name,
		IssueNumber:     r.IssueNumber,
		Description:     r.Description,
		Deck:            r.Deck,
		Image:           r.imageColumns.toDomain(),
		CoverDate:       r.CoverDate,
		StoreDate:       r.StoreDate,
		APIDetailURL:    r.APIDetailURL,
		SiteDetailURL:   r.SiteDetailURL,
		DateAdded:       r.DateAdded,
		DateLastUpdated: r.DateLastUpdated,
		CharacterID:     r.CharacterID,
		CachedAt:        r.CachedAt,
	}
	if r.VolumeID != nil {
		issue.Volume = &domain.Reference{ID: *r.VolumeID}
		if r.VolumeName != nil {
			issue.Volume.Name = *r.VolumeName
		}
	}
	return issue
}

func (s *IssueStore) Save(ctx context.Context, issue domain.Issue) error {
	return s.upsert(ctx, nil, []domain.Issue{issue})
}

// SaveForCharacter upserts the issues in one statement and links them to the character.
func (s *IssueStore) SaveForCharacter(ctx context.Context, characterID int64, issues []domain.Issue) error {
	return s.upsert(ctx, &characterID, issues)
}

func (s *IssueStore) upsert(ctx context.Context, characterID *int64, issues []domain.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	now := s.now()
	builder := psql.Insert("issues").Columns(issueColumnNames...)
	for _, issue := range issues {
		builder = builder.Values(newIssueRow(issue, characterID, now).values()...)
	}
	builder = builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		issue_number = EXCLUDED.issue_number,
		description = EXCLUDED.description,
		deck = EXCLUDED.deck,
		cover_date = EXCLUDED.cover_date,
		store_date = EXCLUDED.store_date,
		volume_id = EXCLUDED.volume_id,
		volume_name = EXCLUDED.volume_name,
		api_detail_url = EXCLUDED.api_detail_url,
		site_detail_url = EXCLUDED.site_detail_url,
		date_added = EXCLUDED.date_added,
		date_last_updated = EXCLUDED.date_last_updated,
		character_id = COALESCE(EXCLUDED.character_id, issues.character_id),
		cached_at = EXCLUDED.cached_at,
		image_original = EXCLUDED.image_original,
		image_super = EXCLUDED.image_super,
		image_screen_large = EXCLUDED.image_screen_large,
		image_screen = EXCLUDED.image_screen,
		image_medium = EXCLUDED.image_medium,
		image_small = EXCLUDED.image_small,
		image_thumb = EXCLUDED.image_thumb,
		image_icon = EXCLUDED.image_icon,
		image_tiny = EXCLUDED.image_tiny`)

	query, args, err := builder.ToSql()
	if err != nil {
		return storageErr("build issue upsert", err)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return storageErr(fmt.Sprintf("save %d issues", len(issues)), err)
	}
	return nil
}

func (s *IssueStore) Load(ctx context.Context, id int64) (domain.Issue, error) {
	query, args, err := psql.Select(issueColumnNames...).From("issues").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Issue{}, storageErr("build issue query", err)
	}

	var row issueRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Issue{}, fmt.Errorf("issue %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Issue{}, storageErr(fmt.Sprintf("load issue %d", id), err)
	}
	return row.toDomain(), nil
}

// LoadAll returns every stored issue, most recent cover date first.
func (s *IssueStore) LoadAll(ctx context.Context) ([]domain.Issue, error) {
	return s.selectIssues(ctx, "load issues", psql.Select(issueColumnNames...).From("issues"))
}

func (s *IssueStore) LoadByCharacter(ctx context.Context, characterID int64) ([]domain.Issue, error) {
	return s.selectIssues(ctx, fmt.Sprintf("load issues of character %d", characterID),
		psql.Select(issueColumnNames...).From("issues").Where(sq.Eq{"character_id": characterID}))
}

func (s *IssueStore) selectIssues(ctx context.Context, op string, builder sq.SelectBuilder) ([]domain.Issue, error) {
	query, args, err := builder.OrderBy("cover_date DESC NULLS LAST", "id DESC").ToSql()
	if err != nil {
		return nil, storageErr(op, err)
	}

	var rows []issueRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, storageErr(op, err)
	}

	issues := make([]domain.Issue, 0, len(rows))
	for _, row := range rows {
		issues = append(issues, row.toDomain())
	}
	return issues, nil
}

func (s *IssueStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM issues WHERE id = $1", id)
	if err != nil {
		return storageErr(fmt.Sprintf("delete issue %d", id), err)
	}
	return nil
}
