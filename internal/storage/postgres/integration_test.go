//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"comicvault/internal/domain"
	"comicvault/internal/testutil"
	"comicvault/migrations"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	applied, err := Migrate(s.ctx, s.db, migrations.FS)
	s.Require().NoError(err)
	s.Require().Len(applied, 3)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM issues")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM characters")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM cache_entries")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func spiderMan() domain.Character {
	return domain.Character{
		ID:            1443,
		Name:          "Spider-Man",
		Deck:          testutil.Ptr("Friendly neighborhood"),
		Image:         domain.Image{OriginalURL: testutil.Ptr("https://img/orig.jpg")},
		IssueCount:    12000,
		APIDetailURL:  "https://comicvine.gamespot.com/api/character/4005-1443/",
		SiteDetailURL: "https://comicvine.gamespot.com/spider-man/4005-1443/",
		DateAdded:     "2008-06-06 11:27:37",
		Powers:        []domain.Reference{{ID: 1, Name: "Wall-crawling"}},
		IssueCredits:  []domain.Reference{{ID: 10}, {ID: 11, Name: "Issue 11"}},
	}
}

func (s *PostgresIntegrationSuite) TestMigrate_IsIdempotent() {
	applied, err := Migrate(s.ctx, s.db, migrations.FS)
	s.NoError(err)
	s.Empty(applied)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_SaveAndLoad() {
	store := NewCharacterStore(s.db)

	s.Require().NoError(store.Save(s.ctx, spiderMan()))

	loaded, err := store.Load(s.ctx, 1443)
	s.Require().NoError(err)
	s.Equal("Spider-Man", loaded.Name)
	s.Equal("Friendly neighborhood", *loaded.Deck)
	s.Equal("https://img/orig.jpg", loaded.Image.Best())
	s.Equal([]int64{10, 11}, loaded.IssueCreditIDs())
	s.Len(loaded.Powers, 1)
	s.False(loaded.IsFavorite)
	s.False(loaded.CachedAt.IsZero())

	var powers int
	s.NoError(s.db.GetContext(s.ctx, &powers, "SELECT powers_count FROM characters WHERE id = $1", 1443))
	s.Equal(1, powers)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_LoadMissing() {
	store := NewCharacterStore(s.db)

	_, err := store.Load(s.ctx, 404)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_SavePreservesFavorite() {
	store := NewCharacterStore(s.db)
	s.Require().NoError(store.Save(s.ctx, spiderMan()))

	changed, err := store.SetFavorite(s.ctx, 1443, true)
	s.Require().NoError(err)
	s.True(changed)

	updated := spiderMan()
	updated.Name = "Peter Parker"
	s.Require().NoError(store.Save(s.ctx, updated))

	loaded, err := store.Load(s.ctx, 1443)
	s.Require().NoError(err)
	s.Equal("Peter Parker", loaded.Name)
	s.True(loaded.IsFavorite)
	s.NotNil(loaded.FavoritedAt)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_SetFavorite() {
	store := NewCharacterStore(s.db)
	s.Require().NoError(store.Save(s.ctx, spiderMan()))

	changed, err := store.SetFavorite(s.ctx, 1443, true)
	s.NoError(err)
	s.True(changed)

	changed, err = store.SetFavorite(s.ctx, 1443, true)
	s.NoError(err)
	s.False(changed)

	fav, err := store.IsFavorite(s.ctx, 1443)
	s.NoError(err)
	s.True(fav)

	changed, err = store.SetFavorite(s.ctx, 1443, false)
	s.NoError(err)
	s.True(changed)

	changed, err = store.SetFavorite(s.ctx, 1443, false)
	s.NoError(err)
	s.False(changed)

	fav, err = store.IsFavorite(s.ctx, 1443)
	s.NoError(err)
	s.False(fav)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_SetFavoriteUnknown() {
	store := NewCharacterStore(s.db)

	_, err := store.SetFavorite(s.ctx, 77, true)
	s.ErrorIs(err, domain.ErrNotFound)

	changed, err := store.SetFavorite(s.ctx, 77, false)
	s.NoError(err)
	s.False(changed)

	fav, err := store.IsFavorite(s.ctx, 77)
	s.NoError(err)
	s.False(fav)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_LoadFavoritesInOrder() {
	store := NewCharacterStore(s.db)
	for _, id := range []int64{3, 1, 2} {
		c := spiderMan()
		c.ID = id
		s.Require().NoError(store.Save(s.ctx, c))
	}

	base := time.Now()
	for i, id := range []int64{2, 3} {
		store.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		_, err := store.SetFavorite(s.ctx, id, true)
		s.Require().NoError(err)
	}

	favorites, err := store.LoadFavorites(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(favorites, 2)
	s.Equal(int64(2), favorites[0].ID)
	s.Equal(int64(3), favorites[1].ID)

	all, err := store.LoadAll(s.ctx)
	s.NoError(err)
	s.Len(all, 3)
}

func (s *PostgresIntegrationSuite) TestCharacterStore_Delete() {
	store := NewCharacterStore(s.db)
	s.Require().NoError(store.Save(s.ctx, spiderMan()))

	s.NoError(store.Delete(s.ctx, 1443))
	s.NoError(store.Delete(s.ctx, 1443))

	_, err := store.Load(s.ctx, 1443)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestIssueStore_SaveForCharacter() {
	characters := NewCharacterStore(s.db)
	issues := NewIssueStore(s.db)
	s.Require().NoError(characters.Save(s.ctx, spiderMan()))

	batch := []domain.Issue{
		{ID: 10, IssueNumber: testutil.Ptr("1"), CoverDate: testutil.Ptr("2024-01-01"),
			Volume: &domain.Reference{ID: 7, Name: "Venom"}},
		{ID: 11, Name: testutil.Ptr("Second"), CoverDate: testutil.Ptr("2024-03-01")},
		{ID: 12, Name: testutil.Ptr("Undated")},
	}
	s.Require().NoError(issues.SaveForCharacter(s.ctx, 1443, batch))

	loaded, err := issues.LoadByCharacter(s.ctx, 1443)
	s.Require().NoError(err)
	s.Require().Len(loaded, 3)
	s.Equal([]int64{11, 10, 12}, []int64{loaded[0].ID, loaded[1].ID, loaded[2].ID})
	s.Equal("Venom #1", loaded[1].Title())
	s.Equal(int64(1443), *loaded[0].CharacterID)
}

func (s *PostgresIntegrationSuite) TestIssueStore_SaveKeepsCharacterLink() {
	characters := NewCharacterStore(s.db)
	issues := NewIssueStore(s.db)
	s.Require().NoError(characters.Save(s.ctx, spiderMan()))
	s.Require().NoError(issues.SaveForCharacter(s.ctx, 1443, []domain.Issue{{ID: 10}}))

	s.Require().NoError(issues.Save(s.ctx, domain.Issue{ID: 10, Name: testutil.Ptr("Renamed")}))

	loaded, err := issues.Load(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal("Renamed", *loaded.Name)
	s.Require().NotNil(loaded.CharacterID)
	s.Equal(int64(1443), *loaded.CharacterID)
}

func (s *PostgresIntegrationSuite) TestIssueStore_LoadMissingAndDelete() {
	issues := NewIssueStore(s.db)

	_, err := issues.Load(s.ctx, 99)
	s.ErrorIs(err, domain.ErrNotFound)

	s.Require().NoError(issues.Save(s.ctx, domain.Issue{ID: 99}))
	all, err := issues.LoadAll(s.ctx)
	s.NoError(err)
	s.Len(all, 1)

	s.NoError(issues.Delete(s.ctx, 99))
	_, err = issues.Load(s.ctx, 99)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestCacheStore_Expiry() {
	store := NewCacheStore(s.db)
	now := time.Now().Truncate(time.Microsecond)
	store.now = func() time.Time { return now }

	expired, err := store.IsExpired(s.ctx, "search_characters_spider_0_20")
	s.NoError(err)
	s.True(expired)

	s.Require().NoError(store.SaveEntry(s.ctx, "search_characters_spider_0_20", []byte(`[1]`), now.Add(time.Hour)))

	expired, err = store.IsExpired(s.ctx, "search_characters_spider_0_20")
	s.NoError(err)
	s.False(expired)

	entry, err := store.LoadEntry(s.ctx, "search_characters_spider_0_20")
	s.Require().NoError(err)
	s.Equal([]byte(`[1]`), entry.Payload)

	store.now = func() time.Time { return now.Add(time.Hour) }
	expired, err = store.IsExpired(s.ctx, "search_characters_spider_0_20")
	s.NoError(err)
	s.True(expired)
}

func (s *PostgresIntegrationSuite) TestCacheStore_OverwriteAndDelete() {
	store := NewCacheStore(s.db)
	later := time.Now().Add(time.Hour)

	s.Require().NoError(store.SaveEntry(s.ctx, "k", []byte(`old`), later))
	s.Require().NoError(store.SaveEntry(s.ctx, "k", []byte(`new`), later))

	entry, err := store.LoadEntry(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte(`new`), entry.Payload)

	s.NoError(store.DeleteEntry(s.ctx, "k"))
	_, err = store.LoadEntry(s.ctx, "k")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	characters := NewCharacterStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := characters.Save(ctx, spiderMan()); err != nil {
			return err
		}
		_, err := characters.SetFavorite(ctx, 1443, true)
		return err
	})
	s.Require().NoError(err)

	fav, err := characters.IsFavorite(s.ctx, 1443)
	s.NoError(err)
	s.True(fav)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	characters := NewCharacterStore(s.db)
	boom := errors.New("boom")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := characters.Save(ctx, spiderMan()); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = characters.Load(s.ctx, 1443)
	s.ErrorIs(err, domain.ErrNotFound)
}
