package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"comicvault/internal/domain"
)

type IssueFetcher interface {
	FetchIssue(ctx context.Context, id int64) (domain.Issue, error)
}

type RemoteClient interface {
	ID() string
	FetchCharacter(ctx context.Context, id int64) (domain.Character, error)
	FetchCharacters(ctx context.Context, offset, limit int) ([]domain.Character, error)
	FetchIssue(ctx context.Context, id int64) (domain.Issue, error)
	FetchIssues(ctx context.Context, offset, limit int) ([]domain.Issue, error)
	SearchCharacters(ctx context.Context, query string, offset, limit int) ([]domain.Character, error)
	SearchComics(ctx context.Context, query string, offset, limit int) ([]domain.Issue, error)
}

type CharacterStore interface {
	Save(ctx context.Context, c domain.Character) error
	Load(ctx context.Context, id int64) (domain.Character, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) (bool, error)
	IsFavorite(ctx context.Context, id int64) (bool, error)
	LoadFavorites(ctx context.Context) ([]domain.Character, error)
}

type IssueStore interface {
	SaveForCharacter(ctx context.Context, characterID int64, issues []domain.Issue) error
}

type CacheStore interface {
	SaveEntry(ctx context.Context, key string, payload []byte, expiresAt time.Time) error
	LoadEntry(ctx context.Context, key string) (domain.CacheEntry, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	Notify(ctx context.Context, event domain.FavoriteEvent) error
}
