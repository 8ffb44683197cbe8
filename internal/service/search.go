package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"comicvault/internal/domain"
	"comicvault/internal/metrics"
)

const DefaultCacheTTL = time.Hour

const (
	opSearchCharacters = "search_characters"
	opSearchComics     = "search_comics"
	opCharacterIssues  = "character_issues"
	opListCharacters   = "characters"
	opListIssues       = "issues"
)

func cacheKey(operation, subject string, offset, limit int) string {
	return fmt.Sprintf("%s_%s_%d_%d", operation, subject, offset, limit)
}

func pageKey(operation string, offset, limit int) string {
	return fmt.Sprintf("%s_%d_%d", operation, offset, limit)
}

// cacheAside serves query results from the cache store while they are fresh and
// falls back to exactly one remote call otherwise.
type cacheAside[T any] struct {
	operation string
	cache     CacheStore
	ttl       time.Duration
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func newCacheAside[T any](operation string, cache CacheStore, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *cacheAside[T] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cacheAside[T]{
		operation: operation,
		cache:     cache,
		ttl:       ttl,
		now:       time.Now,
		metrics:   m,
		logger:    logger.With("operation", operation),
	}
}

func (c *cacheAside[T]) get(ctx context.Context, key string, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	if cached, ok := c.lookup(ctx, key); ok {
		c.metrics.CacheHit(c.operation)
		return cached, nil
	}
	c.metrics.CacheMiss(c.operation)

	fresh, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		fresh = []T{}
	}

	// A superseded request must not write back.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.store(ctx, key, fresh)
	return fresh, nil
}

func (c *cacheAside[T]) lookup(ctx context.Context, key string) ([]T, bool) {
	entry, err := c.cache.LoadEntry(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.logger.Warn("cache read failed, treating as miss", "key", key, "error", err)
		}
		return nil, false
	}
	if entry.Expired(c.now()) {
		return nil, false
	}

	var cached []T
	if err := json.Unmarshal(entry.Payload, &cached); err != nil {
		c.logger.Warn("cache entry unreadable, treating as miss", "key", key, "error", err)
		return nil, false
	}
	if cached == nil {
		cached = []T{}
	}
	return cached, true
}

func (c *cacheAside[T]) store(ctx context.Context, key string, records []T) {
	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.Error("encode cache entry", "key", key, "error", err)
		return
	}
	if err := c.cache.SaveEntry(ctx, key, payload, c.now().Add(c.ttl)); err != nil {
		c.logger.Error("cache write failed", "key", key, "error", err)
	}
}

type SearchCharacters struct {
	remote RemoteClient
	cache  *cacheAside[domain.Character]
}

func NewSearchCharacters(remote RemoteClient, cache CacheStore, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *SearchCharacters {
	return &SearchCharacters{
		remote: remote,
		cache:  newCacheAside[domain.Character](opSearchCharacters, cache, ttl, m, logger),
	}
}

// Execute returns one page of characters matching query. A blank query yields an
// empty page without touching the cache or the remote API.
func (s *SearchCharacters) Execute(ctx context.Context, query string, offset, limit int) ([]domain.Character, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Character{}, nil
	}
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	key := cacheKey(opSearchCharacters, query, offset, limit)
	return s.cache.get(ctx, key, func(ctx context.Context) ([]domain.Character, error) {
		characters, err := s.remote.SearchCharacters(ctx, query, offset, limit)
		if err != nil {
			return nil, err
		}
		return domain.DedupeCharacters(characters), nil
	})
}

type SearchComics struct {
	remote RemoteClient
	cache  *cacheAside[domain.Issue]
}

func NewSearchComics(remote RemoteClient, cache CacheStore, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *SearchComics {
	return &SearchComics{
		remote: remote,
		cache:  newCacheAside[domain.Issue](opSearchComics, cache, ttl, m, logger),
	}
}

func (s *SearchComics) Execute(ctx context.Context, query string, offset, limit int) ([]domain.Issue, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Issue{}, nil
	}
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	key := cacheKey(opSearchComics, query, offset, limit)
	return s.cache.get(ctx, key, func(ctx context.Context) ([]domain.Issue, error) {
		return s.remote.SearchComics(ctx, query, offset, limit)
	})
}

// CharacterIssues lists the issues a character is credited in, one page of issue
// credits at a time.
type CharacterIssues struct {
	detail    *CharacterDetail
	batch     *BatchFetcher
	issues    IssueStore
	batchSize int
	cache     *cacheAside[domain.Issue]
	logger    *slog.Logger
}

func NewCharacterIssues(
	detail *CharacterDetail,
	batch *BatchFetcher,
	issues IssueStore,
	cache CacheStore,
	ttl time.Duration,
	batchSize int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CharacterIssues {
	return &CharacterIssues{
		detail:    detail,
		batch:     batch,
		issues:    issues,
		batchSize: batchSize,
		cache:     newCacheAside[domain.Issue](opCharacterIssues, cache, ttl, m, logger),
		logger:    logger.With("operation", opCharacterIssues),
	}
}

func (s *CharacterIssues) Execute(ctx context.Context, characterID int64, offset, limit int) ([]domain.Issue, error) {
	if characterID <= 0 {
		return nil, fmt.Errorf("character id %d: %w", characterID, domain.ErrInvalidRequest)
	}
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	key := cacheKey(opCharacterIssues, fmt.Sprint(characterID), offset, limit)
	return s.cache.get(ctx, key, func(ctx context.Context) ([]domain.Issue, error) {
		character, err := s.detail.Execute(ctx, characterID)
		if err != nil {
			return nil, fmt.Errorf("resolve character %d: %w", characterID, err)
		}

		ids := character.IssueCreditIDs()
		if offset >= len(ids) {
			return []domain.Issue{}, nil
		}
		ids = ids[offset:min(offset+limit, len(ids))]

		issues, err := s.batch.FetchIssuesByIDs(ctx, ids, s.batchSize)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.issues.SaveForCharacter(ctx, characterID, issues); err != nil {
			s.logger.Warn("store character issues", "character_id", characterID, "error", err)
		}
		return issues, nil
	})
}

// ListCharacters browses the catalog, most recently updated characters first.
type ListCharacters struct {
	remote RemoteClient
	cache  *cacheAside[domain.Character]
}

func NewListCharacters(remote RemoteClient, cache CacheStore, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *ListCharacters {
	return &ListCharacters{
		remote: remote,
		cache:  newCacheAside[domain.Character](opListCharacters, cache, ttl, m, logger),
	}
}

func (s *ListCharacters) Execute(ctx context.Context, offset, limit int) ([]domain.Character, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}
	return s.cache.get(ctx, pageKey(opListCharacters, offset, limit), func(ctx context.Context) ([]domain.Character, error) {
		characters, err := s.remote.FetchCharacters(ctx, offset, limit)
		if err != nil {
			return nil, err
		}
		return domain.DedupeCharacters(characters), nil
	})
}

// ListIssues browses the catalog, most recently updated issues first.
type ListIssues struct {
	remote RemoteClient
	cache  *cacheAside[domain.Issue]
}

func NewListIssues(remote RemoteClient, cache CacheStore, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *ListIssues {
	return &ListIssues{
		remote: remote,
		cache:  newCacheAside[domain.Issue](opListIssues, cache, ttl, m, logger),
	}
}

func (s *ListIssues) Execute(ctx context.Context, offset, limit int) ([]domain.Issue, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}
	return s.cache.get(ctx, pageKey(opListIssues, offset, limit), func(ctx context.Context) ([]domain.Issue, error) {
		return s.remote.FetchIssues(ctx, offset, limit)
	})
}

func validatePage(offset, limit int) error {
	if offset < 0 || limit <= 0 {
		return fmt.Errorf("offset %d limit %d: %w", offset, limit, domain.ErrInvalidRequest)
	}
	return nil
}
