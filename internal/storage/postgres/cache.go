package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"comicvault/internal/domain"
)

// CacheStore keeps serialized query results keyed by a deterministic cache key.
// Expired rows are never purged; readers treat them as absent.
type CacheStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewCacheStore(db *sqlx.DB) *CacheStore {
	return &CacheStore{db: db, now: time.Now}
}

func (s *CacheStore) SaveEntry(ctx context.Context, key string, payload []byte, expiresAt time.Time) error {
	query := `
		INSERT INTO cache_entries (key, payload, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			expires_at = EXCLUDED.expires_at`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, key, payload, expiresAt); err != nil {
		return storageErr(fmt.Sprintf("save cache entry %q", key), err)
	}
	return nil
}

// LoadEntry returns the entry regardless of its expiry.
func (s *CacheStore) LoadEntry(ctx context.Context, key string) (domain.CacheEntry, error) {
	var entry domain.CacheEntry
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry,
		"SELECT key, payload, expires_at FROM cache_entries WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheEntry{}, fmt.Errorf("cache entry %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CacheEntry{}, storageErr(fmt.Sprintf("load cache entry %q", key), err)
	}
	return entry, nil
}

// IsExpired reports whether the entry is unusable. Absent entries count as expired.
func (s *CacheStore) IsExpired(ctx context.Context, key string) (bool, error) {
	var expiresAt time.Time
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &expiresAt,
		"SELECT expires_at FROM cache_entries WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, storageErr(fmt.Sprintf("check cache entry %q", key), err)
	}
	return domain.CacheEntry{ExpiresAt: expiresAt}.Expired(s.now()), nil
}

func (s *CacheStore) DeleteEntry(ctx context.Context, key string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM cache_entries WHERE key = $1", key)
	if err != nil {
		return storageErr(fmt.Sprintf("delete cache entry %q", key), err)
	}
	return nil
}
