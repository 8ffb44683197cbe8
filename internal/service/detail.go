package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"comicvault/internal/domain"
)

const DefaultDetailMirrorSize = 256

// CharacterDetail resolves full character records. Records fetched from the remote
// API are persisted so favorites can always be resolved later, and mirrored in
// memory for repeated lookups until ttl passes.
type CharacterDetail struct {
	remote     RemoteClient
	characters CharacterStore
	mirror     *expirable.LRU[int64, domain.Character]
	logger     *slog.Logger
}

func NewCharacterDetail(remote RemoteClient, characters CharacterStore, mirrorSize int, ttl time.Duration, logger *slog.Logger) *CharacterDetail {
	if mirrorSize <= 0 {
		mirrorSize = DefaultDetailMirrorSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CharacterDetail{
		remote:     remote,
		characters: characters,
		mirror:     expirable.NewLRU[int64, domain.Character](mirrorSize, nil, ttl),
		logger:     logger.With("component", "character_detail"),
	}
}

func (d *CharacterDetail) Execute(ctx context.Context, id int64) (domain.Character, error) {
	if id <= 0 {
		return domain.Character{}, fmt.Errorf("character id %d: %w", id, domain.ErrInvalidRequest)
	}
	if c, ok := d.mirror.Get(id); ok {
		return c, nil
	}
	return d.Refresh(ctx, id)
}

// Refresh fetches the character from the remote API regardless of the mirror, saves
// it and replaces the mirrored copy.
func (d *CharacterDetail) Refresh(ctx context.Context, id int64) (domain.Character, error) {
	c, err := d.remote.FetchCharacter(ctx, id)
	if err != nil {
		return domain.Character{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}

	if err := d.characters.Save(ctx, c); err != nil {
		return domain.Character{}, fmt.Errorf("save character %d: %w", id, err)
	}

	stored, err := d.characters.Load(ctx, id)
	if err != nil {
		return domain.Character{}, fmt.Errorf("reload character %d: %w", id, err)
	}

	d.mirror.Add(id, stored)
	d.logger.Debug("character refreshed", "character_id", id, "is_favorite", stored.IsFavorite)
	return stored, nil
}
