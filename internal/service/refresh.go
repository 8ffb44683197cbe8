package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"comicvault/internal/domain"
)

// FavoritesRefresher re-fetches every favorite character so stored favorites track
// the remote catalog.
type FavoritesRefresher struct {
	favorites *FavoritesService
	detail    *CharacterDetail
	logger    *slog.Logger
}

func NewFavoritesRefresher(favorites *FavoritesService, detail *CharacterDetail, logger *slog.Logger) *FavoritesRefresher {
	return &FavoritesRefresher{
		favorites: favorites,
		detail:    detail,
		logger:    logger.With("component", "favorites_refresher"),
	}
}

func (r *FavoritesRefresher) Refresh(ctx context.Context) (*domain.RefreshStats, error) {
	started := time.Now()

	favorites, err := r.favorites.GetAllFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	stats := &domain.RefreshStats{Favorites: len(favorites)}
	for _, c := range favorites {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if _, err := r.detail.Refresh(ctx, c.ID); err != nil {
			stats.Errors++
			r.logger.Warn("refresh favorite failed", "character_id", c.ID, "error", err)
			continue
		}
		stats.Refreshed++
	}
	stats.Duration = time.Since(started)

	r.logger.Info("favorites refreshed",
		"favorites", stats.Favorites,
		"refreshed", stats.Refreshed,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}
