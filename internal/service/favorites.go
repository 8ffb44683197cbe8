package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"comicvault/internal/domain"
	"comicvault/internal/metrics"
)

const (
	siteBaseURL = "https://comicvine.gamespot.com"
	// Timestamp layout the catalog uses for date_added and date_last_updated.
	sourceDateLayout = "2006-01-02 15:04:05"
)

// FavoritesService owns the favorite set. The store is the source of truth; an
// in-memory mirror of favorite ids serves synchronous reads.
type FavoritesService struct {
	characters CharacterStore
	txManager  TransactionManager
	notifier   Notifier
	validate   *validator.Validate
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time

	// writeMu keeps each store read or write paired with its mirror update.
	writeMu sync.Mutex

	mu     sync.RWMutex
	mirror map[int64]struct{}
}

func NewFavoritesService(
	characters CharacterStore,
	txManager TransactionManager,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *FavoritesService {
	return &FavoritesService{
		characters: characters,
		txManager:  txManager,
		notifier:   notifier,
		validate:   validator.New(),
		metrics:    m,
		logger:     logger.With("component", "favorites"),
		now:        time.Now,
		mirror:     make(map[int64]struct{}),
	}
}

// Load warms the in-memory mirror from the store.
func (s *FavoritesService) Load(ctx context.Context) error {
	if _, err := s.GetAllFavorites(ctx); err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	return nil
}

func (s *FavoritesService) IsFavorite(ctx context.Context, id int64) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	favorite, err := s.characters.IsFavorite(ctx, id)
	if err != nil {
		return false, err
	}
	s.setMirrored(id, favorite)
	return favorite, nil
}

// IsFavoriteCached answers from the mirror without touching the store.
func (s *FavoritesService) IsFavoriteCached(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.mirror[id]
	return ok
}

// AddFavorite marks the character as favorite. When the character was never stored, a
// minimal record is built from input and saved in the same transaction. Favoriting an
// existing favorite is a no-op and sends no notification.
func (s *FavoritesService) AddFavorite(ctx context.Context, input domain.FavoriteInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("favorite input: %w: %w", domain.ErrInvalidRequest, err)
	}
	ctx = context.WithoutCancel(ctx)

	s.writeMu.Lock()
	var changed bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		_, err := s.characters.Load(txCtx, input.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.logger.Info("synthesizing character for favorite", "character_id", input.ID)
			if err := s.characters.Save(txCtx, s.minimalCharacter(input)); err != nil {
				return fmt.Errorf("save minimal character: %w", err)
			}
		case err != nil:
			return fmt.Errorf("load character: %w", err)
		}

		changed, err = s.characters.SetFavorite(txCtx, input.ID, true)
		if err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("add favorite %d: %w", input.ID, err)
	}
	s.setMirrored(input.ID, true)
	s.writeMu.Unlock()

	if changed {
		s.changed(ctx, "add", input.ID, true)
	}
	return nil
}

// RemoveFavorite clears the favorite flag. Removing a non-favorite succeeds without
// notifying.
func (s *FavoritesService) RemoveFavorite(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("character id %d: %w", id, domain.ErrInvalidRequest)
	}
	ctx = context.WithoutCancel(ctx)

	s.writeMu.Lock()
	changed, err := s.characters.SetFavorite(ctx, id, false)
	if err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("remove favorite %d: %w", id, err)
	}
	s.setMirrored(id, false)
	s.writeMu.Unlock()

	if changed {
		s.changed(ctx, "remove", id, false)
	}
	return nil
}

// GetAllFavorites returns the stored favorites and resets the mirror to match.
func (s *FavoritesService) GetAllFavorites(ctx context.Context) ([]domain.Character, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	favorites, err := s.characters.LoadFavorites(ctx)
	if err != nil {
		return nil, err
	}

	mirror := make(map[int64]struct{}, len(favorites))
	for _, c := range favorites {
		mirror[c.ID] = struct{}{}
	}

	s.mu.Lock()
	s.mirror = mirror
	s.mu.Unlock()

	return favorites, nil
}

// Toggle applies an optimistic flip. set is called with the new state before the store
// is touched and called again with current if the change fails.
func (s *FavoritesService) Toggle(ctx context.Context, input domain.FavoriteInput, current bool, set func(bool)) error {
	set(!current)

	var err error
	if current {
		err = s.RemoveFavorite(ctx, input.ID)
	} else {
		err = s.AddFavorite(ctx, input)
	}
	if err != nil {
		set(current)
		return err
	}
	return nil
}

func (s *FavoritesService) setMirrored(id int64, favorite bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if favorite {
		s.mirror[id] = struct{}{}
	} else {
		delete(s.mirror, id)
	}
}

func (s *FavoritesService) changed(ctx context.Context, action string, id int64, favorite bool) {
	s.metrics.FavoriteChanged(action)
	s.logger.Info("favorite changed", "character_id", id, "is_favorite", favorite)

	if s.notifier == nil {
		return
	}
	now := s.now().UTC()
	events := []domain.FavoriteEvent{
		{Type: domain.EventFavoritesChanged, OccurredAt: now},
		{Type: domain.EventFavoriteStatusChanged, CharacterID: id, IsFavorite: favorite, OccurredAt: now},
	}
	for _, event := range events {
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.Warn("notify favorite change", "event", event.Type, "character_id", id, "error", err)
		}
	}
}

func (s *FavoritesService) minimalCharacter(input domain.FavoriteInput) domain.Character {
	stamp := s.now().UTC().Format(sourceDateLayout)
	slug := strings.ReplaceAll(strings.ToLower(input.Name), " ", "-")

	return domain.Character{
		ID:              input.ID,
		Name:            input.Name,
		Image:           domain.UniformImage(input.ImageURL),
		IssueCount:      input.IssueCount,
		APIDetailURL:    fmt.Sprintf("%s/api/character/4005-%d/", siteBaseURL, input.ID),
		SiteDetailURL:   fmt.Sprintf("%s/%s/4005-%d/", siteBaseURL, slug, input.ID),
		DateAdded:       stamp,
		DateLastUpdated: stamp,
	}
}
