package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"comicvault/internal/domain"
	"comicvault/internal/metrics"
)

type CharacterSearcher interface {
	Execute(ctx context.Context, query string, offset, limit int) ([]domain.Character, error)
}

type ComicSearcher interface {
	Execute(ctx context.Context, query string, offset, limit int) ([]domain.Issue, error)
}

type CharacterLister interface {
	Execute(ctx context.Context, offset, limit int) ([]domain.Character, error)
}

type IssueLister interface {
	Execute(ctx context.Context, offset, limit int) ([]domain.Issue, error)
}

type CharacterResolver interface {
	Execute(ctx context.Context, id int64) (domain.Character, error)
}

type CharacterIssueLister interface {
	Execute(ctx context.Context, characterID int64, offset, limit int) ([]domain.Issue, error)
}

type IssueBatcher interface {
	FetchIssuesByIDs(ctx context.Context, ids []int64, batchSize int) ([]domain.Issue, error)
}

type Favorites interface {
	IsFavorite(ctx context.Context, id int64) (bool, error)
	IsFavoriteCached(id int64) bool
	AddFavorite(ctx context.Context, input domain.FavoriteInput) error
	RemoveFavorite(ctx context.Context, id int64) error
	GetAllFavorites(ctx context.Context) ([]domain.Character, error)
}

type EventSource interface {
	Subscribe(buffer int) (<-chan domain.FavoriteEvent, func())
}

// Services groups the use cases the HTTP surface exposes.
type Services struct {
	SearchCharacters CharacterSearcher
	SearchComics     ComicSearcher
	ListCharacters   CharacterLister
	ListIssues       IssueLister
	CharacterDetail  CharacterResolver
	CharacterIssues  CharacterIssueLister
	Issues           IssueBatcher
	Favorites        Favorites
	Events           EventSource
}

type Server struct {
	services Services
	metrics  *metrics.Metrics
	logger   *slog.Logger
	router   chi.Router
}

func NewServer(services Services, m *metrics.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		services: services,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/characters", s.handleListCharacters)
		r.Get("/characters/search", s.handleSearchCharacters)
		r.Get("/characters/{id}", s.handleGetCharacter)
		r.Get("/characters/{id}/issues", s.handleCharacterIssues)

		r.Get("/issues/search", s.handleSearchComics)
		r.Get("/issues", s.handleIssues)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.handleListFavorites)
			r.Get("/events", s.handleFavoriteEvents)
			r.Get("/{id}", s.handleGetFavorite)
			r.Put("/{id}", s.handleAddFavorite)
			r.Delete("/{id}", s.handleRemoveFavorite)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
