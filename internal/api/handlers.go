package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"comicvault/internal/domain"
)

func (s *Server) handleSearchCharacters(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	characters, err := s.services.SearchCharacters.Execute(r.Context(), r.URL.Query().Get("query"), offset, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.characterResponses(characters))
}

func (s *Server) handleSearchComics(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	issues, err := s.services.SearchComics.Execute(r.Context(), r.URL.Query().Get("query"), offset, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toIssueResponses(issues))
}

func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	character, err := s.services.CharacterDetail.Execute(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCharacterResponse(character, s.services.Favorites.IsFavoriteCached(id)))
}

func (s *Server) handleCharacterIssues(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	offset, limit, err := pagination(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	issues, err := s.services.CharacterIssues.Execute(r.Context(), id, offset, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toIssueResponses(issues))
}

func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	characters, err := s.services.ListCharacters.Execute(r.Context(), offset, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.characterResponses(characters))
}

// handleIssues fetches the issues named by ids, or browses the latest issues when no
// ids are given.
func (s *Server) handleIssues(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("ids") {
		s.handleListIssues(w, r)
		return
	}
	s.handleIssuesByIDs(w, r)
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	issues, err := s.services.ListIssues.Execute(r.Context(), offset, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toIssueResponses(issues))
}

func (s *Server) handleIssuesByIDs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids, err := idList(q.Get("ids"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	batchSize, err := intParam(q.Get("batch_size"), 0)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if batchSize > maxBatchSize {
		s.respondError(w, r, fmt.Errorf("batch_size %d above %d: %w", batchSize, maxBatchSize, domain.ErrInvalidRequest))
		return
	}

	issues, err := s.services.Issues.FetchIssuesByIDs(r.Context(), ids, batchSize)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toIssueResponses(issues))
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.services.Favorites.GetAllFavorites(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	out := make([]characterResponse, 0, len(favorites))
	for _, c := range favorites {
		out = append(out, toCharacterResponse(c, true))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	favorite, err := s.services.Favorites.IsFavorite(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, favoriteStatus{ID: id, IsFavorite: favorite})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req favoriteRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, r, fmt.Errorf("decode favorite body: %w: %w", domain.ErrInvalidRequest, err))
		return
	}

	input := domain.FavoriteInput{
		ID:         id,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		IssueCount: req.IssueCount,
	}
	if err := s.services.Favorites.AddFavorite(r.Context(), input); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, favoriteStatus{ID: id, IsFavorite: true})
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.services.Favorites.RemoveFavorite(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) characterResponses(characters []domain.Character) []characterResponse {
	out := make([]characterResponse, 0, len(characters))
	for _, c := range characters {
		out = append(out, toCharacterResponse(c, s.services.Favorites.IsFavoriteCached(c.ID)))
	}
	return out
}
