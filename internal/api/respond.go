package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"comicvault/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	maxBatchSize = 10
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var rejected *domain.ServerRejectedError
	var decodeErr *domain.DecodeError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &rejected), errors.As(err, &decodeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		s.logger.Debug("request cancelled", "path", r.URL.Path)
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", raw, domain.ErrInvalidRequest)
	}
	return id, nil
}

func pagination(r *http.Request) (offset, limit int, err error) {
	q := r.URL.Query()
	offset, err = intParam(q.Get("offset"), 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intParam(q.Get("limit"), defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", raw, domain.ErrInvalidRequest)
	}
	return v, nil
}

func idList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("issue id %q: %w", part, domain.ErrInvalidRequest)
		}
		ids = append(ids, id)
	}
	if len(ids) > maxLimit {
		return nil, fmt.Errorf("%d issue ids, at most %d allowed: %w", len(ids), maxLimit, domain.ErrInvalidRequest)
	}
	return ids, nil
}
