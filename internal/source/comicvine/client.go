package comicvine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"comicvault/internal/domain"
	"comicvault/internal/metrics"
)

const (
	SourceID   = "comicvine"
	SourceName = "ComicVine"

	// Type prefixes ComicVine puts in front of detail ids.
	characterTypeID = "4005"
	issueTypeID     = "4000"

	userAgent = "ComicVault/1.0"
)

// Config holds ComicVine client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the ComicVine REST API. It performs no caching of its own.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// New creates a new ComicVine client.
func New(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		metrics:        m,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (c *Client) Name() string {
	return SourceName
}

func (c *Client) FetchCharacter(ctx context.Context, id int64) (domain.Character, error) {
	if id <= 0 {
		return domain.Character{}, fmt.Errorf("character id %d: %w", id, domain.ErrInvalidRequest)
	}
	path := fmt.Sprintf("/character/%s-%d/", characterTypeID, id)
	results, err := get[Character](ctx, c, "character", path, url.Values{"field_list": {characterFields}})
	if err != nil {
		return domain.Character{}, err
	}
	if len(results) == 0 {
		return domain.Character{}, fmt.Errorf("character %d: %w", id, domain.ErrNotFound)
	}
	return toCharacter(results[0]), nil
}

func (c *Client) FetchCharacters(ctx context.Context, offset, limit int) ([]domain.Character, error) {
	params, err := pageParams(offset, limit)
	if err != nil {
		return nil, err
	}
	params.Set("sort", "date_last_updated:desc")
	params.Set("field_list", characterFields)

	results, err := get[Character](ctx, c, "characters", "/characters/", params)
	if err != nil {
		return nil, err
	}
	return toCharacters(results), nil
}

func (c *Client) FetchIssue(ctx context.Context, id int64) (domain.Issue, error) {
	if id <= 0 {
		return domain.Issue{}, fmt.Errorf("issue id %d: %w", id, domain.ErrInvalidRequest)
	}
	path := fmt.Sprintf("/issue/%s-%d/", issueTypeID, id)
	results, err := get[Issue](ctx, c, "issue", path, url.Values{"field_list": {issueFields}})
	if err != nil {
		return domain.Issue{}, err
	}
	if len(results) == 0 {
		return domain.Issue{}, fmt.Errorf("issue %d: %w", id, domain.ErrNotFound)
	}
	return toIssue(results[0]), nil
}

func (c *Client) FetchIssues(ctx context.Context, offset, limit int) ([]domain.Issue, error) {
	params, err := pageParams(offset, limit)
	if err != nil {
		return nil, err
	}
	params.Set("sort", "date_last_updated:desc")
	params.Set("field_list", issueFields)

	results, err := get[Issue](ctx, c, "issues", "/issues/", params)
	if err != nil {
		return nil, err
	}
	return toIssues(results), nil
}

// SearchCharacters runs a full-text character search. A blank query returns no results
// without contacting the API.
func (c *Client) SearchCharacters(ctx context.Context, query string, offset, limit int) ([]domain.Character, error) {
	params, err := searchParams(query, "character", characterFields, offset, limit)
	if err != nil || params == nil {
		return nil, err
	}
	results, err := get[Character](ctx, c, "search_characters", "/search/", params)
	if err != nil {
		return nil, err
	}
	return toCharacters(results), nil
}

// SearchComics runs a full-text issue search. A blank query returns no results without
// contacting the API.
func (c *Client) SearchComics(ctx context.Context, query string, offset, limit int) ([]domain.Issue, error) {
	params, err := searchParams(query, "issue", issueFields, offset, limit)
	if err != nil || params == nil {
		return nil, err
	}
	results, err := get[Issue](ctx, c, "search_comics", "/search/", params)
	if err != nil {
		return nil, err
	}
	return toIssues(results), nil
}

func pageParams(offset, limit int) (url.Values, error) {
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("offset %d limit %d: %w", offset, limit, domain.ErrInvalidRequest)
	}
	return url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}, nil
}

func searchParams(query, resources, fields string, offset, limit int) (url.Values, error) {
	params, err := pageParams(offset, limit)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	params.Set("query", query)
	params.Set("resources", resources)
	params.Set("field_list", fields)
	return params, nil
}

// get performs one logical request against the API, retrying transient failures when
// the client was configured with more than one attempt.
func get[T any](ctx context.Context, c *Client, endpoint, path string, params url.Values) ([]T, error) {
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")

	u, err := url.Parse(c.baseURL + path)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("build url for %s: %w", endpoint, domain.ErrInvalidRequest)
	}
	u.RawQuery = params.Encode()
	target := u.String()

	started := time.Now()
	results, err := backoff.RetryNotifyWithData(
		func() ([]T, error) {
			return doRequest[T](ctx, c, target)
		},
		backoff.WithContext(c.newBackoff(), ctx),
		func(err error, wait time.Duration) {
			c.logger.Warn("request failed, retrying",
				"endpoint", endpoint,
				"backoff", wait,
				"error", err,
			)
		},
	)
	c.metrics.ObserveRemote(endpoint, started, err)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched", "endpoint", endpoint, "results", len(results))
	return results, nil
}

func (c *Client) newBackoff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.initialBackoff > 0 {
		exp.InitialInterval = c.initialBackoff
	}
	if c.maxBackoff > 0 {
		exp.MaxInterval = c.maxBackoff
	}
	exp.MaxElapsedTime = 0
	return backoff.WithMaxRetries(exp, uint64(c.maxAttempts-1))
}

// doRequest executes a single HTTP round trip. Errors that a retry cannot fix are
// marked permanent.
func doRequest[T any](ctx context.Context, c *Client, target string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", domain.ErrInvalidRequest))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, &domain.ServerRejectedError{Message: transportMessage(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		rejected := &domain.ServerRejectedError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
		if rejected.Message == "" {
			rejected.Message = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return nil, rejected
		}
		return nil, backoff.Permanent(rejected)
	}

	var apiResp Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, backoff.Permanent(decodeError(err))
	}

	if !apiResp.Success() {
		return nil, backoff.Permanent(&domain.ServerRejectedError{
			StatusCode: apiResp.StatusCode,
			Message:    apiResp.Error,
		})
	}

	return apiResp.Results, nil
}

func transportMessage(err error) string {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	return err.Error()
}

func decodeError(err error) error {
	var decodeErr *domain.DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &domain.DecodeError{Path: typeErr.Field, Err: err}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &domain.DecodeError{Path: fmt.Sprintf("offset %d", syntaxErr.Offset), Err: err}
	}
	return &domain.DecodeError{Err: err}
}
