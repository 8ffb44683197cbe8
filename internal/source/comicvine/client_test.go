package comicvine

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comicvault/internal/domain"
)

const characterDetailJSON = `{
  "error": "OK", "status_code": 1, "limit": 1, "offset": 0,
  "number_of_page_results": 1, "number_of_total_results": 1,
  "results": {
    "id": 1443, "name": "Spider-Man", "deck": "Friendly neighborhood",
    "image": {"original_url": "https://img/orig.jpg", "thumb_url": "https://img/thumb.jpg"},
    "api_detail_url": "https://comicvine.gamespot.com/api/character/4005-1443/",
    "site_detail_url": "https://comicvine.gamespot.com/spider-man/4005-1443/",
    "count_of_issue_appearances": 12000,
    "date_added": "2008-06-06 11:27:37", "date_last_updated": "2024-01-01 10:00:00",
    "issue_credits": [{"id": 10, "name": null}, {"id": 11, "name": "Issue 11"}],
    "powers": [{"id": 1, "name": "Wall-crawling"}]
  }
}`

const issueListJSON = `{
  "error": "OK", "status_code": 1, "limit": 2, "offset": 0,
  "number_of_page_results": 2, "number_of_total_results": 40,
  "results": [
    {"id": 1, "name": "First", "issue_number": "1", "cover_date": "2024-01-01",
     "image": {"medium_url": "https://img/1.jpg"}, "volume": {"id": 7, "name": "Venom"},
     "api_detail_url": "a", "site_detail_url": "s", "date_added": "d", "date_last_updated": "u"},
    {"id": 2, "name": null, "issue_number": "2", "cover_date": "",
     "image": {}, "api_detail_url": "a", "site_detail_url": "s", "date_added": "d", "date_last_updated": "u"}
  ]
}`

type ClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	handler  http.HandlerFunc
	requests atomic.Int32
	lastURL  atomic.Pointer[url.URL]
	client   *Client
	logger   *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests.Store(0)
	s.handler = nil
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.lastURL.Store(r.URL)
		s.handler(w, r)
	}))

	s.client = New(Config{
		BaseURL:        s.server.URL + "/api",
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxAttempts:    1,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, nil, s.logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestFetchCharacter_SingleObjectResults() {
	s.respond(http.StatusOK, characterDetailJSON)

	character, err := s.client.FetchCharacter(s.ctx, 1443)

	s.Require().NoError(err)
	s.Equal(int64(1443), character.ID)
	s.Equal("Spider-Man", character.Name)
	s.Equal(12000, character.IssueCount)
	s.Equal("https://img/orig.jpg", character.Image.Best())
	s.Equal([]int64{10, 11}, character.IssueCreditIDs())
	s.Equal("", character.IssueCredits[0].Name)
	s.Len(character.Powers, 1)

	s.Equal("/api/character/4005-1443/", s.lastURL.Load().Path)
	q := s.lastURL.Load().Query()
	s.Equal("test-key", q.Get("api_key"))
	s.Equal("json", q.Get("format"))
	s.Contains(q.Get("field_list"), "issue_credits")
}

func (s *ClientTestSuite) TestFetchIssues_ArrayResults() {
	s.respond(http.StatusOK, issueListJSON)

	issues, err := s.client.FetchIssues(s.ctx, 0, 2)

	s.Require().NoError(err)
	s.Len(issues, 2)
	s.Equal("Venom #1", issues[0].Title())
	s.Equal("2024-01-01", *issues[0].CoverDate)
	s.Nil(issues[1].CoverDate)
	s.Nil(issues[1].Name)

	q := s.lastURL.Load().Query()
	s.Equal("0", q.Get("offset"))
	s.Equal("2", q.Get("limit"))
	s.Equal("date_last_updated:desc", q.Get("sort"))
}

func (s *ClientTestSuite) TestSearchCharacters_SendsQueryAndResources() {
	s.respond(http.StatusOK, `{"error":"OK","status_code":1,"limit":20,"offset":0,
		"number_of_page_results":0,"number_of_total_results":0,"results":[]}`)

	characters, err := s.client.SearchCharacters(s.ctx, "  spider-man ", 20, 10)

	s.Require().NoError(err)
	s.Empty(characters)
	q := s.lastURL.Load().Query()
	s.Equal("/api/search/", s.lastURL.Load().Path)
	s.Equal("spider-man", q.Get("query"))
	s.Equal("character", q.Get("resources"))
	s.Equal("20", q.Get("offset"))
	s.Equal("10", q.Get("limit"))
}

func (s *ClientTestSuite) TestSearchComics_BlankQuerySkipsNetwork() {
	s.respond(http.StatusOK, issueListJSON)

	issues, err := s.client.SearchComics(s.ctx, "   ", 0, 20)

	s.NoError(err)
	s.Empty(issues)
	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestInvalidParameters() {
	s.respond(http.StatusOK, issueListJSON)

	_, err := s.client.FetchIssues(s.ctx, -1, 20)
	s.ErrorIs(err, domain.ErrInvalidRequest)

	_, err = s.client.FetchCharacters(s.ctx, 0, 0)
	s.ErrorIs(err, domain.ErrInvalidRequest)

	_, err = s.client.FetchIssue(s.ctx, 0)
	s.ErrorIs(err, domain.ErrInvalidRequest)

	s.Equal(int32(0), s.requests.Load())
}

func (s *ClientTestSuite) TestEnvelopeFailure_SurfacesMessage() {
	s.respond(http.StatusOK, `{"error":"Invalid API Key","status_code":100,"limit":0,"offset":0,
		"number_of_page_results":0,"number_of_total_results":0,"results":[]}`)

	_, err := s.client.FetchCharacters(s.ctx, 0, 20)

	var rejected *domain.ServerRejectedError
	s.Require().True(errors.As(err, &rejected))
	s.Equal(100, rejected.StatusCode)
	s.Equal("Invalid API Key", rejected.Message)
}

func (s *ClientTestSuite) TestHTTPFailure_IsServerRejected() {
	s.respond(http.StatusUnauthorized, `denied`)

	_, err := s.client.FetchIssue(s.ctx, 5)

	var rejected *domain.ServerRejectedError
	s.Require().True(errors.As(err, &rejected))
	s.Equal(http.StatusUnauthorized, rejected.StatusCode)
	s.Equal("denied", rejected.Message)
}

func (s *ClientTestSuite) TestDecodeFailure_KeepsFieldPath() {
	s.respond(http.StatusOK, `{"error":"OK","status_code":1,"limit":1,"offset":0,
		"number_of_page_results":1,"number_of_total_results":1,
		"results":[{"id":1,"name":"x","count_of_issue_appearances":"many"}]}`)

	_, err := s.client.FetchCharacters(s.ctx, 0, 1)

	var decodeErr *domain.DecodeError
	s.Require().True(errors.As(err, &decodeErr))
	s.Contains(decodeErr.Path, "count_of_issue_appearances")
}

func (s *ClientTestSuite) TestDecodeFailure_Syntax() {
	s.respond(http.StatusOK, `{"error":`)

	_, err := s.client.FetchCharacters(s.ctx, 0, 1)

	var decodeErr *domain.DecodeError
	s.True(errors.As(err, &decodeErr))
}

func (s *ClientTestSuite) TestDetailWithoutResults_IsNotFound() {
	s.respond(http.StatusOK, `{"error":"OK","status_code":1,"limit":0,"offset":0,
		"number_of_page_results":0,"number_of_total_results":0,"results":[]}`)

	_, err := s.client.FetchIssue(s.ctx, 99)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ClientTestSuite) TestSingleAttempt_DoesNotRetry() {
	s.respond(http.StatusBadGateway, `upstream down`)

	_, err := s.client.FetchIssues(s.ctx, 0, 20)

	s.Error(err)
	s.Equal(int32(1), s.requests.Load())
}

func (s *ClientTestSuite) TestRetry_TransientFailure() {
	client := New(Config{
		BaseURL:        s.server.URL + "/api",
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, nil, s.logger)

	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		if s.requests.Load() < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(issueListJSON))
	}

	issues, err := client.FetchIssues(s.ctx, 0, 2)

	s.NoError(err)
	s.Len(issues, 2)
	s.Equal(int32(3), s.requests.Load())
}

func (s *ClientTestSuite) TestRetry_PermanentFailureStops() {
	client := New(Config{
		BaseURL:        s.server.URL + "/api",
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, nil, s.logger)
	s.respond(http.StatusNotFound, `missing`)

	_, err := client.FetchIssue(s.ctx, 7)

	s.Error(err)
	s.Equal(int32(1), s.requests.Load())
}

func (s *ClientTestSuite) TestTimeout_IsServerRejected() {
	client := New(Config{
		BaseURL:     s.server.URL + "/api",
		APIKey:      "test-key",
		Timeout:     20 * time.Millisecond,
		MaxAttempts: 1,
	}, nil, s.logger)
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}

	_, err := client.FetchIssue(s.ctx, 7)

	var rejected *domain.ServerRejectedError
	s.Require().True(errors.As(err, &rejected))
	s.Equal("request timed out", rejected.Message)
}

func (s *ClientTestSuite) TestCancelledContext() {
	s.respond(http.StatusOK, issueListJSON)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.FetchIssues(ctx, 0, 2)

	s.ErrorIs(err, context.Canceled)
}

func (s *ClientTestSuite) TestIdentity() {
	s.Equal("comicvine", s.client.ID())
	s.Equal("ComicVine", s.client.Name())
}
