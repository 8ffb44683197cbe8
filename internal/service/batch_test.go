package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"comicvault/internal/config"
	"comicvault/internal/domain"
	"comicvault/internal/service/mocks"
	"comicvault/internal/testutil"
)

type BatchFetcherTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	remote  *mocks.MockIssueFetcher
	fetcher *BatchFetcher
	logger  *slog.Logger
}

func (s *BatchFetcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remote = mocks.NewMockIssueFetcher(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.fetcher = NewBatchFetcher(s.remote, config.BatchConfig{Size: 5}, nil, s.logger)
}

func (s *BatchFetcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBatchFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(BatchFetcherTestSuite))
}

func issueWithDate(id int64, date string) domain.Issue {
	issue := domain.Issue{ID: id}
	if date != "" {
		issue.CoverDate = testutil.Ptr(date)
	}
	return issue
}

func (s *BatchFetcherTestSuite) TestEmptyIDs_NoCalls() {
	issues, err := s.fetcher.FetchIssuesByIDs(context.Background(), nil, 5)

	s.NoError(err)
	s.NotNil(issues)
	s.Empty(issues)
}

func (s *BatchFetcherTestSuite) TestSortsAndDropsFailures() {
	ctx := context.Background()
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(1)).Return(issueWithDate(1, "2024-01-01"), nil)
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(2)).Return(issueWithDate(2, "2024-03-01"), nil)
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(3)).Return(domain.Issue{}, errors.New("boom"))
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(50)).Return(issueWithDate(50, ""), nil)
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(70)).Return(issueWithDate(70, ""), nil)

	ids := []int64{1, 2, 3, 50, 70}
	issues, err := s.fetcher.FetchIssuesByIDs(ctx, ids, 2)

	s.Require().NoError(err)
	s.LessOrEqual(len(issues), len(ids))
	s.Require().Len(issues, 4)
	s.Equal([]int64{2, 1, 70, 50}, []int64{issues[0].ID, issues[1].ID, issues[2].ID, issues[3].ID})
}

func (s *BatchFetcherTestSuite) TestTotalFailure_ReturnsEmpty() {
	s.remote.EXPECT().FetchIssue(gomock.Any(), gomock.Any()).
		Return(domain.Issue{}, &domain.ServerRejectedError{Message: "offline"}).Times(3)

	issues, err := s.fetcher.FetchIssuesByIDs(context.Background(), []int64{1, 2, 3}, 0)

	s.NoError(err)
	s.Empty(issues)
}

func (s *BatchFetcherTestSuite) TestBoundsConcurrencyAndPausesBetweenChunks() {
	var inFlight, peak atomic.Int32
	var starts []time.Time
	startCh := make(chan time.Time, 6)

	s.remote.EXPECT().FetchIssue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64) (domain.Issue, error) {
			startCh <- time.Now()
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return domain.Issue{ID: id}, nil
		},
	).Times(6)

	issues, err := s.fetcher.FetchIssuesByIDs(context.Background(), []int64{1, 2, 3, 4, 5, 6}, 3)
	close(startCh)
	for t := range startCh {
		starts = append(starts, t)
	}

	s.Require().NoError(err)
	s.Len(issues, 6)
	s.LessOrEqual(peak.Load(), int32(3))

	first, last := starts[0], starts[0]
	for _, t := range starts {
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	s.GreaterOrEqual(last.Sub(first), DefaultBatchPause)
}

func (s *BatchFetcherTestSuite) TestCancelledBetweenChunks() {
	ctx, cancel := context.WithCancel(context.Background())
	s.remote.EXPECT().FetchIssue(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (domain.Issue, error) {
			cancel()
			return domain.Issue{ID: 1}, nil
		},
	)

	issues, err := s.fetcher.FetchIssuesByIDs(ctx, []int64{1, 2}, 1)

	s.ErrorIs(err, context.Canceled)
	s.Nil(issues)
}
