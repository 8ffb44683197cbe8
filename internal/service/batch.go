package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"comicvault/internal/config"
	"comicvault/internal/domain"
	"comicvault/internal/metrics"
)

const (
	DefaultBatchSize  = 5
	DefaultBatchPause = 200 * time.Millisecond
)

// BatchFetcher loads issues by id in bounded concurrent chunks, pausing between
// chunks to stay under the upstream rate limit.
type BatchFetcher struct {
	remote  IssueFetcher
	size    int
	pause   time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewBatchFetcher(remote IssueFetcher, cfg config.BatchConfig, m *metrics.Metrics, logger *slog.Logger) *BatchFetcher {
	pause := cfg.Pause
	if pause < DefaultBatchPause {
		pause = DefaultBatchPause
	}
	size := cfg.Size
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &BatchFetcher{
		remote:  remote,
		size:    size,
		pause:   pause,
		metrics: m,
		logger:  logger.With("component", "batch_fetcher"),
	}
}

// FetchIssuesByIDs fetches every id and returns the issues that could be loaded,
// sorted most recent first. Failed fetches are logged and left out. A batchSize
// of zero or less means the configured size.
func (b *BatchFetcher) FetchIssuesByIDs(ctx context.Context, ids []int64, batchSize int) ([]domain.Issue, error) {
	if len(ids) == 0 {
		return []domain.Issue{}, nil
	}
	if batchSize <= 0 {
		batchSize = b.size
	}

	issues := make([]domain.Issue, 0, len(ids))
	var failed int

	for start := 0; start < len(ids); start += batchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(b.pause):
			}
		}

		end := min(start+batchSize, len(ids))
		fetched, chunkFailed := b.fetchChunk(ctx, ids[start:end])
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		issues = append(issues, fetched...)
		failed += chunkFailed
	}

	b.metrics.BatchItems(len(issues), failed)
	b.logger.Debug("batch fetched",
		"requested", len(ids),
		"fetched", len(issues),
		"failed", failed,
		"batch_size", batchSize,
	)

	domain.SortIssuesByRecency(issues)
	return issues, nil
}

func (b *BatchFetcher) fetchChunk(ctx context.Context, ids []int64) ([]domain.Issue, int) {
	var (
		mu     sync.Mutex
		issues []domain.Issue
		failed int
	)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Go(func() {
			issue, err := b.remote.FetchIssue(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				b.logger.Warn("fetch issue failed", "issue_id", id, "error", err)
				return
			}
			issues = append(issues, issue)
		})
	}
	wg.Wait()

	return issues, failed
}
