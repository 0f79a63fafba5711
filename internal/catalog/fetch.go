package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/exodash/exodash/internal/logging"
)

// ErrUnexpectedStatus is returned when the dataset endpoint answers with a
// non-2xx status code.
var ErrUnexpectedStatus = errors.New("unexpected status from dataset endpoint")

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetcher downloads the raw dataset, retrying transient failures through a
// circuit breaker. Once the breaker opens the remaining attempts are skipped.
type fetcher struct {
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	attempts int
	delay    time.Duration
	logger   *slog.Logger
}

func newFetcher(config Config, logger *slog.Logger) *fetcher {
	attempts := config.FetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	settings := gobreaker.Settings{
		Name:        "dataset-fetch",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &fetcher{
		client:   &http.Client{Timeout: config.FetchTimeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		attempts: attempts,
		delay:    config.RetryDelay,
		logger:   logger,
	}
}

func (f *fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	delay := f.delay

	for attempt := 1; attempt <= f.attempts; attempt++ {
		result, err := f.breaker.Execute(func() (interface{}, error) {
			return f.get(ctx, url)
		})
		if err == nil {
			return result.([]byte), nil
		}
		lastErr = err

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}
		if attempt == f.attempts {
			break
		}

		f.logger.Warn("dataset fetch failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("error downloading dataset: %w", lastErr)
}

func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(resp.Body, f.logger, "dataset_response_body")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
