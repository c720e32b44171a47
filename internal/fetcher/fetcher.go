package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// UserAgent identifies the dictionary downloader to servers
	UserAgent = "WordleArt/1.0"

	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second

	// MaxRetries for failed requests
	MaxRetries = 3

	// BackoffBase for exponential backoff
	BackoffBase = time.Second
)

// Fetcher downloads word-list pages with rate limiting and retries
type Fetcher struct {
	client      *http.Client
	rateLimiter *rate.Limiter
	verbose     bool
}

// New creates a new Fetcher. A rate of 0 means unlimited.
func New(requestsPerSecond float64, verbose bool) *Fetcher {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	} else {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		rateLimiter: limiter,
		verbose:     verbose,
	}
}

// Fetch downloads a URL and returns the response body along with its
// Content-Type. Server errors (5xx) and transport failures are retried with
// exponential backoff; client errors (4xx) are not.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (io.ReadCloser, string, error) {
	var lastErr error

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if err := f.rateLimiter.Wait(ctx); err != nil {
			return nil, "", fmt.Errorf("rate limiter error: %w", err)
		}

		if f.verbose && attempt > 0 {
			fmt.Printf("Retrying %s (attempt %d/%d)\n", urlStr, attempt+1, MaxRetries)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
		if err != nil {
			return nil, "", fmt.Errorf("creating request: %w", err)
		}

		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			f.backoff(attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)

			// Don't retry client errors (4xx), but do retry server errors (5xx)
			if resp.StatusCode < 500 {
				return nil, "", lastErr
			}

			f.backoff(attempt)
			continue
		}

		if f.verbose {
			fmt.Printf("Successfully fetched %s (%s)\n", urlStr, resp.Header.Get("Content-Type"))
		}

		return resp.Body, resp.Header.Get("Content-Type"), nil
	}

	return nil, "", fmt.Errorf("failed after %d attempts: %w", MaxRetries, lastErr)
}

// backoff implements exponential backoff
func (f *Fetcher) backoff(attempt int) {
	backoff := BackoffBase * time.Duration(1<<uint(attempt))
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}

	if f.verbose {
		fmt.Printf("Backing off for %v\n", backoff)
	}

	time.Sleep(backoff)
}
