package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wiredoc"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// fetchWithRetry fetches url, retrying after each of the given delays.
// Missing pages (ENOTFOUND) are not retried.
func fetchWithRetry(ctx context.Context, fetcher wiredoc.Fetcher, url string, delays []time.Duration, logger *slog.Logger) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) || wiredoc.IsNotFound(err) {
			break
		}

		logger.Debug("retry fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
