package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// fetchScriptRecords fetches the participant JSON array published by the Apps
// Script web app. The endpoint occasionally answers 429/5xx under load, so
// requests are rate limited and retried up to the configured budget.
func (c *Client) fetchScriptRecords(ctx context.Context) ([]Record, error) {
	return c.fetchScriptRecordsTry(ctx, 0)
}

func (c *Client) fetchScriptRecordsTry(ctx context.Context, try int) ([]Record, error) {
	if try >= c.cfg.MaxRetries {
		return nil, fmt.Errorf("failed to fetch participants after %d retries: %w", c.cfg.MaxRetries, ErrTooManyRequests)
	}

	var records []Record
	if err := c.getJSON(ctx, c.cfg.URL, &records); err != nil {
		var retryable *retryableError
		if errors.As(err, &retryable) {
			slog.WarnContext(ctx, "Retrying participant fetch", slog.Int("try", try+1), slog.Int("status_code", retryable.statusCode))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
			}
			return c.fetchScriptRecordsTry(ctx, try+1)
		}
		return nil, err
	}

	return records, nil
}

// FetchTargetAssignments fetches the target allocation for one tournament day
// (day1, day2 or day3), keyed by event name.
func (c *Client) FetchTargetAssignments(ctx context.Context, day string) (map[string][]TargetAssignment, error) {
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source URL: %w", err)
	}
	query := u.Query()
	query.Set("endpoint", day)
	u.RawQuery = query.Encode()

	var assignments map[string][]TargetAssignment
	if err = c.getJSON(ctx, u.String(), &assignments); err != nil {
		return nil, fmt.Errorf("failed to fetch target assignments: %w", err)
	}

	return assignments, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	if timeout := time.Duration(c.cfg.Timeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		rq.Header.Set("X-API-Key", c.cfg.APIKey)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(rs.Body)
		slog.ErrorContext(ctx, "Source request failed", slog.Int("status_code", rs.StatusCode), slog.String("response", string(data)))

		if rs.StatusCode == http.StatusTooManyRequests || rs.StatusCode >= http.StatusInternalServerError {
			return &retryableError{statusCode: rs.StatusCode}
		}
		return fmt.Errorf("request failed with status code: %d", rs.StatusCode)
	}

	if err = json.NewDecoder(rs.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

type retryableError struct {
	statusCode int
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable status code: %d", e.statusCode)
}
