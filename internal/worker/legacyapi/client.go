package legacyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"timeclock.service/internal/core/model"
)

// HRExportClient is the contract for pushing completed workdays into the
// legacy HR system.
type HRExportClient interface {
	ExportWorkday(ctx context.Context, workday model.Workday) error
}

// HTTPClient exports workdays over plain HTTP.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient new HTTPClient
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ExportWorkday sends the daily summary to the legacy HR endpoint.
func (c *HTTPClient) ExportWorkday(ctx context.Context, workday model.Workday) error {
	payload, err := json.Marshal(workday)
	if err != nil {
		return fmt.Errorf("failed to marshal hr export payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create hr export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call hr export api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("hr export api returned non-successful status code: %d", resp.StatusCode)
	}

	return nil
}
