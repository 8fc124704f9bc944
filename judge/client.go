package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Client submits source code to the external execution service and returns
// its output. The service runs the code itself; we only see stdout/stderr.
type Client interface {
	Submit(ctx context.Context, req SubmissionRequest) (SubmissionResult, error)
}

// SubmissionRequest carries base64-encoded source code and the numeric
// language id the execution service expects.
type SubmissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
}

type SubmissionStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// SubmissionResult is the executed-and-waited response. Stdout and Stderr
// are base64 encoded, nil when the run produced nothing on that stream.
type SubmissionResult struct {
	Stdout *string          `json:"stdout"`
	Stderr *string          `json:"stderr"`
	Status SubmissionStatus `json:"status"`
}

type httpClient struct {
	host   string
	client *http.Client
}

// NewClient builds a Client against a judge0-compatible host.
func NewClient(host string) Client {
	return &httpClient{
		host: host,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submit posts the source code with base64_encoded=true and wait=true, so
// the response already contains the finished run. Transport failures are
// retried with exponential backoff; the caller sees an error only once
// the retries are exhausted.
func (c *httpClient) Submit(ctx context.Context, req SubmissionRequest) (SubmissionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("failed to marshal submission request: %w", err)
	}

	endpoint, err := url.JoinPath(c.host, "submissions")
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("failed to build submissions url: %w", err)
	}
	endpoint += "?base64_encoded=true&wait=true"

	var result SubmissionResult
	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(httpReq)
		if err != nil {
			return err // transient, retry
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("judge returned status %d: %s", resp.StatusCode, string(respBody))
		}
		if err := json.Unmarshal(respBody, &result); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse judge response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return SubmissionResult{}, fmt.Errorf("failed to submit code to judge: %w", err)
	}
	return result, nil
}
