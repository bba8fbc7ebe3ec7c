// File: services/orchestrator_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
)

// HTTPResetOrchestrator calls the fullAppReset callable function.
type HTTPResetOrchestrator struct {
	URL    string
	Client *http.Client
}

type callableRequest struct {
	Data resetPayload `json:"data"`
}

type resetPayload struct {
	EventID string `json:"eventId"`
}

type callableResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewHTTPResetOrchestrator uses client for every call.
func NewHTTPResetOrchestrator(url string, client *http.Client) *HTTPResetOrchestrator {
	return &HTTPResetOrchestrator{URL: url, Client: client}
}

// NewIDTokenClient returns an HTTP client that attaches a Google ID token for
// audience, as required to invoke a private Cloud Function.
func NewIDTokenClient(ctx context.Context, audience string, timeout time.Duration) (*http.Client, error) {
	client, err := idtoken.NewClient(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("create id token client: %w", err)
	}
	client.Timeout = timeout
	return client, nil
}

// Reset posts {"data":{"eventId":...}} and treats anything other than a 2xx
// response without an error body as a failed reset.
func (o *HTTPResetOrchestrator) Reset(ctx context.Context, eventID string) error {
	body, err := json.Marshal(callableRequest{Data: resetPayload{EventID: eventID}})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrOrchestratorFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrOrchestratorFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOrchestratorFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrOrchestratorFailed, err)
	}

	var out callableResponse
	decodeErr := json.Unmarshal(raw, &out)
	if out.Error != nil {
		return fmt.Errorf("%w: %s: %s", ErrOrchestratorFailed, out.Error.Status, out.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrOrchestratorFailed, resp.StatusCode, string(raw))
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %v", ErrOrchestratorFailed, decodeErr)
	}
	return nil
}
