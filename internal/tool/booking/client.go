package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client performs the downstream booking-change call.
type Client interface {
	// ChangeBooking submits a change request. A non-nil error means the
	// call itself failed (network failure or a non-2xx status); an
	// application-level rejection arrives as a response with Success=false.
	ChangeBooking(ctx context.Context, req ChangeRequest) (*ChangeResponse, error)
}

// HTTPClient is the production Client over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the booking service at baseURL.
// Calls are bounded by the given timeout in addition to any deadline on
// the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ChangeBooking POSTs the change request to the booking service.
func (c *HTTPClient) ChangeBooking(ctx context.Context, req ChangeRequest) (*ChangeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal change request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mock/change_booking", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build change request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, newStatusError(httpResp.StatusCode, respBody)
	}

	var resp ChangeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decode change response: %w", err)
	}
	return &resp, nil
}

// newStatusError extracts the service's message field when the error body
// is JSON, falling back to a generic description.
func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &StatusError{Code: code, Message: payload.Message}
	}
	return &StatusError{Code: code, Message: fmt.Sprintf("%d - error message not in JSON format", code)}
}
