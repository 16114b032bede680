package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx backend response, carrying the server-provided message
// when one could be decoded.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// BackendClient issues authenticated requests against the StreetWare backend
// REST API. It owns no business logic: every call is a thin wrapper that
// translates failures into errors carrying the server's message.
type BackendClient struct {
	http *resty.Client
}

func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *BackendClient) request(token string) *resty.Request {
	req := c.http.R().SetHeader("Content-Type", "application/json")
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// apiError builds the error for a non-2xx response, preferring the backend's
// own "message" field over the per-call fallback.
func apiError(resp *resty.Response, fallback string) error {
	message := fallback
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		message = body.Message
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}
