// Package translator talks to the remote translation service.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Rorical/GitLingo/internal/models"
)

// DefaultEndpoint is where the local translation service listens.
const DefaultEndpoint = "http://127.0.0.1:5000/api/translate"

// ServerErrorMessage is shown for every non-2xx response.
const ServerErrorMessage = "Something went wrong with the server."

// ServerError is returned when the service answers with a non-2xx status.
// The status is kept for logging only; the message never changes.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return ServerErrorMessage
}

// TransportError covers network failures, undecodable bodies and anything
// else raised while making the call. Its message is the underlying one.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type translateRequest struct {
	Query string `json:"query"`
}

// Client posts queries to a single endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a client for endpoint, falling back to DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Translate sends query and decodes the suggested command.
func (c *Client) Translate(ctx context.Context, query string) (models.TranslationResult, error) {
	var result models.TranslationResult

	body, err := json.Marshal(translateRequest{Query: query})
	if err != nil {
		return result, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return result, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &ServerError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.TranslationResult{}, &TransportError{Err: err}
	}

	return result, nil
}
