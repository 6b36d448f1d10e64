package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client posts documents to a single GraphQL endpoint. It holds no state
// besides the endpoint and the underlying HTTP client, so one instance is
// safe to share between concurrent request handlers.
type Client struct {
	apiURL string
	hc     *http.Client
}

func NewClient(apiURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{apiURL: apiURL, hc: hc}
}

type envelope struct {
	Data   map[string]any `json:"data"`
	Errors []any          `json:"errors"`
}

// Execute posts a document with optional variables and bearer token and
// returns the data object of the response envelope. Failures are classified:
// no response at all is ErrServiceUnavailable, a 401 is ErrInvalidToken, and
// a response with a non-empty errors array becomes an *Error carrying the
// list verbatim.
func (c *Client) Execute(ctx context.Context, document string, variables map[string]any, token string) (map[string]any, error) {
	payload := map[string]any{
		"query":     document,
		"variables": variables,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidToken
	}

	var content envelope
	if err := json.NewDecoder(res.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("%w: unreadable response (%s): %v", ErrServiceUnavailable, res.Status, err)
	}

	if len(content.Errors) > 0 {
		return nil, &Error{Errors: content.Errors}
	}

	return content.Data, nil
}

// Query wraps a body selection with the viewer fragment and executes it.
// The returned data contains the viewer key; callers extract and normalize
// it themselves.
func (c *Client) Query(ctx context.Context, body string, variables map[string]any, token string) (map[string]any, error) {
	return c.Execute(ctx, BuildQuery(body, ViewerFragment), variables, token)
}
