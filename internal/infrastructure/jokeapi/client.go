// Package jokeapi fetches categories and jokes from a JokeAPI-compatible service.
package jokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public JokeAPI endpoint.
	DefaultBaseURL = "https://v2.jokeapi.dev"

	userAgent      = "jokey/1.0"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

var (
	// ErrTransport wraps failures to reach the service.
	ErrTransport = errors.New("joke service unreachable")
	// ErrResponse wraps non-success statuses and bodies that cannot be used.
	ErrResponse = errors.New("unexpected joke service response")
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", "application/json")
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgent)
	}
	return base.RoundTrip(clone)
}

// Client talks to the joke service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// wrapped so requests still carry the default headers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cloned := *hc
		cloned.Transport = acceptTransport{base: hc.Transport}
		c.http = &cloned
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// NewClient creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: acceptTransport{base: http.DefaultTransport},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type categoriesResponse struct {
	Error      bool     `json:"error"`
	Message    string   `json:"message"`
	Categories []string `json:"categories"`
}

type jokeEntry struct {
	Joke string `json:"joke"`
}

// jokesResponse covers both shapes the service returns: a "jokes" array
// when more than one joke is requested, and a single top-level joke
// otherwise.
type jokesResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Jokes   []jokeEntry `json:"jokes"`
	Joke    *string     `json:"joke"`
}

// Categories returns the category names in the order the service lists them.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var body categoriesResponse
	if err := c.get(ctx, c.baseURL+"/categories", &body); err != nil {
		return nil, err
	}
	if body.Error {
		return nil, fmt.Errorf("%w: %s", ErrResponse, apiMessage(body.Message))
	}
	if body.Categories == nil {
		return nil, fmt.Errorf("%w: missing categories", ErrResponse)
	}
	return body.Categories, nil
}

// Jokes returns up to amount single-type jokes for category.
func (c *Client) Jokes(ctx context.Context, category string, amount int) ([]string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errors.New("category is empty")
	}
	if amount < 1 {
		amount = 1
	}

	query := url.Values{}
	query.Set("type", "single")
	query.Set("amount", strconv.Itoa(amount))
	endpoint := fmt.Sprintf("%s/joke/%s?%s", c.baseURL, url.PathEscape(category), query.Encode())

	var body jokesResponse
	if err := c.get(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.Error {
		return nil, fmt.Errorf("%w: %s", ErrResponse, apiMessage(body.Message))
	}

	switch {
	case body.Jokes != nil:
		jokes := make([]string, 0, len(body.Jokes))
		for _, entry := range body.Jokes {
			jokes = append(jokes, entry.Joke)
		}
		return jokes, nil
	case body.Joke != nil:
		return []string{*body.Joke}, nil
	default:
		return nil, fmt.Errorf("%w: missing jokes", ErrResponse)
	}
}

func (c *Client) get(ctx context.Context, endpoint string, dst any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetching %s: %w", ErrTransport, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: HTTP %d from %s: %s", ErrResponse, resp.StatusCode, endpoint, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %w", ErrResponse, endpoint, err)
	}
	return nil
}

func apiMessage(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "service reported an error"
	}
	return msg
}
