// Package openlibrary looks up editions on openlibrary.org by ISBN.
package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://openlibrary.org"

// ErrNotFound is returned when Open Library has no edition for the ISBN.
var ErrNotFound = errors.New("openlibrary: isbn not found")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	log        *zap.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBackoff sets the delay before the first retry; it doubles on each further retry.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log.Named("openlibrary") }
}

func NewClient(userAgent string, rps int, maxRetries int, opts ...Option) *Client {
	if rps <= 0 {
		rps = 1
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
		backoff:    time.Second,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Publisher struct {
	Name string `json:"name"`
}

type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Edition matches one entry of api/books?jscmd=data
type Edition struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle,omitempty"`
	Publishers    []Publisher `json:"publishers"`
	Authors       []Author    `json:"authors"`
	PublishDate   string      `json:"publish_date"`
	NumberOfPages int         `json:"number_of_pages,omitempty"`
	URL           string      `json:"url"`
	Cover         struct {
		Large string `json:"large,omitempty"`
	} `json:"cover"`
}

// PublisherNames flattens the publisher objects.
func (e Edition) PublisherNames() []string {
	out := make([]string, 0, len(e.Publishers))
	for _, p := range e.Publishers {
		out = append(out, p.Name)
	}
	return out
}

// AuthorNames flattens the author objects.
func (e Edition) AuthorNames() []string {
	out := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		out = append(out, a.Name)
	}
	return out
}

// LookupISBN fetches the edition for a normalized ISBN-10 or ISBN-13.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (Edition, error) {
	key := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, url.QueryEscape(key))

	var res map[string]Edition
	if err := c.get(ctx, u, &res); err != nil {
		return Edition{}, err
	}
	ed, ok := res[key]
	if !ok {
		return Edition{}, ErrNotFound
	}
	return ed, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := c.backoff * time.Duration(1<<uint(i-1))
			c.log.Debug("retrying request", zap.Int("attempt", i), zap.Duration("backoff", backoff), zap.Error(lastErr))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, url, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, url string, target any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}
