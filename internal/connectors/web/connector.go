package web

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// MaxIndexBytes caps the size of a fetched index document.
const MaxIndexBytes = 64 << 20

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("web: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Connector fetches documents with a plain GET.
type Connector struct {
	client    *http.Client
	userAgent string
}

// Option configures a Connector.
type Option func(*Connector)

// WithHTTPClient replaces the default client. Its timeout is kept as is.
func WithHTTPClient(c *http.Client) Option {
	return func(conn *Connector) {
		conn.client = c
	}
}

// New creates a web connector.
func New(timeout time.Duration, userAgent string, opts ...Option) *Connector {
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeout
	}
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}
	c := &Connector{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schemes returns "http" and "https".
func (c *Connector) Schemes() []string {
	return []string{"http", "https"}
}

// Fetch GETs uri. The Content-Type header, without parameters, becomes
// the MIME type of the returned index.
func (c *Connector) Fetch(ctx context.Context, uri string) (*domain.RawIndex, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/xml, application/json, application/rss+xml, application/atom+xml, */*;q=0.5")

	logger.Debug("GET %s", uri)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: uri}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxIndexBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri, err)
	}
	if len(body) > MaxIndexBytes {
		return nil, fmt.Errorf("read %s: document exceeds %d bytes: %w", uri, MaxIndexBytes, domain.ErrInvalidInput)
	}

	mimeType := ""
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			mimeType = mt
		}
	}

	return &domain.RawIndex{
		URI:      uri,
		MIMEType: mimeType,
		Content:  body,
		Metadata: map[string]any{
			"status":         resp.StatusCode,
			"content_length": len(body),
		},
	}, nil
}
