package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent is sent with every HTTP request unless overridden.
const DefaultUserAgent = "primeasn/1.0"

const (
	// DefaultResponseHeaderTimeout bounds the wait for response headers.
	DefaultResponseHeaderTimeout = 30 * time.Second
	// DefaultIdleTimeout bounds the wait for the next body bytes.
	DefaultIdleTimeout = 60 * time.Second
)

// ErrStalled is returned when a response body delivers no data for IdleTimeout.
var ErrStalled = errors.New("blobstore: http body stalled")

// HTTPOptions configures an HTTPStore.
type HTTPOptions struct {
	// Client is the HTTP client used for requests. The default client sets
	// DefaultResponseHeaderTimeout on a clone of http.DefaultTransport.
	Client *http.Client
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// IdleTimeout aborts a download once no body bytes arrived for this long.
	// Zero disables it. Total transfer time is never capped, so large or
	// throttled downloads still complete.
	IdleTimeout time.Duration
}

// HTTPStore implements a read-only Store over HTTP(S).
type HTTPStore struct {
	base string
	opts HTTPOptions
}

func defaultHTTPClient() *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ResponseHeaderTimeout = DefaultResponseHeaderTimeout
	return &http.Client{Transport: t}
}

// NewHTTPStore creates a store that resolves names against base.
// With an empty base, names must be absolute URLs.
func NewHTTPStore(base string, optFns ...func(*HTTPOptions)) *HTTPStore {
	opts := HTTPOptions{
		Client:      defaultHTTPClient(),
		UserAgent:   DefaultUserAgent,
		IdleTimeout: DefaultIdleTimeout,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &HTTPStore{base: base, opts: opts}
}

func (s *HTTPStore) url(name string) string {
	if s.base == "" {
		return name
	}
	return strings.TrimRight(s.base, "/") + "/" + strings.TrimLeft(name, "/")
}

// StatusError is returned for non-2xx responses other than 404.
// URL has any password redacted.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Open issues a GET request and streams the response body.
func (s *HTTPStore) Open(ctx context.Context, name string) (Blob, error) {
	u := s.url(name)

	ctx, cancel := context.WithCancelCause(ctx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		cancel(nil)
		return nil, err
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.opts.Client.Do(req)
	if err != nil {
		cancel(nil)
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		cancel(nil)
		return nil, fmt.Errorf("GET %s: %w", req.URL.Redacted(), ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_ = resp.Body.Close()
		cancel(nil)
		return nil, &StatusError{URL: req.URL.Redacted(), StatusCode: resp.StatusCode}
	}

	b := &httpBlob{body: resp.Body, size: resp.ContentLength, ctx: ctx, cancel: cancel, idle: s.opts.IdleTimeout}
	if b.idle > 0 {
		b.timer = time.AfterFunc(b.idle, func() { cancel(ErrStalled) })
	}
	return b, nil
}

// Put always fails; HTTP sources are read-only.
func (s *HTTPStore) Put(context.Context, string, []byte) error {
	return ErrReadOnly
}

type httpBlob struct {
	body   io.ReadCloser
	size   int64
	ctx    context.Context
	cancel context.CancelCauseFunc
	idle   time.Duration
	timer  *time.Timer
}

func (b *httpBlob) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	if n > 0 && b.timer != nil {
		b.timer.Reset(b.idle)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		if cause := context.Cause(b.ctx); errors.Is(cause, ErrStalled) {
			return n, fmt.Errorf("%w after %s", ErrStalled, b.idle)
		}
	}
	return n, err
}

func (b *httpBlob) Close() error {
	if b.timer != nil {
		b.timer.Stop()
	}
	err := b.body.Close()
	b.cancel(nil)
	return err
}

func (b *httpBlob) Size() int64 { return b.size }
