package blobstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/primeasn/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte("ripencc||asn|7|1||available\n")
	require.NoError(t, s.Put(ctx, "a/b", data))
	require.NoError(t, s.Put(ctx, "a/c", nil))
	require.NoError(t, s.Put(ctx, "z", nil))

	// later mutation of the caller's slice is not observed
	data[0] = 'X'

	b, err := s.Open(ctx, "a/b")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, int64(len(data)), b.Size())
	got, err := io.ReadAll(b)
	require.NoError(t, err)
	assert.Equal(t, "ripencc||asn|7|1||available\n", string(got))

	assert.Equal(t, []string{"a/b", "a/c"}, s.List("a/"))
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewLocalStore(root)

	require.NoError(t, s.Put(ctx, "reports/out.json", []byte(`{"primes":[7]}`)))

	raw, err := os.ReadFile(filepath.Join(root, "reports", "out.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"primes":[7]}`, string(raw))

	got, err := ReadAll(ctx, s, "reports/out.json")
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	// absolute names bypass the root
	abs := filepath.Join(root, "reports", "out.json")
	b, err := NewLocalStore("/nonexistent").Open(ctx, abs)
	require.NoError(t, err)
	assert.Equal(t, int64(len(raw)), b.Size())
	require.NoError(t, b.Close())

	_, err = s.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(filepath.Join(root, "reports"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestLocalStore_PutFaults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		fault fs.Fault
	}{
		{"write", fs.Fault{FailAfterBytes: 3}},
		{"sync", fs.Fault{FailAfterBytes: -1, FailOnSync: true}},
		{"close", fs.Fault{FailAfterBytes: -1, FailOnClose: true}},
		{"rename", fs.Fault{FailAfterBytes: -1, FailOnRename: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, "out.txt"), []byte("previous"), 0o644))

			ffs := fs.NewFaultyFS(nil)
			ffs.AddRule("out.txt", tt.fault)
			s := NewLocalStoreFS(root, ffs)

			assert.ErrorIs(t, s.Put(ctx, "out.txt", []byte("replacement")), fs.ErrInjected)

			raw, err := os.ReadFile(filepath.Join(root, "out.txt"))
			require.NoError(t, err)
			assert.Equal(t, "previous", string(raw))

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file left behind")
		})
	}
}

func TestLocalStore_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewLocalStore(t.TempDir())
	assert.ErrorIs(t, s.Put(ctx, "x", nil), context.Canceled)
	_, err := s.Open(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pub/stats/file":
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("payload"))
		case "/pub/stats/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	s := NewHTTPStore(srv.URL+"/pub/stats/", func(o *HTTPOptions) {
		o.Client = srv.Client()
		o.UserAgent = "test-agent"
	})

	got, err := ReadAll(ctx, s, "file")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	_, err = s.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Open(ctx, "boom")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)

	assert.ErrorIs(t, s.Put(ctx, "file", nil), ErrReadOnly)
}

func TestHTTPStore_AbsoluteURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("abs"))
	}))
	defer srv.Close()

	s := NewHTTPStore("", func(o *HTTPOptions) { o.Client = srv.Client() })
	got, err := ReadAll(context.Background(), s, srv.URL+"/x.bz2")
	require.NoError(t, err)
	assert.Equal(t, "abs", string(got))
}

func TestHTTPStore_Defaults(t *testing.T) {
	s := NewHTTPStore("https://ftp.ripe.net")

	tr, ok := s.opts.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, DefaultResponseHeaderTimeout, tr.ResponseHeaderTimeout)
	assert.Equal(t, DefaultIdleTimeout, s.opts.IdleTimeout)
	assert.NotSame(t, http.DefaultClient, s.opts.Client)
}

func TestHTTPStore_StalledBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, func(o *HTTPOptions) {
		o.Client = srv.Client()
		o.IdleTimeout = 50 * time.Millisecond
	})

	start := time.Now()
	_, err := ReadAll(context.Background(), s, "slow")
	assert.ErrorIs(t, err, ErrStalled)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestHTTPStore_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rir" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("private"))
	}))
	defer srv.Close()

	authed := strings.Replace(srv.URL, "http://", "http://rir:secret@", 1)
	s := NewHTTPStore(authed, func(o *HTTPOptions) { o.Client = srv.Client() })
	got, err := ReadAll(context.Background(), s, "file")
	require.NoError(t, err)
	assert.Equal(t, "private", string(got))

	wrong := strings.Replace(srv.URL, "http://", "http://rir:wrong@", 1)
	_, err = NewHTTPStore(wrong, func(o *HTTPOptions) { o.Client = srv.Client() }).Open(context.Background(), "file")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.NotContains(t, err.Error(), "wrong")
}
