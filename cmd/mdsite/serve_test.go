package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// newSiteHandler
// ---------------------------------------------------------------------------

func newServedSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html":     "<h1>Home</h1>",
		"blog/post.html": "<h1>Post</h1>",
		"index.css":      "body {}",
	})
	return dir
}

func TestNewSiteHandler(t *testing.T) {
	t.Parallel()

	dir := newServedSite(t)

	tests := []struct {
		name         string
		basePath     string
		path         string
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{
			name:       "root mount index",
			basePath:   "/",
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Home</h1>",
		},
		{
			name:       "root mount nested page",
			basePath:   "/",
			path:       "/blog/post.html",
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Post</h1>",
		},
		{
			name:       "root mount missing page",
			basePath:   "/",
			path:       "/missing.html",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "prefixed mount page",
			basePath:   "/docs/",
			path:       "/docs/blog/post.html",
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Post</h1>",
		},
		{
			name:       "prefixed mount index",
			basePath:   "/docs/",
			path:       "/docs/",
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Home</h1>",
		},
		{
			name:         "site root redirects to prefix",
			basePath:     "/docs/",
			path:         "/",
			wantStatus:   http.StatusFound,
			wantLocation: "/docs/",
		},
		{
			name:         "bare prefix redirects",
			basePath:     "/docs/",
			path:         "/docs",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/docs/",
		},
		{
			name:       "outside prefix not found",
			basePath:   "/docs/",
			path:       "/blog/post.html",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := newSiteHandler(dir, tt.basePath, discardLogger())
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantLocation != "" && rec.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantLocation)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv()
	handler := newSiteHandler(newServedSite(t), "/", env.Logger)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.html", nil))

	out := stderr.String()
	for _, want := range []string{"msg=request", "path=/missing.html", "status=404", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

// ---------------------------------------------------------------------------
// serveUntilDone
// ---------------------------------------------------------------------------

func TestServeUntilDone(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{
		Handler:           newSiteHandler(newServedSite(t), "/", discardLogger()),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serveUntilDone(ctx, srv, ln, discardLogger())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/blog/post.html")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "<h1>Post</h1>" {
		t.Errorf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serveUntilDone() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeUntilDone_ServeError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_ = ln.Close()

	srv := &http.Server{ReadHeaderTimeout: readHeaderTimeout}
	err = serveUntilDone(context.Background(), srv, ln, discardLogger())
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		t.Errorf("serveUntilDone() error = %v, want serve failure", err)
	}
}

// ---------------------------------------------------------------------------
// runServe
// ---------------------------------------------------------------------------

func TestRunServe_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	missing := filepath.Join(root, "missing")

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"positional argument", []string{"site"}, ExitUsage},
		{"missing output without build", []string{"--no-build", "-o", missing, "--content", filepath.Join(root, "content")}, ExitIO},
		{"bad address", []string{"--no-build", "-o", t.TempDir(), "--addr", "256.0.0.1:bad"}, ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv()
			err := runServe(context.Background(), tt.args, env)
			if got := exitCodeFor(err); got != tt.wantCode {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, tt.wantCode)
			}
		})
	}
}
