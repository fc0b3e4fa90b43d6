package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	flag "github.com/spf13/pflag"
)

// ErrListen indicates the preview server could not bind its address.
var ErrListen = errors.New("failed to listen")

// Preview server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// runServe builds the site (unless --no-build) and serves the output
// directory until the context is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %q", ErrUsage, positional[0])
	}
	env.setVerbosity(flags.common.quiet, flags.common.verbose)

	cfg, err := loadSiteConfig(&flags.common, &flags.site, env)
	if err != nil {
		return err
	}
	setIfNotEmpty(&cfg.Serve.Addr, flags.addr)

	if !flags.noBuild {
		if err := buildSite(ctx, cfg, &flags.common, env); err != nil {
			return err
		}
	}
	if !fileutil.DirExists(cfg.Output.Dir) {
		return fmt.Errorf("%w: %s (run 'mdsite build' first)", ErrOutputDir, cfg.Output.Dir)
	}

	ln, err := net.Listen("tcp", cfg.Serve.Addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %v%s", ErrListen, cfg.Serve.Addr, err, hints.ForServeAddr(cfg.Serve.Addr))
	}

	srv := &http.Server{
		Handler:           newSiteHandler(cfg.Output.Dir, cfg.Site.BasePath, env.Logger),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	url := "http://" + ln.Addr().String() + cfg.Site.BasePath
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at %s\n", cfg.Output.Dir, url)
	}
	env.Logger.Info("server started", "addr", ln.Addr().String(), "dir", cfg.Output.Dir)

	return serveUntilDone(ctx, srv, ln, env.Logger)
}

// serveUntilDone serves on ln until the server fails or ctx is canceled,
// then shuts down gracefully.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// newSiteHandler serves dir as a static site mounted at basePath, so
// rewritten root-relative links resolve during preview.
func newSiteHandler(dir, basePath string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	files := http.FileServer(http.Dir(dir))
	prefix := strings.TrimSuffix(basePath, "/")
	if prefix == "" {
		r.Handle("/*", files)
		return r
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, prefix+"/", http.StatusFound)
	})
	r.Get(prefix, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, prefix+"/", http.StatusMovedPermanently)
	})
	r.Handle(prefix+"/*", http.StripPrefix(prefix, files))
	return r
}

// requestLogger logs each request with its status and duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"request_id", middleware.GetReqID(r.Context()),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
