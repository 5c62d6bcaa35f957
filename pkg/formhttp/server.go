package formhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type serverConfig struct {
	addr              string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
	onStart           []func()
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

func WithAddr(addr string) ServerOption {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *serverConfig) { c.addr = addr }
}

func WithShutdownTimeout(d time.Duration) ServerOption {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(c *serverConfig) { c.shutdownTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) ServerOption {
	if d <= 0 {
		panic("WithReadHeaderTimeout: duration must be > 0")
	}
	return func(c *serverConfig) { c.readHeaderTimeout = d }
}

// WithStartHook runs fn once the listener is about to accept connections.
func WithStartHook(fn func()) ServerOption {
	if fn == nil {
		panic("WithStartHook: nil hook")
	}
	return func(c *serverConfig) { c.onStart = append(c.onStart, fn) }
}

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
type Server struct {
	cfg    serverConfig
	logger *slog.Logger
	srv    *http.Server
	mu     sync.Mutex
	once   sync.Once
}

func NewServer(l *slog.Logger, opts ...ServerOption) *Server {
	cfg := serverConfig{
		addr:              ":8080",
		readHeaderTimeout: 10 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if l == nil {
		l = logger.Discard()
	}
	return &Server{cfg: cfg, logger: l}
}

// Run serves handler on addr until ctx is done.
func Run(ctx context.Context, addr string, handler http.Handler, l *slog.Logger, opts ...ServerOption) error {
	return NewServer(l, append([]ServerOption{WithAddr(addr)}, opts...)...).Run(ctx, handler)
}

func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Addr:              s.cfg.addr,
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "http server starting", slog.String("addr", srv.Addr))
	for _, fn := range s.cfg.onStart {
		fn()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case <-stop:
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	s.logger.InfoContext(ctx, "http server stopped")
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.logger.Error("graceful shutdown failed", logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops the server, waiting at most the shutdown timeout for
// in-flight requests. Only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
