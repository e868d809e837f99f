package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// CallbackServer is the stand-in for the browser's return navigation: the
// gateway redirects the user to this localhost listener once the payment page
// is done, which unblocks the waiting flow.
type CallbackServer struct {
	logger *slog.Logger

	srv      *http.Server
	listener net.Listener

	once     sync.Once
	returned chan struct{}
}

func NewCallbackServer(logger *slog.Logger) *CallbackServer {
	return &CallbackServer{
		logger:   logger,
		returned: make(chan struct{}),
	}
}

// Start binds a loopback port and begins serving. The bound address is
// available from URL afterwards.
func (s *CallbackServer) Start(addr string) error {
	if addr == "" {
		addr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("binding callback listener: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/payment/return", s.handleReturn)

	s.listener = listener
	s.srv = &http.Server{
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("callback listener stopped", "error", err)
		}
	}()

	s.logger.Info("callback listener started", "url", s.URL())

	return nil
}

// URL is the address the gateway should redirect back to.
func (s *CallbackServer) URL() string {
	return fmt.Sprintf("http://%s/payment/return", s.listener.Addr())
}

// Wait blocks until the gateway redirects back or ctx expires.
func (s *CallbackServer) Wait(ctx context.Context) error {
	select {
	case <-s.returned:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CallbackServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

func (s *CallbackServer) handleReturn(w http.ResponseWriter, r *http.Request) {
	s.once.Do(func() {
		close(s.returned)
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<html><body><h2>Payment page closed</h2><p>You can return to the terminal.</p></body></html>")
}
