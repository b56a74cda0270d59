// Package web hosts the profile card over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/profilecard/internal/platform/timeouts"
	"github.com/louisbranch/profilecard/internal/profile"
	"github.com/louisbranch/profilecard/internal/services/web/modules"
	"github.com/louisbranch/profilecard/internal/services/web/platform/httpx"
	"github.com/louisbranch/profilecard/internal/services/web/platform/observability"
	"github.com/louisbranch/profilecard/internal/services/web/routepath"
	"github.com/louisbranch/profilecard/internal/services/web/static"
)

// Config defines the inputs for the card server.
type Config struct {
	HTTPAddr  string
	BannerURL string
	// Location decides which calendar day is today for age computation.
	Location *time.Location
	// Clock overrides time.Now; tests pin it.
	Clock func() time.Time
	// RequestLogger receives one line per request. Defaults to the std logger.
	RequestLogger *log.Logger
}

// Server hosts the card HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewCard builds the process card from config.
func NewCard(config Config) *profile.Card {
	return profile.NewCard(
		profile.WithClock(config.Clock),
		profile.WithLocation(config.Location),
	)
}

// NewHandler composes static assets, health, and module routes behind the
// shared middleware chain.
func NewHandler(config Config, card *profile.Card) (http.Handler, error) {
	if card == nil {
		return nil, errors.New("card is required")
	}
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Healthz, handleHealthz)

	for _, mod := range modules.DefaultModules(modules.Dependencies{Card: card, BannerURL: config.BannerURL}) {
		mount, err := mod.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", mod.ID(), err)
		}
		mux.Handle(mount.Prefix, mount.Handler)
	}

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(config.RequestLogger),
	), nil
}

// handleHealthz checks its own method because the module mount at the root
// would otherwise absorb other methods on this path.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Printf("write healthz: %v", err)
	}
}

// NewServer builds a configured card server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	card := NewCard(config)
	handler, err := NewHandler(config, card)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// Handler returns the composed HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("profile card listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server without draining.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
