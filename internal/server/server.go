// Package server exposes the route engine, track distances, stored cruises
// and sheet conversion over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/oceancruise/internal/metrics"
	"github.com/katalvlaran/oceancruise/internal/store"
	"github.com/katalvlaran/oceancruise/route"
	"github.com/katalvlaran/oceancruise/tsp"
)

// DefaultMaxStations caps the stations accepted per request when
// Dependencies.MaxStations is zero.
const DefaultMaxStations = 2000

// Dependencies holds everything the handlers need. Store may be nil, in
// which case the /v1/cruises endpoints answer 503.
type Dependencies struct {
	Solver      tsp.Solver
	Orientation route.Orientation
	Store       *store.Store
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	MaxStations int
}

// Server is the HTTP front end.
type Server struct {
	deps   Dependencies
	engine *route.Engine
	router *gin.Engine
}

// New builds the router. Nil Solver, Metrics and Logger fall back to the
// default solver, a private registry and slog.Default().
func New(deps Dependencies) *Server {
	if deps.Solver == nil {
		deps.Solver = tsp.New(tsp.DefaultOptions())
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.MaxStations <= 0 {
		deps.MaxStations = DefaultMaxStations
	}

	s := &Server{deps: deps}
	s.engine = s.newEngine(deps.Orientation)
	s.router = gin.New()
	s.setupRoutes()

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) newEngine(o route.Orientation) *route.Engine {
	return route.New(
		route.WithSolver(s.deps.Solver),
		route.WithOrientation(o),
		route.WithLogger(s.deps.Logger),
	)
}

// engineFor returns the shared engine, or a per-request one when the
// request overrides the orientation.
func (s *Server) engineFor(orientation string) (*route.Engine, error) {
	if orientation == "" {
		return s.engine, nil
	}
	o, err := route.ParseOrientation(orientation)
	if err != nil {
		return nil, err
	}

	return s.newEngine(o), nil
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("http server starting", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.deps.Logger.Info("shutdown requested, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.deps.Logger.Info("server stopped")

	return nil
}
