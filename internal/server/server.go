// Package server exposes the CarQuery client as a small JSON HTTP API.
//
// The facade forwards each route to one client operation and answers with
// the normalized camelCase structs, so callers never see the remote API's
// string-typed payloads. Errors are returned as {"code","message"} objects
// with a status derived from the error code.
//
// # Routes
//
//	GET /years
//	GET /makes?year=2011&sold_in_us=1
//	GET /makes/{make}/models?year=2011&sold_in_us=1&body=SUV
//	GET /trims?make=ford&year=2011&min_cylinders=6
//	GET /models/{id}
//	GET /healthz
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/carquery/pkg/integrations/carquery"
)

const shutdownTimeout = 5 * time.Second

// Querier is the subset of [carquery.Client] the server needs.
type Querier interface {
	GetYearRange(ctx context.Context) (*carquery.YearRange, error)
	GetMakes(ctx context.Context, year int, soldInUSA bool) ([]carquery.Make, error)
	GetModels(ctx context.Context, p carquery.GetModelsParams) ([]carquery.Model, error)
	GetTrims(ctx context.Context, p carquery.GetTrimsParams) ([]carquery.Trim, error)
	GetModelDetail(ctx context.Context, modelID int) (*carquery.ModelDetail, error)
}

// Server routes HTTP requests to a Querier.
type Server struct {
	client Querier
	logger *log.Logger
	router chi.Router
}

// New creates a Server. A nil logger falls back to log.Default().
func New(client Querier, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{client: client, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/years", s.handleYears)
	r.Get("/makes", s.handleMakes)
	r.Get("/makes/{make}/models", s.handleModels)
	r.Get("/trims", s.handleTrims)
	r.Get("/models/{id}", s.handleModel)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNoRoute)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
