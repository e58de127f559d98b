package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/internal/config"
	"github.com/aretw0/chain/internal/logging"
	"github.com/aretw0/chain/internal/presentation/graph"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
	"github.com/aretw0/chain/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

// Server exposes simulation runs over a JSON API.
// Every request builds its own engine, so no random stream is shared between requests.
type Server struct {
	cfg      config.Config
	model    *model.Model
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
	maxSteps int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxSteps caps iterations×trials per request. The default is config.MaxSteps.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// NewServer validates cfg and prepares the metrics registry.
func NewServer(cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := model.New(cfg.Model())
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg.Clone(),
		model:    m,
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
		maxSteps: config.MaxSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = observability.NewMetrics(s.registry)
	return s, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/model", s.GetModel)
	r.Get("/graph", s.GetGraph)
	r.Post("/simulate", s.Simulate)
	r.Post("/validate", s.Validate)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "chain-http",
		"version": strings.TrimSpace(chain.Version),
	})
}

// ModelResponse describes the served configuration.
type ModelResponse struct {
	States     []string    `json:"states"`
	Matrix     [][]float64 `json:"matrix"`
	Initial    string      `json:"initial"`
	Iterations int         `json:"iterations"`
	Trials     int         `json:"trials"`
}

// GetModel handles the GET /model request.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelResponse{
		States:     s.model.States(),
		Matrix:     s.model.Matrix(),
		Initial:    s.cfg.Initial,
		Iterations: s.cfg.Iterations,
		Trials:     s.cfg.Trials,
	})
}

// GetGraph handles the GET /graph request with a Mermaid document.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.model, domain.State(s.cfg.Initial), nil))
}

// Simulate handles the POST /simulate request.
// The body overlays the served configuration; an empty body runs it as is.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	args, err := decodeArgs(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg, err := config.FromMap(s.cfg, args)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err := cfg.ValidateLimit(s.maxSteps); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	opts := []chain.Option{
		chain.WithLogger(s.logger.With("request_id", middleware.GetReqID(r.Context()))),
		chain.WithLifecycleHooks(s.metrics.Hooks()),
	}
	if cfg.Seed != 0 {
		opts = append(opts, chain.WithSeed(cfg.Seed))
	}
	eng, err := chain.New(cfg.Model(), opts...)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	res, err := eng.Run(r.Context(), domain.State(cfg.Initial), cfg.Iterations, cfg.Trials)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ValidateResponse is the body of POST /validate.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body model.Config
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := model.Validate(body.Matrix, body.States); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: true})
}

func decodeArgs(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	args := map[string]any{}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&args)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return args, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
