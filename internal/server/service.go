// Package server exposes the EVM engine over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/narrative"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/preset"
)

const maxRequestBody = 64 << 10 // 64 KB

// Config controls the server runtime behavior.
type Config struct {
	Addr string
	// Quiet disables per-request logging.
	Quiet bool
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	Addr         string    `json:"addr"`
	RequestCount int64     `json:"request_count"`
	LastError    string    `json:"last_error,omitempty"`
}

// EvaluateResponse is returned by /v1/evaluate.
type EvaluateResponse struct {
	Metrics    evm.Metrics    `json:"metrics"`
	Results    evm.Results    `json:"results"`
	Assessment evm.Assessment `json:"assessment"`
}

// SeriesResponse is returned by /v1/series.
type SeriesResponse struct {
	Points []evm.ChartDataPoint `json:"points"`
}

// ContextRequest is the body accepted by /v1/context.
type ContextRequest struct {
	Metrics     evm.Metrics      `json:"metrics"`
	Constraints *evm.Constraints `json:"constraints,omitempty"`
}

// ContextResponse is returned by /v1/context.
type ContextResponse struct {
	narrative.Context
	Prompt string `json:"prompt"`
}

// PresetResponse describes one built-in scenario.
type PresetResponse struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Metrics     evm.Metrics      `json:"metrics"`
	Constraints *evm.Constraints `json:"constraints,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Service provides the HTTP API. Handlers share no state beyond counters.
type Service struct {
	cfg Config

	mu           sync.RWMutex
	startedAt    time.Time
	requestCount int64
	lastError    string
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Addr returns the listen address after defaults are applied.
func (s *Service) Addr() string {
	return s.cfg.Addr
}

// Handler returns the routed API handler.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("/v1/series", s.handleSeries)
	mux.HandleFunc("/v1/context", s.handleContext)
	mux.HandleFunc("/v1/presets", s.handlePresets)
	return s.withRequestID(mux)
}

// Run serves the API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("evm http server: %w", err)
	}
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Service) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		s.mu.Lock()
		s.requestCount++
		s.mu.Unlock()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if !s.cfg.Quiet {
			log.Printf("evm %s %s %d %s id=%s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), id)
		}
	})
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:    s.startedAt,
		Addr:         s.cfg.Addr,
		RequestCount: s.requestCount,
		LastError:    s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var m evm.Metrics
	if !s.decodePost(w, r, &m) {
		return
	}
	res := evm.Evaluate(m)
	s.writeJSON(w, http.StatusOK, EvaluateResponse{
		Metrics:    m,
		Results:    res,
		Assessment: evm.Assess(m, res),
	})
}

func (s *Service) handleSeries(w http.ResponseWriter, r *http.Request) {
	var m evm.Metrics
	if !s.decodePost(w, r, &m) {
		return
	}
	s.writeJSON(w, http.StatusOK, SeriesResponse{Points: evm.InterpolateSeries(m)})
}

func (s *Service) handleContext(w http.ResponseWriter, r *http.Request) {
	var req ContextRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	rc := narrative.NewContext(req.Metrics, req.Constraints)
	s.writeJSON(w, http.StatusOK, ContextResponse{Context: rc, Prompt: rc.Prompt()})
}

func (s *Service) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.fail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	bundles := preset.All()
	out := make([]PresetResponse, len(bundles))
	for i, b := range bundles {
		out[i] = PresetResponse{
			Key:         b.Key,
			Name:        b.Name,
			Description: b.Description,
			Metrics:     b.Metrics,
			Constraints: b.Constraints,
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// decodePost enforces POST and decodes a JSON body into v.
// It writes the error response and returns false on failure.
func (s *Service) decodePost(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		s.fail(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func (s *Service) fail(w http.ResponseWriter, status int, msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON encodes v before writing the status, so values JSON cannot carry
// (NaN, infinities from overflowing inputs) yield a 422 instead of an empty body.
func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.fail(w, http.StatusUnprocessableEntity, fmt.Sprintf("result not representable as JSON: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}
