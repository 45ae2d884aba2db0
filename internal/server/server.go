// Package server exposes the form pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-authform/internal/logging"
	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/orchestrator"
	"github.com/goliatone/go-authform/pkg/validation"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// ErrorCodeHeader carries the text code of a pipeline failure alongside the
// unsupported response body.
const ErrorCodeHeader = "X-Authform-Error"

// FormRequest is the body of POST /v1/forms.
type FormRequest struct {
	Transaction idx.Transaction `json:"transaction"`
	Config      *config.Widget  `json:"config,omitempty"`
}

// ValidateRequest is the body of POST /v1/forms/validate.
type ValidateRequest struct {
	Transaction idx.Transaction `json:"transaction"`
	Config      *config.Widget  `json:"config,omitempty"`
	Data        map[string]any  `json:"data"`
	// Field limits validation to the rule stored under one path. No submit
	// request is returned for a field check.
	Field string `json:"field,omitempty"`
}

// ValidateResponse reports the rule results and, when the data is valid,
// the request that would advance the transaction.
type ValidateResponse struct {
	validation.Result
	Submit *model.SubmitRequest `json:"submit,omitempty"`
}

// Server serves form generation and validation.
type Server struct {
	orch   *orchestrator.Orchestrator
	logger logging.Logger
}

// New returns a server backed by orch.
func New(orch *orchestrator.Orchestrator, logger logging.Logger) *Server {
	if orch == nil {
		orch = orchestrator.New()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{orch: orch, logger: logger}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1/forms", func(api chi.Router) {
		api.Post("/", s.handleGenerate)
		api.Post("/validate", s.handleValidate)
	})
	return r
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req FormRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	bag, err := s.generate(r.Context(), req.Transaction, req.Config)
	if err != nil {
		w.Header().Set(ErrorCodeHeader, model.ErrorCode(err))
	}
	s.writeJSON(w, http.StatusOK, bag)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	bag, err := s.generate(r.Context(), req.Transaction, req.Config)
	if err != nil {
		w.Header().Set(ErrorCodeHeader, model.ErrorCode(err))
		s.writeJSON(w, http.StatusUnprocessableEntity, bag)
		return
	}

	data := make(map[string]any, len(bag.Data)+len(req.Data))
	for k, v := range bag.Data {
		data[k] = v
	}
	for k, v := range req.Data {
		data[k] = v
	}

	if req.Field != "" {
		s.writeJSON(w, http.StatusOK, ValidateResponse{Result: validation.ValidateField(bag, req.Field, data)})
		return
	}

	resp := ValidateResponse{Result: validation.Validate(bag, data)}
	if resp.Valid {
		if submit, ok := bag.SubmitRequest(data); ok {
			resp.Submit = &submit
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) generate(ctx context.Context, tx idx.Transaction, cfg *config.Widget) (model.FormBag, error) {
	if cfg == nil {
		return s.orch.Generate(ctx, tx)
	}
	return s.orch.GenerateWithConfig(ctx, tx, *cfg)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("server: decode request: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.logger.Warn("write response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.WithFields(s.logger.WithContext(r.Context()), map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
			"status":     ww.Status(),
		}).Info("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}
