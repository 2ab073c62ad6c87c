// Package server exposes the query service over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/xltables/pkg/xltables/query"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Server routes HTTP requests to a query.Service.
type Server struct {
	svc    *query.Service
	logger *slog.Logger
	mux    *http.ServeMux
}

// New returns a Server for svc. A nil logger uses slog.Default.
func New(svc *query.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /list_tables", s.handleListTables)
	s.mux.HandleFunc("GET /get_table_details", s.handleTableDetails)
	s.mux.HandleFunc("GET /row_sum", s.handleRowSum)
	s.mux.HandleFunc("GET /tables/{name}", s.handleTable)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	names := s.svc.ListTables()
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, r, http.StatusOK, map[string][]string{"tables": names})
}

func (s *Server) handleTableDetails(w http.ResponseWriter, r *http.Request) {
	name, ok := s.requireParam(w, r, "table_name")
	if !ok {
		return
	}
	details, err := s.svc.GetTableDetails(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, details)
}

func (s *Server) handleRowSum(w http.ResponseWriter, r *http.Request) {
	table, ok := s.requireParam(w, r, "table_name")
	if !ok {
		return
	}
	row, ok := s.requireParam(w, r, "row_name")
	if !ok {
		return
	}
	sum, err := s.svc.RowSum(table, row)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, sum)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.GetTable(r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, t)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"tables": len(s.svc.ListTables()),
	})
}

// requireParam returns a non-blank query parameter or writes a 400.
func (s *Server) requireParam(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := r.URL.Query().Get(key)
	if strings.TrimSpace(v) == "" {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Detail: "missing query parameter: " + key})
		return "", false
	}
	return v, true
}

// writeError maps query errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrTableNotFound):
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Detail: "Table not found"})
	case errors.Is(err, query.ErrRowNotFound):
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Detail: "Row not found in the specified table"})
	default:
		s.logger.ErrorContext(r.Context(), "query failed", "error", err, "request_id", requestID(r))
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "encode error", "error", err, "request_id", requestID(r))
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// withRequestLog assigns a request id and logs every request once it completes.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", id,
		)
	})
}

func requestID(r *http.Request) string {
	return r.Header.Get(RequestIDHeader)
}
