package server

import (
	"context"
	"embed"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/minipy/internal/provider"
	"github.com/msto63/minipy/internal/store"
	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
	minilog "github.com/msto63/minipy/pkg/core/log"
)

//go:embed web/index.html
var webFS embed.FS

// CompileRequest represents a compile request
type CompileRequest struct {
	Code string `json:"code"`
}

// CompileResponse represents a compile response
type CompileResponse struct {
	Valid          bool     `json:"valid"`
	SyntaxErrors   []string `json:"syntax_errors"`
	SemanticErrors []string `json:"semantic_errors"`
	AST            string   `json:"ast,omitempty"`
}

// GenerateRequest represents a code generation request
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// GenerateResponse represents a code generation response
type GenerateResponse struct {
	Code     string `json:"code"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// HistoryResponse represents a list of compile records
type HistoryResponse struct {
	Records []*store.Record `json:"records"`
	Total   int             `json:"total"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
	Providers map[string]bool `json:"providers,omitempty"`
}

// Handler handles HTTP requests for the compiler service
type Handler struct {
	providers *provider.Manager
	history   store.HistoryStore
	logger    *minilog.Logger
	startTime time.Time
	version   string
	maxInput  int
}

// NewHandler creates a new API handler. The history store may be nil
// when persistence is disabled.
func NewHandler(version string, providers *provider.Manager, history store.HistoryStore, maxInput int) *Handler {
	return &Handler{
		providers: providers,
		history:   history,
		logger:    minilog.GetDefault().WithField("component", "minipy-handler"),
		startTime: time.Now(),
		version:   version,
		maxInput:  maxInput,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.URL.Path == "/" {
		h.handleIndex(w, r)
		return
	}

	// Only the versioned prefix is routable, unversioned paths are not
	// part of the API surface
	if r.URL.Path != "/api/v1" && !strings.HasPrefix(r.URL.Path, "/api/v1/") {
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" || path == "/":
		h.handleRoot(w, r)
	case path == "health" || path == "health/":
		h.handleHealth(w, r)
	case path == "compile" || path == "compile/":
		h.handleCompile(w, r)
	case path == "generate" || path == "generate/":
		h.handleGenerate(w, r)
	case path == "history" || path == "history/":
		h.handleHistory(w, r)
	case strings.HasPrefix(path, "history/"):
		h.handleHistoryRecord(w, r, strings.TrimPrefix(path, "history/"))
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

// handleIndex serves the embedded web form
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal", "Web form unavailable", "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// handleRoot handles the API root endpoint
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "minipy API",
		"version": h.version,
		"endpoints": map[string][]string{
			"core": {
				"GET  /api/v1/health",
			},
			"compiler": {
				"POST /api/v1/compile",
				"POST /api/v1/compile?ast=1",
			},
			"generator": {
				"POST /api/v1/generate",
			},
			"history": {
				"GET  /api/v1/history",
				"GET  /api/v1/history/{id}",
			},
			"websocket": {
				"GET  /api/v1/ws",
			},
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	resp := HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.providers != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		resp.Providers = h.providers.HealthCheck(ctx)
		cancel()
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// handleCompile runs the full pipeline over the submitted source
func (h *Handler) handleCompile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	requestID := uuid.New().String()
	logger := h.logger.WithRequestID(requestID)

	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body", err.Error())
		return
	}

	if h.maxInput > 0 && len(req.Code) > h.maxInput {
		h.writeError(w, http.StatusBadRequest, "input_too_large",
			"Source exceeds maximum input length", strconv.Itoa(h.maxInput))
		return
	}

	result := minicompiler.Compile(req.Code)

	resp := CompileResponse{
		Valid:          result.Valid(),
		SyntaxErrors:   result.SyntaxErrors,
		SemanticErrors: result.SemanticErrors,
	}
	if resp.SyntaxErrors == nil {
		resp.SyntaxErrors = []string{}
	}
	if resp.SemanticErrors == nil {
		resp.SemanticErrors = []string{}
	}

	if r.URL.Query().Get("ast") == "1" && result.AST != nil {
		resp.AST = result.DumpAST()
	}

	logger.Info("Compile request", minilog.Fields{
		"valid":           resp.Valid,
		"syntax_errors":   len(resp.SyntaxErrors),
		"semantic_errors": len(resp.SemanticErrors),
	})

	if h.history != nil {
		rec := &store.Record{
			ID:             requestID,
			Source:         req.Code,
			SyntaxErrors:   result.SyntaxErrors,
			SemanticErrors: result.SemanticErrors,
			Valid:          result.Valid(),
		}
		if err := h.history.Save(r.Context(), rec); err != nil {
			logger.WarnWithErr("Failed to save history record", err)
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// handleGenerate produces source code from a natural language prompt
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	if h.providers == nil {
		h.writeError(w, http.StatusServiceUnavailable, "service_unavailable", "Generator not configured", "")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body", err.Error())
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Prompt required", "")
		return
	}

	result, err := h.providers.Generate(r.Context(), &provider.GenerateRequest{
		Prompt: req.Prompt,
		Model:  req.Model,
	})
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "generate_failed", "Code generation failed", err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, GenerateResponse{
		Code:     result.Code,
		Provider: result.Provider,
		Model:    result.Model,
	})
}

// handleHistory returns recent compile records
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	if h.history == nil {
		h.writeError(w, http.StatusServiceUnavailable, "service_unavailable", "History disabled", "")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal", "Failed to read history", err.Error())
		return
	}
	if records == nil {
		records = []*store.Record{}
	}

	h.writeJSON(w, http.StatusOK, HistoryResponse{
		Records: records,
		Total:   len(records),
	})
}

// handleHistoryRecord returns a single compile record by ID
func (h *Handler) handleHistoryRecord(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	if h.history == nil {
		h.writeError(w, http.StatusServiceUnavailable, "service_unavailable", "History disabled", "")
		return
	}

	rec, err := h.history.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "not_found", "History record not found", id)
		return
	}

	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	h.writeJSON(w, status, resp)
}
