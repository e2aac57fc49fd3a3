package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msto63/minipy/internal/provider"
	"github.com/msto63/minipy/internal/store"
)

func newTestHandler(history store.HistoryStore) *Handler {
	manager := provider.NewManager(provider.ManagerConfig{})
	return NewHandler("test", manager, history, 1024)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
}

func TestHandler_CompileValid(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{
		Code: "x = 5\nprint(x)\n",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp CompileResponse
	decodeJSON(t, rec, &resp)

	if !resp.Valid {
		t.Errorf("valid = false: %+v", resp)
	}
	if len(resp.SyntaxErrors) != 0 || len(resp.SemanticErrors) != 0 {
		t.Errorf("unexpected errors: %+v", resp)
	}
	if resp.AST != "" {
		t.Error("AST returned without ast=1")
	}
}

func TestHandler_CompileInvalid(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{
		Code: "print(y)\n",
	})

	var resp CompileResponse
	decodeJSON(t, rec, &resp)

	if resp.Valid {
		t.Error("valid = true for undefined variable")
	}
	if len(resp.SemanticErrors) != 1 || resp.SemanticErrors[0] != "Undefined variable 'y'" {
		t.Errorf("semantic errors = %v", resp.SemanticErrors)
	}
	// Error slices are always present, never null
	if !strings.Contains(rec.Body.String(), `"syntax_errors":[]`) {
		t.Errorf("syntax_errors not an empty array: %s", rec.Body.String())
	}
}

func TestHandler_CompileWithAST(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/compile?ast=1", CompileRequest{
		Code: "x = 5\n",
	})

	var resp CompileResponse
	decodeJSON(t, rec, &resp)

	if !strings.HasPrefix(resp.AST, "Program:") {
		t.Errorf("AST = %q, want tree dump", resp.AST)
	}
}

func TestHandler_CompileTooLarge(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{
		Code: strings.Repeat("x = 1\n", 400),
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	if resp.Code != "input_too_large" {
		t.Errorf("error code = %q", resp.Code)
	}
}

func TestHandler_CompileEmptyBody(t *testing.T) {
	h := newTestHandler(nil)

	// An empty body compiles the empty program
	rec := doJSON(t, h, http.MethodPost, "/api/v1/compile", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp CompileResponse
	decodeJSON(t, rec, &resp)
	if !resp.Valid {
		t.Errorf("valid = false for empty program: %+v", resp)
	}
}

func TestHandler_CompileBadJSON(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_CompileWrongMethod(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/compile", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandler_CompileSavesHistory(t *testing.T) {
	history := store.NewMemoryHistoryStore()
	h := newTestHandler(history)

	doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{Code: "x = 1\n"})
	doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{Code: "print(z)\n"})

	count, _ := history.Count(context.Background())
	if count != 2 {
		t.Errorf("history count = %d, want 2", count)
	}
}

func TestHandler_Generate(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/generate", GenerateRequest{
		Prompt: "say hello",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	decodeJSON(t, rec, &resp)

	if resp.Provider != "fallback" {
		t.Errorf("provider = %q, want fallback", resp.Provider)
	}
	if !strings.Contains(resp.Code, "Hello from the offline generator!") {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestHandler_GenerateEmptyPrompt(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/generate", GenerateRequest{Prompt: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_GenerateWithoutManager(t *testing.T) {
	h := NewHandler("test", nil, nil, 1024)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/generate", GenerateRequest{Prompt: "p"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandler_History(t *testing.T) {
	history := store.NewMemoryHistoryStore()
	h := newTestHandler(history)

	doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{Code: "x = 1\n"})

	rec := doJSON(t, h, http.MethodGet, "/api/v1/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp HistoryResponse
	decodeJSON(t, rec, &resp)
	if resp.Total != 1 || len(resp.Records) != 1 {
		t.Errorf("history = %+v", resp)
	}
	if resp.Records[0].Source != "x = 1\n" {
		t.Errorf("source = %q", resp.Records[0].Source)
	}
}

func TestHandler_HistoryDisabled(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/history", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandler_HistoryRecord(t *testing.T) {
	history := store.NewMemoryHistoryStore()
	h := newTestHandler(history)

	doJSON(t, h, http.MethodPost, "/api/v1/compile", CompileRequest{Code: "x = 1\n"})

	records, _ := history.Recent(context.Background(), 1)
	if len(records) != 1 {
		t.Fatal("no history record saved")
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/history/"+records[0].ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got store.Record
	decodeJSON(t, rec, &got)
	if got.ID != records[0].ID {
		t.Errorf("ID = %q, want %q", got.ID, records[0].ID)
	}
}

func TestHandler_HistoryRecordNotFound(t *testing.T) {
	h := newTestHandler(store.NewMemoryHistoryStore())

	rec := doJSON(t, h, http.MethodGet, "/api/v1/history/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q", resp.Version)
	}
	if !resp.Providers["fallback"] {
		t.Errorf("providers = %v", resp.Providers)
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_UnversionedPathsRejected(t *testing.T) {
	h := newTestHandler(nil)

	// Endpoints exist only under /api/v1, bare paths are not aliases
	for _, path := range []string{"/compile", "/health", "/api/compile", "/api/v2/compile"} {
		rec := doJSON(t, h, http.MethodPost, path, CompileRequest{Code: "x = 1\n"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
		}
	}
}

func TestHandler_CORS(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodOptions, "/api/v1/compile", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS origin header missing")
	}
}

func TestHandler_Index(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "minipy") {
		t.Error("index page does not mention minipy")
	}
}

func TestHandler_APIRoot(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "endpoints") {
		t.Error("API root missing endpoint listing")
	}
}
