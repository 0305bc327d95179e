package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kisanmitra/kisanmitra/internal/chat"
	"github.com/kisanmitra/kisanmitra/internal/gov"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"github.com/kisanmitra/kisanmitra/internal/news"
	"github.com/kisanmitra/kisanmitra/internal/repository"
	"github.com/kisanmitra/kisanmitra/internal/speech"
	"go.uber.org/zap"
)

type fakeBackend struct {
	onceText string
}

func (f *fakeBackend) StreamGenerate(context.Context, llm.StreamRequest) (<-chan llm.StreamChunk, error) {
	ch := make(chan llm.StreamChunk)
	close(ch)
	return ch, nil
}

func (f *fakeBackend) GenerateOnce(context.Context, llm.OnceRequest) (string, error) {
	return f.onceText, nil
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	backend := &fakeBackend{onceText: "- Wheat: ₹2400/q - MP (Up)"}
	logger := zap.NewNop()
	manager := chat.NewManager(backend, func() speech.Recognizer {
		return speech.Unsupported{}
	}, logger)

	return SetupRouter(
		manager,
		news.NewService(backend, logger),
		gov.NewService(repository.NewGovQueryRepository(db)),
		RouterConfig{AllowOrigins: []string{"*"}},
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health: status %d", w.Code)
	}
}

func TestLanguagesEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/languages", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("languages: status %d", w.Code)
	}
	var resp struct {
		Languages []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"languages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("languages: bad body: %v", err)
	}
	if len(resp.Languages) != 11 || resp.Languages[0].Code != "en" {
		t.Errorf("unexpected language set: %+v", resp.Languages)
	}
}

func TestStringsEndpointFallsBack(t *testing.T) {
	r := newTestServer(t)

	get := func(code string) string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/strings/"+code, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("strings/%s: status %d", code, w.Code)
		}
		return w.Body.String()
	}

	if get("zz") != get("en") {
		t.Error("unknown language codes should serve the English table")
	}
	if get("hi") == get("en") {
		t.Error("Hindi table should differ from English")
	}
}

func TestSpeechCommandEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/speech/command",
		strings.NewReader(`{"transcript":"open the dashboard","language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		Matched bool `json:"matched"`
		Command struct {
			Kind   string `json:"kind"`
			Target string `json:"target"`
		} `json:"command"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("speech command: bad body: %v", err)
	}
	if !resp.Matched || resp.Command.Kind != "navigate" || resp.Command.Target != "dashboard" {
		t.Errorf("unexpected command match: %+v", resp)
	}
}

func TestNewsRefreshEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/news/refresh",
		strings.NewReader(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("news refresh: status %d", w.Code)
	}
	var resp struct {
		Items []struct {
			Category string `json:"category"`
			Title    string `json:"title"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("news refresh: bad body: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Category != "market" {
		t.Errorf("unexpected news batch: %+v", resp.Items)
	}
}

func TestGovQuerySubmitAndList(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gov/queries",
		strings.NewReader(`{"name":"Ramesh","location":"Indore","query_type":"Complaint","message":"Water supply issue","language":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("gov submit: status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "जमा") {
		t.Errorf("expected the localized Hindi success message, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gov/queries", nil))
	var resp struct {
		Queries []struct {
			Name string `json:"name"`
		} `json:"queries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("gov list: bad body: %v", err)
	}
	if len(resp.Queries) != 1 || resp.Queries[0].Name != "Ramesh" {
		t.Errorf("unexpected query list: %+v", resp.Queries)
	}
}

func TestCORSHeaders(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/languages", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected CORS headers on preflight")
	}
}
