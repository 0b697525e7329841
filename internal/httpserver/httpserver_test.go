package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"portfolio-chatbot/internal/chat"
	chatUC "portfolio-chatbot/internal/chat/usecase"
	"portfolio-chatbot/internal/metrics"
	"portfolio-chatbot/internal/middleware"
	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/internal/ratelimit"
	"portfolio-chatbot/internal/session"
	pkgLog "portfolio-chatbot/pkg/log"
)

const testPortfolioJSON = `{"name":"Ada Nguyen","role":"Backend Engineer","skills":[{"category":"Backend","items":["Go"]}]}`

type testServer struct {
	srv   *HTTPServer
	store *session.MemoryStore
	path  string
}

func newTestServer(t *testing.T, maxRequests int) testServer {
	t.Helper()

	l := pkgLog.NewNop()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(testPortfolioJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	ps := portfolio.New(l, path)
	if err := ps.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	store := session.NewMemoryStore(16)
	m := metrics.New()
	uc := chatUC.New(l, nil, store, nil, ps, m, chatUC.Config{})
	limiter := ratelimit.New(ratelimit.Config{Window: time.Minute, MaxRequests: maxRequests})

	srv, err := New(l, Config{
		Logger:      l,
		Port:        5000,
		Mode:        "test",
		Environment: "development",
		ChatUseCase: uc,
		Sessions:    store,
		Portfolio:   ps,
		Middleware:  middleware.New(l, limiter, m, []string{"*"}),
		Metrics:     m,
		Model:       "deepseek/deepseek-chat-v3.1:free",
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return testServer{srv: srv, store: store, path: path}
}

func (ts testServer) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	ts.srv.Handler().ServeHTTP(w, req)
	return w
}

func TestAskWithoutCredentialsReturnsGreeting(t *testing.T) {
	ts := newTestServer(t, 20)

	w := ts.do(http.MethodPost, "/ask", `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply     string `json:"reply"`
		SessionID string `json:"session_id"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "fallback" || !strings.HasPrefix(resp.Reply, chat.DefaultGreetingPrefix) || resp.SessionID == "" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAskEmptyMessageLeavesSessionsUntouched(t *testing.T) {
	ts := newTestServer(t, 20)

	w := ts.do(http.MethodPost, "/ask", `{"message":"   ","session_id":"s1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if st := ts.store.Stats(); st.Sessions != 0 {
		t.Errorf("no session should be created, got %+v", st)
	}
}

func TestAskRateLimited(t *testing.T) {
	ts := newTestServer(t, 3)

	for i := 0; i < 3; i++ {
		if w := ts.do(http.MethodPost, "/ask", `{"message":"skills"}`); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := ts.do(http.MethodPost, "/ask", `{"message":"skills"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	var body struct {
		RetryAfter int `json:"retry_after"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.RetryAfter <= 0 {
		t.Errorf("retry_after must be positive, got %d", body.RetryAfter)
	}

	// Non-chat routes are not limited.
	if w := ts.do(http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("health should not be rate limited, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 20)
	ts.do(http.MethodPost, "/ask", `{"message":"hi","session_id":"a"}`)

	w := ts.do(http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" || resp.APIConfigured || resp.Sessions != 1 || resp.Messages != 2 ||
		!resp.PortfolioLoaded || resp.Service != ServiceName || resp.Model == "" {
		t.Errorf("unexpected health %+v", resp)
	}
}

func TestPortfolioRoutes(t *testing.T) {
	ts := newTestServer(t, 20)

	w := ts.do(http.MethodGet, "/portfolio", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Ada Nguyen"`) {
		t.Fatalf("unexpected portfolio response %d: %s", w.Code, w.Body.String())
	}

	if err := os.WriteFile(ts.path, []byte(`{"name":"Ada Tran"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if w := ts.do(http.MethodPost, "/portfolio/reload", ""); w.Code != http.StatusOK {
		t.Fatalf("reload: expected 200, got %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/portfolio", ""); !strings.Contains(w.Body.String(), "Ada Tran") {
		t.Errorf("reload not applied: %s", w.Body.String())
	}

	if err := os.WriteFile(ts.path, []byte(`broken`), 0o644); err != nil {
		t.Fatal(err)
	}
	if w := ts.do(http.MethodPost, "/portfolio/reload", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("failed reload: expected 500, got %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/portfolio", ""); !strings.Contains(w.Body.String(), "Ada Tran") {
		t.Errorf("failed reload must keep the previous record: %s", w.Body.String())
	}
}

func TestSystemRoutes(t *testing.T) {
	ts := newTestServer(t, 20)

	for _, path := range []string{"/ready", "/live", "/metrics"} {
		if w := ts.do(http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
	if w := ts.do(http.MethodGet, "/sessions", ""); w.Code != http.StatusNotFound {
		t.Errorf("/sessions must be hidden by default, got %d", w.Code)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(pkgLog.NewNop(), Config{Mode: "test", Port: 5000}); err == nil {
		t.Errorf("expected an error without a chat use case")
	}
}
