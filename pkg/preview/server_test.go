package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSiteDir builds a small site directory for serving tests.
func newSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "index.html", "<html><body><h1>Home</h1></body></html>")
	writeFile(t, dir, "app.css", "body { color: red }")
	writeFile(t, dir, filepath.Join("about", "index.html"), "<html><body>About</body></html>")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", name, err)
	}
}

func newTestServer(t *testing.T, root string, opts ...Option) *Server {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	s, err := New(root, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewRejectsBadRoot(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := New(file); err == nil {
		t.Error("expected error for non-directory root")
	}
}

func TestServeIndex(t *testing.T) {
	s := newTestServer(t, newSiteDir(t), WithWatch(false))

	rr := get(t, s.Handler(), "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "<h1>Home</h1>") {
		t.Errorf("GET / body = %q, want index content", rr.Body.String())
	}
}

func TestServeAsset(t *testing.T) {
	s := newTestServer(t, newSiteDir(t))

	rr := get(t, s.Handler(), "/app.css")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /app.css status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "body { color: red }" {
		t.Errorf("GET /app.css body = %q", got)
	}
	if strings.Contains(rr.Body.String(), "_weft/reload") {
		t.Error("non-HTML response should not get the reload script")
	}
}

func TestServeDirectoryIndex(t *testing.T) {
	s := newTestServer(t, newSiteDir(t), WithWatch(false))

	for _, p := range []string{"/about", "/about/", "/about/index.html"} {
		rr := get(t, s.Handler(), p)
		if rr.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", p, rr.Code, http.StatusOK)
			continue
		}
		if !strings.Contains(rr.Body.String(), "About") {
			t.Errorf("GET %s body = %q, want about page", p, rr.Body.String())
		}
	}
}

func TestServeUnknownPath(t *testing.T) {
	s := newTestServer(t, newSiteDir(t))

	rr := get(t, s.Handler(), "/nope.html")
	if rr.Code != http.StatusNotFound {
		t.Errorf("GET /nope.html status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestReloadScriptInjection(t *testing.T) {
	dir := newSiteDir(t)

	watching := newTestServer(t, dir, WithWatch(true))
	rr := get(t, watching.Handler(), "/")
	body := rr.Body.String()
	if !strings.Contains(body, ReloadPath) {
		t.Error("watch mode should inject the reload script")
	}
	if !strings.Contains(body, "</body></html>") {
		t.Errorf("script should be injected before the closing body tag: %q", body)
	}

	static := newTestServer(t, dir, WithWatch(false))
	rr = get(t, static.Handler(), "/")
	if strings.Contains(rr.Body.String(), ReloadPath) {
		t.Error("reload script should not be injected when watch is off")
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, newSiteDir(t))

	rr := get(t, s.Handler(), "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "ok" {
		t.Errorf("GET /healthz body = %q, want %q", got, "ok")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, newSiteDir(t))

	// Generate some traffic first
	get(t, s.Handler(), "/")
	get(t, s.Handler(), "/healthz")

	rr := get(t, s.Handler(), "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"weft_preview_requests_total",
		"weft_preview_request_duration_seconds",
		"weft_preview_reload_clients",
		"weft_preview_reloads_total",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("metrics output missing %s", metric)
		}
	}
}

func TestStartStopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, newSiteDir(t), WithAddr("127.0.0.1:0"), WithWatch(false))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	// Wait for the listener to bind, then stop.
	deadline := time.After(2 * time.Second)
	for s.Addr() == "127.0.0.1:0" {
		select {
		case <-deadline:
			t.Fatal("server did not bind in time")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after context cancel")
	}
}
