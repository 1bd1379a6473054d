package preview

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

	"github.com/gorilla/websocket"

	"github.com/trellis-ui/trellis/internal/config"
	"github.com/trellis-ui/trellis/pkg/errlog"
)

const testManifest = `
name: landing
root:
  tag: ul
  attrs: {class: list}
  components:
    - content: "<li>A</li>"
`

func testServer(t *testing.T, manifestBody string) (*Server, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	if err := os.WriteFile(path, []byte(manifestBody), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.Manifest = path
	cfg.Serve.Watch = false
	return New(cfg), cfg
}

func TestHandleIndex(t *testing.T) {
	s, _ := testServer(t, testManifest)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<ul class="list"><li>A</li></ul>`) {
		t.Errorf("rendered fragment missing from:\n%s", body)
	}
	if !strings.Contains(body, "<title>landing</title>") {
		t.Error("manifest name not used as page title")
	}
	if strings.Contains(body, "WebSocket") {
		t.Error("reload client injected with watch disabled")
	}
}

func TestReloadScriptInjectedWhenWatching(t *testing.T) {
	s, cfg := testServer(t, testManifest)
	cfg.Serve.Watch = true

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if !strings.Contains(rec.Body.String(), "WebSocket") {
		t.Error("reload client not injected")
	}
}

func TestHandleIndexBrokenManifest(t *testing.T) {
	s, _ := testServer(t, "root: [oops\n")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t, testManifest)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := testServer(t, testManifest)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("metrics status = %d", rec.Code)
	}
}

func TestErrorsEndpoint(t *testing.T) {
	s, _ := testServer(t, testManifest)
	s.errors.Record("attach", "orphaned <span> under shell")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/errors", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entries []errlog.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Source != "attach" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The connection registers asynchronously with the upgrade.
	deadline := time.Now().Add(time.Second)
	for rs.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if rs.ClientCount() != 1 {
		t.Fatal("client never registered")
	}

	rs.NotifyReload("app.yaml")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != ReloadTypeFull || msg.File != "app.yaml" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	os.WriteFile(path, []byte("a"), 0o644)

	fired := make(chan struct{}, 1)
	w := NewWatcher(path, 5*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// mtime resolution can be coarse; change size too.
	time.Sleep(20 * time.Millisecond)
	os.WriteFile(path, []byte("bb"), 0o644)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never fired")
	}
}
