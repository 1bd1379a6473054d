package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trellis-ui/trellis/internal/config"
	"github.com/trellis-ui/trellis/pkg/component"
	"github.com/trellis-ui/trellis/pkg/errlog"
	"github.com/trellis-ui/trellis/pkg/manifest"
	"github.com/trellis-ui/trellis/pkg/render"
)

// Option configures the preview server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithObserver adds a tree observer applied to every materialization.
func WithObserver(obs component.Observer) Option {
	return func(s *Server) {
		s.observers = append(s.observers, obs)
	}
}

// WithComponentRegistry sets the constructor registry used for typed
// definitions in the manifest.
func WithComponentRegistry(reg *component.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// Server renders a component manifest per request and pushes reload
// messages to connected browsers when the manifest changes on disk.
type Server struct {
	cfg       *config.Config
	logger    *slog.Logger
	reload    *ReloadServer
	renderer  *render.Renderer
	errors    *errlog.Log
	registry  *component.Registry
	observers []component.Observer
}

// New creates a preview server for the given project configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
		reload: NewReloadServer(),
		renderer: render.New(render.Config{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		}),
		errors:   errlog.New(errlog.NewMemStore(), 0),
		registry: component.DefaultRegistry,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.observers = append(s.observers, errlog.TreeObserver(s.errors))
	return s
}

// Router builds the HTTP surface: the rendered page, the reload socket,
// the recorded engine conditions, Prometheus metrics, and a health probe.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.reload.HandleWebSocket)
	r.Get("/errors", s.handleErrors)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// ListenAndServe runs the server until the context is cancelled. When
// watching is enabled, manifest changes broadcast a reload.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.cfg.Serve.Watch {
		watcher := NewWatcher(s.cfg.ManifestPath(), s.cfg.Serve.Interval(), s.onManifestChange)
		go watcher.Run(ctx)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Serve.Host, s.cfg.Serve.Port)
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("preview server listening", "addr", addr, "manifest", s.cfg.ManifestPath())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("preview: serve: %w", err)
	}
	return nil
}

// onManifestChange validates the manifest and tells browsers to reload,
// or paints the parse error on their overlay.
func (s *Server) onManifestChange() {
	path := s.cfg.ManifestPath()
	if _, err := manifest.Load(path); err != nil {
		s.logger.Warn("manifest broken", "path", path, "error", err)
		s.reload.NotifyError(err.Error())
		return
	}
	s.logger.Debug("manifest changed", "path", path)
	s.reload.ClearError()
	s.reload.NotifyReload(path)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderPage()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// renderPage materializes the manifest, serializes the resulting node
// tree, and tears the tree back down. Every request sees the manifest as
// it currently is on disk.
func (s *Server) renderPage() (string, error) {
	m, err := manifest.Load(s.cfg.ManifestPath())
	if err != nil {
		return "", err
	}

	opts := []component.TreeOption{
		component.WithLogger(s.logger),
		component.WithRegistry(s.registry),
	}
	for _, obs := range s.observers {
		opts = append(opts, component.WithObserver(obs))
	}

	tree := m.Materialize(nil, opts...)
	defer tree.Destroy()
	tree.Startup()

	root := tree.Root()
	if root == nil {
		return "", fmt.Errorf("preview: manifest %q produced no root instance", m.Name)
	}

	body, err := s.renderer.ToString(root.Node())
	if err != nil {
		return "", fmt.Errorf("preview: render: %w", err)
	}
	return s.page(m.Name, body), nil
}

// page wraps the rendered fragment in a minimal document, with the reload
// client injected when watching.
func (s *Server) page(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	if s.cfg.Serve.Watch {
		b.WriteString(reloadScript)
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	entries, err := s.errors.Entries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// reloadScript is the live-reload client: reconnecting socket, full page
// reload on change, console surface for manifest errors.
const reloadScript = `
<script>
(function () {
  function connect() {
    var ws = new WebSocket("ws://" + location.host + "/ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") location.reload();
      else if (msg.type === "error") console.error("manifest error:", msg.error);
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>`
