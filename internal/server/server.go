// Package server hosts the engines behind a local development HTTP
// server: REST endpoints for the configurator state and a websocket
// session streaming camera poses and scene updates.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tuinmax/verandaplanner/pkg/assist"
	"github.com/tuinmax/verandaplanner/pkg/config"
	"github.com/tuinmax/verandaplanner/pkg/interpret"
	"github.com/tuinmax/verandaplanner/pkg/pricing"
	"github.com/tuinmax/verandaplanner/pkg/scene"
	"github.com/tuinmax/verandaplanner/pkg/validation"
)

// Server owns the single authoritative Configuration. Every change goes
// through apply, which replaces the value atomically and notifies the
// open websocket sessions.
type Server struct {
	settings Settings
	log      zerolog.Logger

	tree   *scene.Tree
	assist *assist.Client

	mu  sync.RWMutex
	cfg config.Configuration

	sessionsMu sync.Mutex
	sessions   map[*session]struct{}
}

// New creates a server for the given project directory. A missing
// veranda.yaml starts the session from the defaults.
func New(settings Settings, log zerolog.Logger) *Server {
	s := &Server{
		settings: settings,
		log:      log,
		tree:     scene.CatalogTree(),
		cfg:      config.Default(),
		sessions: make(map[*session]struct{}),
	}
	s.tree.Logger = log

	if cfg, err := config.LoadProject(settings.ProjectDir); err == nil {
		s.cfg = config.Sanitize(*cfg)
	} else {
		log.Info().Err(err).Str("dir", settings.ProjectDir).Msg("no project file, starting from defaults")
	}

	if settings.AssistURL != "" {
		s.assist = assist.NewClient(settings.AssistURL, settings.AssistKey)
		s.assist.Logger = log
	}
	return s
}

// Start launches the HTTP server and the project file watcher. It
// blocks until the listener fails.
func (s *Server) Start() error {
	stopWatch, err := s.watchProject()
	if err != nil {
		s.log.Warn().Err(err).Msg("project file watching disabled")
	} else {
		defer stopWatch()
	}

	addr := fmt.Sprintf(":%d", s.settings.Port)
	s.log.Info().Str("addr", addr).Str("project", s.settings.ProjectDir).Msg("veranda planner server starting")

	return http.ListenAndServe(addr, s.handler())
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/price", s.handlePrice)
	mux.HandleFunc("GET /api/config", s.handleConfigGet)
	mux.HandleFunc("POST /api/config", s.handleConfigPost)
	mux.HandleFunc("POST /api/interpret", s.handleInterpret)
	mux.HandleFunc("POST /api/camera/jump", s.handleCameraJump)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// current returns a copy of the authoritative configuration.
func (s *Server) current() config.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// apply replaces the configuration and pushes the derived scene and
// price to every open session.
func (s *Server) apply(cfg config.Configuration) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	for sess := range s.sessions {
		sess.notify(cfg)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Veranda Planner</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Veranda Planner</h1>
<p>Renderer not embedded. Run <code>npm run dev</code> in renderer/ for development.</p>
</div>
</body></html>`)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, scene.Resolve(s.current(), s.tree.Index()))
}

func (s *Server) handlePrice(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, pricing.Price(s.current()))
}

func (s *Server) handleConfigGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.current())
}

type configPatch struct {
	Config config.Configuration `json:"config"`
	Fields []string             `json:"fields"`
}

type configReply struct {
	Config config.Configuration `json:"config"`
	Report *validation.Report   `json:"report"`
}

func (s *Server) handleConfigPost(w http.ResponseWriter, r *http.Request) {
	var patch configPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, fmt.Sprintf("invalid patch: %v", err), http.StatusBadRequest)
		return
	}

	merged, report := config.Merge(s.current(), patch.Config, patch.Fields)
	s.apply(merged)

	s.log.Debug().Strs("fields", patch.Fields).Msg("configuration patched")
	writeJSON(w, configReply{Config: merged, Report: report})
}

type interpretRequest struct {
	Text string `json:"text"`
}

type interpretReply struct {
	Config  config.Configuration `json:"config"`
	Changes []string             `json:"changes"`
	Report  *validation.Report   `json:"report"`
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	prev := s.current()
	var res interpret.Result
	if s.assist != nil {
		var applied bool
		res, applied = s.assist.Interpret(r.Context(), req.Text, &prev)
		if !applied {
			http.Error(w, "superseded by a newer request", http.StatusConflict)
			return
		}
	} else {
		res = interpret.Interpret(req.Text, &prev)
	}

	merged, report := config.Merge(prev, res.Config, res.Changes)
	s.apply(merged)

	s.log.Debug().Str("text", req.Text).Strs("changes", res.Changes).Msg("text interpreted")
	writeJSON(w, interpretReply{Config: merged, Changes: res.Changes, Report: report})
}

type jumpRequest struct {
	Side config.Side `json:"side"`
}

func (s *Server) handleCameraJump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	s.sessionsMu.Lock()
	n := len(s.sessions)
	for sess := range s.sessions {
		sess.jump(req.Side)
	}
	s.sessionsMu.Unlock()

	writeJSON(w, map[string]any{"side": req.Side, "sessions": n})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
