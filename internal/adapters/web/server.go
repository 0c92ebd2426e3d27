package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"nira/internal/application/commands"
	"nira/internal/domain"
	"nira/internal/logging"
	"nira/internal/ports"
)

//go:embed static/index.html
var indexHTML []byte

// Server serves the blueprint editor, its JSON API and live updates.
// It keeps the last known blueprint text in memory; every read endpoint
// answers from that copy.
type Server struct {
	settings Settings
	repo     ports.BlueprintRepository
	journal  ports.Journal
	logger   *log.Logger
	hub      *Hub

	// mu guards content. Reload broadcasts while holding it so a client
	// registering under the read lock never misses or reorders an update.
	mu      sync.RWMutex
	content string

	srvMu    sync.Mutex
	server   *http.Server
	listener net.Listener
}

// Option customizes server construction.
type Option func(*Server)

// WithJournal records browser saves in the revision journal.
func WithJournal(j ports.Journal) Option {
	return func(s *Server) {
		if j != nil {
			s.journal = j
		}
	}
}

// WithLogger overrides the default discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer prepares a server for the blueprint behind repo. Call Load
// before serving.
func NewServer(settings Settings, repo ports.BlueprintRepository, opts ...Option) *Server {
	s := &Server{
		settings: settings,
		repo:     repo,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.hub = NewHub(s.logger)
	return s
}

// Load reads the blueprint into memory. It fails if the file is missing.
func (s *Server) Load() error {
	if !s.repo.Exists() {
		return fmt.Errorf("no blueprint at %s (run 'nira init' first)", s.repo.Path())
	}
	content, err := s.repo.Read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
	return nil
}

// Content returns the in-memory blueprint text
func (s *Server) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Reload re-reads the file and broadcasts it when the text differs from the
// in-memory copy. It reports whether a broadcast happened.
func (s *Server) Reload() (bool, error) {
	content, err := s.repo.Read()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if content == s.content {
		return false, nil
	}
	s.content = content
	s.hub.Broadcast(content)
	s.logger.Info("blueprint changed on disk", "clients", s.hub.Len())
	return true, nil
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/blueprint", s.handleGetBlueprint)
	mux.HandleFunc("PUT /api/blueprint", s.handlePutBlueprint)
	mux.HandleFunc("GET /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/tasks", s.handleTasks)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// Start binds the TCP listener and begins serving HTTP traffic.
func (s *Server) Start(ctx context.Context) error {
	s.srvMu.Lock()
	defer s.srvMu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("server already started")
	}

	addr := s.settings.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}
	if ctx != nil {
		server.BaseContext = func(net.Listener) context.Context { return ctx }
	}

	s.listener = listener
	s.server = server

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve error", "err", err)
		}
	}()
	s.logger.Info("listening", "addr", listener.Addr().String())
	return nil
}

// Run starts the server, unless Start was already called, and the file
// watcher. It blocks until ctx is done, then shuts both down.
func (s *Server) Run(ctx context.Context) error {
	s.srvMu.Lock()
	started := s.listener != nil
	s.srvMu.Unlock()

	if !started {
		if err := s.Start(ctx); err != nil {
			return err
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- Watch(watchCtx, s.repo.Path(), DefaultDebounce, s.logger, func() {
			if _, err := s.Reload(); err != nil {
				s.logger.Warn("reload failed", "err", err)
			}
		})
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-watchErr:
		runErr = err
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := s.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown disconnects WebSocket clients, stops accepting connections and
// waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.srvMu.Lock()
	defer s.srvMu.Unlock()

	if s.server == nil {
		return nil
	}

	s.hub.Close()
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	s.listener = nil
	s.server = nil
	return nil
}

// Addr returns the bound TCP address once the server has started.
func (s *Server) Addr() string {
	s.srvMu.Lock()
	defer s.srvMu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// BaseURL returns the HTTP base URL for the running server.
func (s *Server) BaseURL() string {
	addr := s.Addr()
	if addr == "" {
		return s.settings.URL()
	}
	return "http://" + addr
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleGetBlueprint(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, s.Content())
}

type saveResponse struct {
	Changed bool                      `json:"changed"`
	Results []domain.ValidationResult `json:"results"`
}

func (s *Server) handlePutBlueprint(w http.ResponseWriter, r *http.Request) {
	reader := http.MaxBytesReader(w, r.Body, s.settings.MaxBodyBytes)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "payload exceeds limit"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unable to read body"})
		return
	}

	// held across the write so the watcher's reload of this save compares equal
	s.mu.Lock()
	result, err := commands.NewSaveCommand(s.repo, s.journal, string(body)).Execute(r.Context())
	if err == nil {
		s.content = string(body)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("save failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if result.Changed {
		s.logger.Info("blueprint saved from browser", "bytes", len(body))
	}

	writeJSON(w, http.StatusOK, saveResponse{
		Changed: result.Changed,
		Results: domain.Validate(result.Blueprint),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, _ *http.Request) {
	bp := domain.Parse(s.Content(), s.repo.Path())
	writeJSON(w, http.StatusOK, domain.Validate(bp))
}

type tasksResponse struct {
	Done   []domain.TaskItem     `json:"done"`
	Active []domain.NumberedTask `json:"active"`
}

func (s *Server) handleTasks(w http.ResponseWriter, _ *http.Request) {
	bp := domain.Parse(s.Content(), s.repo.Path())
	done := bp.Tasks.Done
	if done == nil {
		done = []domain.TaskItem{}
	}
	writeJSON(w, http.StatusOK, tasksResponse{Done: done, Active: bp.Tasks.Active()})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.hub.Serve(w, r, s.content)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
