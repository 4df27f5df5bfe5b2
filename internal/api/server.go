package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/mitra/internal/refresh"
	"github.com/MikeSquared-Agency/mitra/internal/store"
)

// Refresher is the orchestrator as seen by the API.
type Refresher interface {
	TryStart(ctx context.Context) bool
	Scanning() bool
}

type Server struct {
	router     *chi.Mux
	port       int
	store      *store.Store
	refresher  Refresher
	modelLabel string
	logger     *slog.Logger
	http       *http.Server
}

func NewServer(port int, apiToken string, st *store.Store, ref Refresher, modelLabel string, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:     router,
		port:       port,
		store:      st,
		refresher:  ref,
		modelLabel: modelLabel,
		logger:     logger,
	}

	router.Get("/health", s.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1/mitra", func(r chi.Router) {
		r.Get("/status", s.status)
		r.Get("/videos", s.videos)
		r.With(BearerAuthMiddleware(apiToken)).Post("/refresh", s.refresh)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server starting", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusResponse struct {
	Agent      string     `json:"agent"`
	Videos     int        `json:"videos"`
	Scanning   bool       `json:"scanning"`
	LastUpdate *time.Time `json:"last_update"`
	Model      string     `json:"model"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Agent:    "mitra",
		Videos:   s.store.Len(),
		Scanning: s.refresher.Scanning(),
		Model:    s.modelLabel,
	}
	if t := s.store.LastUpdated(); !t.IsZero() {
		resp.LastUpdate = &t
	}
	writeJSON(w, http.StatusOK, resp)
}

type videoResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	DurationMinutes float64   `json:"duration_minutes"`
	PublishedAt     time.Time `json:"published_at"`
	TranscriptChars int       `json:"transcript_chars"`
}

func (s *Server) videos(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Entries()
	out := make([]videoResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, videoResponse{
			ID:              e.Item.ID,
			Title:           e.Item.Title,
			URL:             e.Item.URL,
			DurationMinutes: e.Item.DurationMinutes,
			PublishedAt:     e.Item.PublishedAt,
			TranscriptChars: len([]rune(e.Transcript)),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"videos": out, "count": len(out)})
}

// refresh starts a pass in the background. A pass already in progress
// answers 409 and the request is dropped.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	if !s.refresher.TryStart(context.Background()) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": refresh.ErrPassInProgress.Error()})
		return
	}
	s.logger.Info("manual refresh started")
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
