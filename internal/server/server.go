// Package server exposes the calculators over a small JSON HTTP API. All
// endpoints are stateless passes through the core packages; the only side
// effect is recording finished calculations in the history store.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/sparkfolk/channelcast/internal/comparison"
	"github.com/sparkfolk/channelcast/internal/growth"
	"github.com/sparkfolk/channelcast/internal/history"
	"github.com/sparkfolk/channelcast/internal/migration"
	"github.com/sparkfolk/channelcast/internal/models"
	"github.com/sparkfolk/channelcast/internal/niche"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Server routes API requests to the calculators. The history store is
// optional; a nil store disables recording.
type Server struct {
	router  *mux.Router
	history *history.Store
}

// New creates a Server with all routes registered.
func New(store *history.Store) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		history: store,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/growth/report", s.handleGrowthReport).Methods("POST")
	api.HandleFunc("/migration/plan", s.handleMigrationPlan).Methods("POST")
	api.HandleFunc("/comparison", s.handleComparison).Methods("GET")
	api.HandleFunc("/niches", s.handleNiches).Methods("GET")
	api.HandleFunc("/history/recent", s.handleHistoryRecent).Methods("GET")

	s.router.HandleFunc("/healthz", s.handleHealthz).Methods("GET")
}

// GrowthRequest is the body of POST /api/v1/growth/report. Niche is an ID
// from the reference table; unknown IDs degrade to the general profile.
type GrowthRequest struct {
	Followers             int     `json:"followers"`
	PostsPerWeek          float64 `json:"posts_per_week"`
	EngagementRatePercent float64 `json:"engagement_rate_percent"`
	Niche                 string  `json:"niche"`
}

func (s *Server) handleGrowthReport(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	profile, known := niche.Lookup(req.Niche)
	if !known && req.Niche != "" {
		logrus.Debugf("Unknown niche %q, using %s profile", req.Niche, profile.ID)
	}

	in := models.GrowthInputs{
		Followers:             req.Followers,
		PostsPerWeek:          req.PostsPerWeek,
		EngagementRatePercent: req.EngagementRatePercent,
		Niche:                 profile,
	}
	if err := in.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := growth.Analyze(in)

	summary := fmt.Sprintf("growth report: %d followers, %.1f posts/week, %.1f%% engagement, %s niche",
		req.Followers, req.PostsPerWeek, req.EngagementRatePercent, profile.ID)
	s.record(history.KindGrowth, summary, report)

	logrus.Infof("Growth report computed: %d followers, %s niche", req.Followers, profile.ID)
	respond(w, http.StatusOK, report)
}

// MigrationRequest is the body of POST /api/v1/migration/plan.
type MigrationRequest struct {
	SourceSubscribers int     `json:"source_subscribers"`
	OverlapPercent    float64 `json:"overlap_percent"`
	PostFrequency     string  `json:"post_frequency"`
}

func (s *Server) handleMigrationPlan(w http.ResponseWriter, r *http.Request) {
	var req MigrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	freq, err := models.ParsePostFrequency(req.PostFrequency)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := models.MigrationInputs{
		SourceSubscribers: req.SourceSubscribers,
		OverlapPercent:    req.OverlapPercent,
		PostFrequency:     freq,
	}
	if err := in.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := migration.Plan(in)

	summary := fmt.Sprintf("migration plan: %d subscribers, %.0f%% overlap, %s posting",
		req.SourceSubscribers, req.OverlapPercent, freq)
	s.record(history.KindMigration, summary, plan)

	logrus.Infof("Migration plan computed: %d subscribers, mode %s", req.SourceSubscribers, plan.Mode)
	respond(w, http.StatusOK, plan)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("use_case")
	uc, known := comparison.ParseUseCase(raw)
	if !known && raw != "" {
		logrus.Debugf("Unknown use case %q, serving %s view", raw, uc)
	}

	view := comparison.Compare(uc)

	s.record(history.KindComparison, fmt.Sprintf("comparison view: %s lens", view.UseCase), view)
	respond(w, http.StatusOK, view)
}

// NichesResponse wraps the reference niche table.
type NichesResponse struct {
	Niches []niche.Profile `json:"niches"`
}

func (s *Server) handleNiches(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, NichesResponse{Niches: niche.All()})
}

// RecentResponse wraps the most recent history records, newest first.
type RecentResponse struct {
	Records []history.Record `json:"records"`
}

func (s *Server) handleHistoryRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records := []history.Record{}
	if s.history != nil {
		records = s.history.Recent(limit)
	}
	respond(w, http.StatusOK, RecentResponse{Records: records})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// record appends to the history store, logging rather than failing the
// request when the store rejects a record.
func (s *Server) record(kind history.Kind, summary string, result any) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Append(kind, summary, result); err != nil {
		logrus.Warnf("Failed to record %s calculation: %v", kind, err)
	}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, ErrorResponse{Error: msg})
}
