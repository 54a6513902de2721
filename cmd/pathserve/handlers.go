package main

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"pathbench/astar"
	"pathbench/bench"
	"pathbench/internal/graphio"
	"pathbench/internal/report"
	"pathbench/internal/synth"
)

// server holds the in-memory instance registry behind the HTTP API.
type server struct {
	logger zerolog.Logger

	mu        sync.RWMutex
	instances map[string]*graphio.Instance
}

func newServer(logger zerolog.Logger) *server {
	return &server{
		logger:    logger,
		instances: make(map[string]*graphio.Instance),
	}
}

func (s *server) add(inst *graphio.Instance) {
	s.mu.Lock()
	s.instances[inst.Name] = inst
	s.mu.Unlock()
}

func (s *server) get(name string) (*graphio.Instance, bool) {
	s.mu.RLock()
	inst, ok := s.instances[name]
	s.mu.RUnlock()
	return inst, ok
}

func (s *server) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.instances))
	for name := range s.instances {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// loadDir preloads every instance found in dir, skipping files that
// fail to load.
func (s *server) loadDir(dir string) error {
	paths, err := graphio.Discover(dir)
	if err != nil {
		return err
	}
	loaded := 0
	for _, path := range paths {
		inst, err := graphio.LoadFile(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("skipping graph")
			continue
		}
		s.add(inst)
		loaded++
	}
	s.logger.Info().Int("graphs", loaded).Str("dir", dir).Msg("preloaded instances")
	return nil
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	mux.HandleFunc("/graphs", corsMiddleware(s.graphsHandler))
	mux.HandleFunc("/generate", corsMiddleware(s.generateHandler))
	mux.HandleFunc("/bench", corsMiddleware(s.benchHandler))
	return mux
}

// corsMiddleware adds CORS headers to allow frontend requests.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

type graphSummary struct {
	Name     string `json:"name"`
	NumNodes int    `json:"numNodes"`
	NumEdges int    `json:"numEdges"`
	Start    int    `json:"start"`
	Goal     int    `json:"goal"`
}

func summary(inst *graphio.Instance) graphSummary {
	return graphSummary{
		Name:     inst.Name,
		NumNodes: inst.Graph.NumNodes(),
		NumEdges: inst.Graph.NumEdges(),
		Start:    inst.Graph.Start,
		Goal:     inst.Graph.Goal,
	}
}

// GET /health
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
		"graphs": len(s.names()),
	})
}

// GET /graphs lists the registry; POST /graphs uploads an instance in
// the JSON document format.
func (s *server) graphsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listGraphs(w)
	case http.MethodPost:
		s.uploadGraph(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *server) listGraphs(w http.ResponseWriter) {
	summaries := make([]graphSummary, 0)
	for _, name := range s.names() {
		if inst, ok := s.get(name); ok {
			summaries = append(summaries, summary(inst))
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"graphs": summaries})
}

func (s *server) uploadGraph(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	inst, err := graphio.UnmarshalInstance(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if inst.Name == "" {
		http.Error(w, "instance name is required", http.StatusBadRequest)
		return
	}

	s.add(inst)
	s.logger.Info().Str("graph", inst.Name).Int("nodes", inst.Graph.NumNodes()).Msg("instance uploaded")
	s.writeJSON(w, http.StatusCreated, summary(inst))
}

type generateRequest struct {
	Name      string        `json:"name"`
	Nodes     int           `json:"nodes"`
	Radius    float64       `json:"radius"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Seed      int64         `json:"seed"`
	Obstacles []orb.Polygon `json:"obstacles,omitempty"`
}

// POST /generate builds a random instance and registers it.
func (s *server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Nodes == 0 {
		req.Nodes = 500
	}
	if req.Radius == 0 {
		req.Radius = 0.1
	}
	var bounds orb.Bound
	if req.Width > 0 && req.Height > 0 {
		bounds = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{req.Width, req.Height}}
	}

	inst, err := synth.Generate(synth.Config{
		Name:      req.Name,
		Nodes:     req.Nodes,
		Radius:    req.Radius,
		Bounds:    bounds,
		Seed:      req.Seed,
		Obstacles: req.Obstacles,
		Logger:    &s.logger,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.add(inst)
	s.logger.Info().Str("graph", inst.Name).Int("nodes", inst.Graph.NumNodes()).Msg("instance generated")
	s.writeJSON(w, http.StatusCreated, summary(inst))
}

type benchRequest struct {
	Graph     string `json:"graph"`
	Runs      int    `json:"runs"`
	Heuristic string `json:"heuristic"`
	Start     *int   `json:"start,omitempty"`
	Goal      *int   `json:"goal,omitempty"`
}

// POST /bench runs the harness on a registered instance.
func (s *server) benchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req benchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inst, ok := s.get(req.Graph)
	if !ok {
		http.Error(w, fmt.Sprintf("graph %q not found", req.Graph), http.StatusNotFound)
		return
	}

	if req.Runs == 0 {
		req.Runs = bench.DefaultRuns
	}
	req.Heuristic = strings.ToLower(strings.TrimSpace(req.Heuristic))
	if req.Heuristic == "" {
		req.Heuristic = astar.HeuristicEuclidean
	}

	g := inst.Graph
	start, goal := g.Start, g.Goal
	if req.Start != nil {
		start = *req.Start
	}
	if req.Goal != nil {
		goal = *req.Goal
	}

	h, err := astar.HeuristicByName(req.Heuristic, g, goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	agg, err := bench.Run(g, start, goal, h, req.Runs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := report.New(inst.Name, g.NumNodes(), start, goal, req.Heuristic, agg)
	s.logger.Info().
		Str("graph", inst.Name).
		Int("runs", req.Runs).
		Str("heuristic", req.Heuristic).
		Float64("pathCost", rec.PathCost).
		Msg("benchmark complete")
	s.writeJSON(w, http.StatusOK, rec)
}
