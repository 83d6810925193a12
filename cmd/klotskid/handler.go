package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/asig/klotski/internal/cache"
	"github.com/asig/klotski/internal/metrics"
	"github.com/asig/klotski/internal/puzzle"
	"github.com/asig/klotski/internal/search"
)

// ApiResponse wraps either response data or an error message with a
// "success" indicator boolean.
type ApiResponse struct {
	Success  bool        `json:"success"`
	Response interface{} `json:"response,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// HttpError wraps an error that occurred while processing an HTTP request
// with the HTTP status code that should be returned.
type HttpError struct {
	Status int
	Err    error
}

// HandleAPI takes an API handler function as input and turns it into an
// http.HandlerFunc by adding error handling.
func HandleAPI(inner func(rw http.ResponseWriter, req *http.Request) *HttpError) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		if err := inner(rw, req); err != nil {
			log.Printf("%v: %v", req.URL.Path, err.Err)
			rw.WriteHeader(err.Status)
			json.NewEncoder(rw).Encode(ApiResponse{
				Success: false,
				Message: err.Err.Error(),
			})
		}
	}
}

// Handler holds the dependencies shared by klotskid's HTTP endpoints.
type Handler struct {
	maxDepth int
	cache    *cache.Cache
}

// SolveRequest is the JSON body of a POST /v1/solve request: the puzzle and
// goal grids as newline-separated text, the same format the files passed to
// cmd/klotski's -puzzle/-goal flags use.
type SolveRequest struct {
	Puzzle string `json:"puzzle"`
	Goal   string `json:"goal"`
	Depth  int    `json:"depth,omitempty"`
}

// SolveResponse is the JSON body of a successful /v1/solve response.
type SolveResponse struct {
	Solved         bool `json:"solved"`
	Depth          int  `json:"depth"`
	StatesExplored int  `json:"states_explored"`
	Cached         bool `json:"cached"`
}

// Solve handles POST /v1/solve: parse the grids, check the cache, run the
// search on a miss, and store the outcome.
func (h *Handler) Solve(rw http.ResponseWriter, req *http.Request) *HttpError {
	metrics.InFlight.Inc()
	defer metrics.InFlight.Dec()

	var sr SolveRequest
	if err := json.NewDecoder(req.Body).Decode(&sr); err != nil {
		metrics.SolveRequests.WithLabelValues("error").Inc()
		return &HttpError{Status: http.StatusBadRequest, Err: fmt.Errorf("decoding request body: %w", err)}
	}

	depth := h.maxDepth
	if sr.Depth > 0 {
		depth = sr.Depth
	}

	p, err := puzzle.Load(sr.Puzzle, sr.Goal)
	if err != nil {
		metrics.SolveRequests.WithLabelValues("error").Inc()
		return &HttpError{Status: http.StatusBadRequest, Err: err}
	}

	key := p.Key(sr.Puzzle, sr.Goal)
	if h.cache != nil {
		if entry, ok, err := h.cache.Get(key); err == nil && ok {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			metrics.SolveRequests.WithLabelValues(outcomeLabel(entry.Solved)).Inc()
			return writeJSON(rw, SolveResponse{
				Solved:         entry.Solved,
				Depth:          entry.Depth,
				StatesExplored: entry.StatesExplored,
				Cached:         true,
			})
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result, err := search.Run(p.Engine, depth, nil)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SolveRequests.WithLabelValues("error").Inc()
		return &HttpError{Status: http.StatusInternalServerError, Err: err}
	}
	metrics.StatesExplored.Observe(float64(result.StatesExplored))
	metrics.SolveRequests.WithLabelValues(outcomeLabel(result.Solved)).Inc()

	if h.cache != nil {
		entry := cache.Entry{Solved: result.Solved, Depth: result.Depth, StatesExplored: result.StatesExplored}
		if err := h.cache.Put(key, entry); err != nil {
			log.Printf("cache put %q: %v", key, err)
		}
	}

	return writeJSON(rw, SolveResponse{
		Solved:         result.Solved,
		Depth:          result.Depth,
		StatesExplored: result.StatesExplored,
		Cached:         false,
	})
}

// Health handles GET /v1/health.
func (h *Handler) Health(rw http.ResponseWriter, req *http.Request) *HttpError {
	return writeJSON(rw, map[string]string{"status": "ok"})
}

func outcomeLabel(solved bool) string {
	if solved {
		return "solved"
	}
	return "unsolved"
}

func writeJSON(rw http.ResponseWriter, v interface{}) *HttpError {
	if err := json.NewEncoder(rw).Encode(ApiResponse{Success: true, Response: v}); err != nil {
		return &HttpError{Status: http.StatusInternalServerError, Err: err}
	}
	return nil
}
