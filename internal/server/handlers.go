package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/report"
)

// SearchRequest is the JSON body of both search routes. Zero values fall
// back to the server configuration.
type SearchRequest struct {
	Grid          string `json:"grid" binding:"required"`
	MaxClimb      *int   `json:"maxClimb,omitempty"`
	MaxExpansions *int   `json:"maxExpansions,omitempty"`
	Strategy      string `json:"strategy,omitempty"`
}

// SearchResponse wraps a report entry with request metadata.
type SearchResponse struct {
	RequestID string `json:"requestId"`
	report.Entry
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	ExecutionTimeMs float64 `json:"executionTimeMs"`
}

type searchFunc func(hm *gridgraph.HeightMap, opts []astar.Option) (astar.Result, error)

func (s *Server) handlePath(c *gin.Context) {
	s.serveSearch(c, "path", func(hm *gridgraph.HeightMap, opts []astar.Option) (astar.Result, error) {
		return astar.FindPath(hm, hm.Start(), hm.End(), opts...)
	})
}

func (s *Server) handleShortest(c *gin.Context) {
	s.serveSearch(c, "shortest", func(hm *gridgraph.HeightMap, opts []astar.Option) (astar.Result, error) {
		return astar.FindShortestPath(hm, hm.Candidates(), hm.End(), opts...)
	})
}

func (s *Server) serveSearch(c *gin.Context, name string, search searchFunc) {
	id := c.GetString(requestIDKey)
	if s.cfg.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.abort(c, status, id, err)
		return
	}
	hm, err := gridgraph.ParseString(req.Grid)
	if err != nil {
		s.abort(c, http.StatusBadRequest, id, err)
		return
	}
	opts, err := s.options(req)
	if err != nil {
		s.abort(c, http.StatusBadRequest, id, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Timeout)
	defer cancel()
	opts = append(opts, astar.WithContext(ctx))

	start := time.Now()
	res, err := search(hm, opts)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	s.log.Debug("Search finished",
		"requestId", id,
		"search", name,
		"width", hm.Width,
		"height", hm.Height,
		"expanded", res.Expanded,
		"error", err,
	)

	resp := SearchResponse{
		RequestID:       id,
		Entry:           report.NewEntry(name, hm.End(), res, err),
		Width:           hm.Width,
		Height:          hm.Height,
		ExecutionTimeMs: elapsed,
	}
	c.JSON(statusFor(err), resp)
}

// options layers the request overrides on top of the server configuration.
func (s *Server) options(req SearchRequest) ([]astar.Option, error) {
	climb := s.cfg.MaxClimb
	if req.MaxClimb != nil {
		climb = *req.MaxClimb
	}
	if climb < 0 {
		return nil, errors.New("maxClimb cannot be negative")
	}
	budget := s.cfg.MaxExpansions
	if req.MaxExpansions != nil {
		budget = *req.MaxExpansions
	}
	strategy := s.cfg.Strategy
	if req.Strategy != "" {
		var err error
		if strategy, err = astar.ParseStrategy(req.Strategy); err != nil {
			return nil, err
		}
	}

	return []astar.Option{
		astar.WithPolicy(gridgraph.ClimbPolicy{MaxClimb: climb}),
		astar.WithMaxExpansions(budget),
		astar.WithWorkers(max(s.cfg.Workers, 1)),
		astar.WithStrategy(strategy),
	}, nil
}

// statusFor maps engine outcomes to HTTP status codes. No path is a
// successful answer carried in the body.
func statusFor(err error) int {
	switch {
	case err == nil, errors.Is(err, astar.ErrNoPath):
		return http.StatusOK
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, astar.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, astar.ErrOptionViolation), errors.Is(err, astar.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abort(c *gin.Context, status int, id string, err error) {
	s.log.Warn("Bad request", "requestId", id, "error", err)
	c.AbortWithStatusJSON(status, gin.H{"requestId": id, "error": err.Error()})
}
