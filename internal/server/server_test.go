package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/internal/server"
)

const sample = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

func init() {
	gin.SetMode(gin.TestMode)
}

type response struct {
	RequestID       string   `json:"requestId"`
	Search          string   `json:"search"`
	Found           bool     `json:"found"`
	Steps           int      `json:"steps"`
	Source          string   `json:"source"`
	Path            []string `json:"path"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	ExecutionTimeMs float64  `json:"executionTimeMs"`
	Error           string   `json:"error"`
}

func newServer(mut func(*server.Config)) *server.Server {
	cfg := server.DefaultConfig()
	if mut != nil {
		mut(&cfg)
	}

	return server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func post(t *testing.T, s *server.Server, route string, body any) (*httptest.ResponseRecorder, response) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, route, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())

	return rec, resp
}

func TestPath_Sample(t *testing.T) {
	rec, resp := post(t, newServer(nil), "/api/v1/path", map[string]any{"grid": sample})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, resp.Found)
	assert.Equal(t, 31, resp.Steps)
	assert.Len(t, resp.Path, 32)
	assert.Equal(t, "(0,0)", resp.Source)
	assert.Equal(t, 8, resp.Width)
	assert.Equal(t, 5, resp.Height)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, rec.Header().Get("X-Request-ID"))
	assert.GreaterOrEqual(t, resp.ExecutionTimeMs, 0.0)
}

func TestShortest_BothStrategies(t *testing.T) {
	s := newServer(nil)
	for _, strategy := range []string{"independent", "reverse"} {
		rec, resp := post(t, s, "/api/v1/shortest", map[string]any{"grid": sample, "strategy": strategy})
		require.Equal(t, http.StatusOK, rec.Code, strategy)
		assert.Equal(t, 29, resp.Steps, strategy)
		assert.Equal(t, "shortest", resp.Search)
	}
}

func TestPath_NoPathIsOK(t *testing.T) {
	rec, resp := post(t, newServer(nil), "/api/v1/path", map[string]any{"grid": "Sabc\nabcE\n"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Error)

	rec, resp = post(t, newServer(nil), "/api/v1/path", map[string]any{"grid": "Sabc\nabcE\n", "maxClimb": 25})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, resp.Steps)
}

func TestRequestID_Echoed(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"grid": sample})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/path", bytes.NewReader(raw))
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newServer(nil).Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestBadRequests(t *testing.T) {
	s := newServer(nil)
	cases := map[string]any{
		"MissingGrid":   map[string]any{},
		"MalformedGrid": map[string]any{"grid": "Sab\nabcE\n"},
		"BadStrategy":   map[string]any{"grid": sample, "strategy": "sideways"},
		"NegativeClimb": map[string]any{"grid": sample, "maxClimb": -1},
		"NegativeLimit": map[string]any{"grid": sample, "maxExpansions": -5},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec, resp := post(t, s, "/api/v1/shortest", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestBudgetExceeded(t *testing.T) {
	rec, resp := post(t, newServer(nil), "/api/v1/path", map[string]any{"grid": sample, "maxExpansions": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp.Error, "budget")
}

// flatGrid returns an n×n plain of 'a' whose E cannot be climbed onto, so a
// search has to exhaust every cell.
func flatGrid(n int) string {
	row := strings.Repeat("a", n) + "\n"
	grid := "S" + row[1:] + strings.Repeat(row, n-2) + row[:n-1] + "E\n"

	return grid
}

func TestBodyTooLarge(t *testing.T) {
	s := newServer(func(c *server.Config) { c.MaxBodyBytes = 64 })
	rec, resp := post(t, s, "/api/v1/path", map[string]any{"grid": flatGrid(30)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.NotEmpty(t, resp.RequestID)
	assert.Contains(t, resp.Error, "too large")

	rec, _ = post(t, s, "/api/v1/path", map[string]any{"grid": "SE"})
	assert.Equal(t, http.StatusOK, rec.Code, "small bodies still fit")
}

func TestTimeout(t *testing.T) {
	s := newServer(func(c *server.Config) { c.Timeout = time.Nanosecond })
	rec, resp := post(t, s, "/api/v1/path", map[string]any{"grid": flatGrid(300)})
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, resp.Error, "deadline")
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newServer(nil).Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
