package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/report"
)

func sampleSummary() report.Summary {
	goal := gridgraph.Position{Row: 0, Col: 2}
	found := astar.Result{
		Path:     []gridgraph.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, goal},
		Cost:     2,
		Expanded: 3,
		Source:   gridgraph.Position{},
	}
	ok := true

	e := report.NewEntry("path", goal, found, nil)
	e.Verified = &ok

	return report.Summary{
		Width:    3,
		Height:   1,
		Strategy: "independent",
		Entries: []report.Entry{
			e,
			report.NewEntry("shortest", goal, astar.Result{Expanded: 7}, astar.ErrNoPath),
		},
		ElapsedMs: 1.5,
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"":      report.FormatTable,
		"TABLE": report.FormatTable,
		"json":  report.FormatJSON,
		"yml":   report.FormatYAML,
		"yaml":  report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNewEntry(t *testing.T) {
	s := sampleSummary()
	found, missing := s.Entries[0], s.Entries[1]

	assert.True(t, found.Found)
	assert.Equal(t, 2, found.Steps)
	assert.Equal(t, "(0,0)", found.Source)
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(0,2)"}, found.Path)

	assert.False(t, missing.Found)
	assert.Equal(t, -1, missing.Steps)
	assert.Empty(t, missing.Error, "no path is not an error")
	assert.Equal(t, 7, missing.Expanded)

	failed := report.NewEntry("path", gridgraph.Position{}, astar.Result{}, errors.New("boom"))
	assert.Equal(t, "boom", failed.Error)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleSummary(), report.FormatJSON))

	var got struct {
		Width   int `json:"width"`
		Results []struct {
			Search   string `json:"search"`
			Found    bool   `json:"found"`
			Steps    int    `json:"steps"`
			Verified *bool  `json:"verified"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Width)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 2, got.Results[0].Steps)
	require.NotNil(t, got.Results[0].Verified)
	assert.Nil(t, got.Results[1].Verified)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleSummary(), report.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "independent", got["strategy"])
	results, ok := got["results"].([]any)
	require.True(t, ok)
	assert.Len(t, results, 2)
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleSummary(), report.FormatTable))
	out := buf.String()

	assert.Contains(t, strings.ToUpper(out), "STEPS")
	assert.Contains(t, out, "ok, verified")
	assert.Contains(t, out, "no path")
	assert.Contains(t, strings.ToUpper(out), "GRID 3X1")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, report.Summary{}, report.Format("csv"))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
