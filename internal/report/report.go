// Package report renders search outcomes as a table, JSON, or YAML.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// ErrUnknownFormat is returned for an output format other than table, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects the rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json, yaml or yml (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Entry is one search outcome.
type Entry struct {
	Search   string   `json:"search" yaml:"search"`
	Found    bool     `json:"found" yaml:"found"`
	Steps    int      `json:"steps" yaml:"steps"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty"`
	Goal     string   `json:"goal" yaml:"goal"`
	Expanded int      `json:"expanded" yaml:"expanded"`
	Path     []string `json:"path,omitempty" yaml:"path,omitempty"`
	Verified *bool    `json:"verified,omitempty" yaml:"verified,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary groups the entries produced for one grid.
type Summary struct {
	Width     int     `json:"width" yaml:"width"`
	Height    int     `json:"height" yaml:"height"`
	Strategy  string  `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Entries   []Entry `json:"results" yaml:"results"`
	ElapsedMs float64 `json:"elapsedMs" yaml:"elapsedMs"`
}

// NewEntry converts a search result into an Entry. An ErrNoPath outcome is
// a normal entry with Found == false; any other error is recorded verbatim.
func NewEntry(search string, goal gridgraph.Position, res astar.Result, err error) Entry {
	e := Entry{
		Search:   search,
		Goal:     goal.String(),
		Expanded: res.Expanded,
		Steps:    -1,
	}
	switch {
	case errors.Is(err, astar.ErrNoPath):
		return e
	case err != nil:
		e.Error = err.Error()
		return e
	}
	e.Found = true
	e.Steps = res.Steps()
	e.Source = res.Source.String()
	e.Path = make([]string, len(res.Path))
	for i, p := range res.Path {
		e.Path[i] = p.String()
	}

	return e
}

// Render writes s to w in the given format.
func Render(w io.Writer, s Summary, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		_, err := io.WriteString(w, renderTable(s))
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func renderTable(s Summary) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Search", "Source", "Goal", "Steps", "Expanded", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, e := range s.Entries {
		steps, source := "-", "-"
		if e.Found {
			steps = strconv.Itoa(e.Steps)
			source = e.Source
		}
		table.Append([]string{e.Search, source, e.Goal, steps, strconv.Itoa(e.Expanded), status(e)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Grid %dx%d", s.Width, s.Height),
		s.Strategy, "", "", "",
		fmt.Sprintf("%.3f ms", s.ElapsedMs),
	})
	table.Render()

	return buf.String()
}

func status(e Entry) string {
	var st string
	switch {
	case e.Error != "":
		return "error: " + e.Error
	case e.Found:
		st = "ok"
	default:
		st = "no path"
	}
	if e.Verified != nil {
		if *e.Verified {
			st += ", verified"
		} else {
			st += ", MISMATCH"
		}
	}

	return st
}
