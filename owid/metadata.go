// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"fmt"
	"strings"
)

// Metadata describes a chart and the indicators behind it. It mirrors
// the chart's companion .metadata.json document.
type Metadata struct {
	Chart          ChartMeta             `json:"chart"`
	Columns        map[string]ColumnMeta `json:"columns"`
	DateDownloaded string                `json:"dateDownloaded"`
}

// ChartMeta describes the chart as published.
type ChartMeta struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Note             string   `json:"note"`
	Citation         string   `json:"citation"`
	OriginalChartURL string   `json:"originalChartUrl"`
	Selection        []string `json:"selection"`
}

// ColumnMeta describes a single indicator column.
type ColumnMeta struct {
	TitleShort     string `json:"titleShort"`
	TitleLong      string `json:"titleLong"`
	Unit           string `json:"unit"`
	ShortUnit      string `json:"shortUnit"`
	Timespan       string `json:"timespan"`
	Type           string `json:"type"`
	OwidVariableID int    `json:"owidVariableId"`
	ShortName      string `json:"shortName"`
	LastUpdated    string `json:"lastUpdated"`
	NextUpdate     string `json:"nextUpdate"`
	CitationShort  string `json:"citationShort"`
	CitationLong   string `json:"citationLong"`
	FullMetadata   string `json:"fullMetadata"`
}

// Column returns the metadata for the named indicator column.
func (m *Metadata) Column(name string) (ColumnMeta, bool) {
	cm, ok := m.Columns[name]
	return cm, ok
}

// SourceInfo returns a human-readable description of where the
// dataset's data comes from: the chart's title and citation plus each
// indicator's unit, coverage, last update, and source. It returns ""
// if the dataset carries no metadata.
func (d *Dataset) SourceInfo() string {
	m := d.meta
	if m == nil {
		return ""
	}

	var b strings.Builder
	if m.Chart.Title != "" {
		fmt.Fprintf(&b, "%s\n", m.Chart.Title)
	} else if d.slug != "" {
		fmt.Fprintf(&b, "%s\n", d.slug)
	}
	if m.Chart.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n", m.Chart.Subtitle)
	}

	for _, col := range d.valueCols {
		cm, ok := m.Column(col)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", col)
		if cm.Unit != "" {
			fmt.Fprintf(&b, "  Unit: %s\n", cm.Unit)
		}
		if cm.Timespan != "" {
			fmt.Fprintf(&b, "  Timespan: %s\n", cm.Timespan)
		}
		if cm.LastUpdated != "" {
			fmt.Fprintf(&b, "  Last updated: %s\n", cm.LastUpdated)
		}
		if cm.CitationShort != "" {
			fmt.Fprintf(&b, "  Source: %s\n", cm.CitationShort)
		}
	}

	if m.Chart.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s\n", m.Chart.Note)
	}
	if m.Chart.Citation != "" {
		fmt.Fprintf(&b, "\nCitation: %s\n", m.Chart.Citation)
	}
	if m.Chart.OriginalChartURL != "" {
		fmt.Fprintf(&b, "Retrieved from: %s\n", m.Chart.OriginalChartURL)
	}
	if m.DateDownloaded != "" {
		fmt.Fprintf(&b, "Downloaded: %s\n", m.DateDownloaded)
	}
	return b.String()
}
