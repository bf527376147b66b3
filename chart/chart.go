// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders Our World in Data datasets with go-gg.
//
// Each helper returns a *gg.Plot styled after the charts on
// ourworldindata.org. The caller can refine the plot with the usual
// gg methods and render it with WriteSVG.
package chart

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/owidtools/go-owid/owid"
)

// valueColumn resolves which value column of d to draw. An empty name
// selects the dataset's first value column.
func valueColumn(d *owid.Dataset, name string) (string, error) {
	cols := d.ValueColumns()
	if len(cols) == 0 {
		return "", fmt.Errorf("dataset has no value columns")
	}
	if name == "" {
		return cols[0], nil
	}
	if slice.Index(cols, name) < 0 {
		return "", fmt.Errorf("unknown value column %q; dataset has %s", name, strings.Join(cols, ", "))
	}
	return name, nil
}

// chartTitle returns override if it is non-empty, then the chart
// title from d's metadata, then fallback.
func chartTitle(d *owid.Dataset, override, fallback string) string {
	if override != "" {
		return override
	}
	if m := d.Meta(); m != nil && m.Chart.Title != "" {
		return m.Chart.Title
	}
	return fallback
}

// axisTitle returns an axis label for value column col, using the
// column's metadata title and unit when available.
func axisTitle(d *owid.Dataset, col string) string {
	m := d.Meta()
	if m == nil {
		return col
	}
	cm, ok := m.Column(col)
	if !ok {
		return col
	}
	title := cm.TitleShort
	if title == "" {
		title = col
	}
	if cm.Unit != "" {
		title += " (" + cm.Unit + ")"
	}
	return title
}
