// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/owidtools/go-owid/owid"
)

// LineOptions configures Line.
type LineOptions struct {
	// Entities restricts the chart to the named entities. If it is
	// empty, every entity in the dataset is drawn.
	Entities []string

	// Mean draws a single line of the mean value across entities
	// at each point in time, instead of one line per entity.
	Mean bool

	// Value names the value column to draw. It defaults to the
	// dataset's first value column.
	Value string

	// Title overrides the chart title from the dataset's metadata.
	Title string
}

// Line builds a line chart of a value column over time, one line per
// entity in OWID's house colors. Rows with no value are dropped, so
// entities with gaps in their coverage produce connected lines.
func Line(d *owid.Dataset, o LineOptions) (*gg.Plot, error) {
	value, err := valueColumn(d, o.Value)
	if err != nil {
		return nil, err
	}
	if len(o.Entities) > 0 {
		d = d.FilterEntities(o.Entities...)
	}
	data := table.Filter(d.Table(), func(v float64) bool {
		return !math.IsNaN(v)
	}, value)
	n := 0
	for _, gid := range data.Tables() {
		n += data.Table(gid).Len()
	}
	if n == 0 {
		return nil, fmt.Errorf("no rows to draw")
	}

	timeCol := d.TimeColumn()
	plot := gg.NewPlot(data)
	plot.SortBy(timeCol)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	if o.Mean {
		plot.Stat(ggstat.Agg(timeCol)(ggstat.AggMean(value)))
		plot.Add(gg.LayerLines{X: timeCol, Y: "mean " + value})
	} else {
		strokes := gg.NewOrdinalScale()
		strokes.Ranger(gg.NewColorRanger(Palette(1)))
		plot.SetScale("stroke", strokes)
		plot.Add(gg.LayerLines{X: timeCol, Y: value, Color: owid.ColEntity})
	}
	plot.Add(gg.Title(chartTitle(d, o.Title, value)))
	plot.Add(gg.AxisLabel("y", axisTitle(d, value)))
	return plot, nil
}
