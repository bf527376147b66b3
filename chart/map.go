// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/owidtools/go-owid/owid"
	"github.com/owidtools/go-owid/worldgeo"
)

// MapOptions configures Map.
type MapOptions struct {
	// Year selects the year to map. Zero selects the most recent
	// year with data. In a daily dataset, each country shows its
	// latest observation in the selected year.
	Year int

	// Value names the value column to map. It defaults to the
	// dataset's first value column.
	Value string

	// Palette maps values, normalized to [0, 1] over the mapped
	// countries, to fill colors. It defaults to DefaultGradient(1).
	Palette palette.Continuous

	// NoData is the fill for countries without a value. It
	// defaults to a light gray.
	NoData color.Color

	// Title overrides the chart title from the dataset's metadata.
	Title string
}

// Map builds a world choropleth of a value column, matching the
// dataset to w's country outlines by ISO 3166-1 alpha-3 code. Rows
// whose code matches no outline, such as OWID's regional aggregates,
// are left off the map and do not influence the color ramp.
func Map(d *owid.Dataset, w *worldgeo.World, o MapOptions) (*gg.Plot, error) {
	value, err := valueColumn(d, o.Value)
	if err != nil {
		return nil, err
	}
	byCode, year, err := mapValues(d, value, o.Year)
	if err != nil {
		return nil, err
	}

	pal := o.Palette
	if pal == nil {
		pal = DefaultGradient(1)
	}
	noData := o.NoData
	if noData == nil {
		noData = color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
	}

	var vals []float64
	for code, v := range byCode {
		if w.Region(code) != nil {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("no codes in common between the dataset and the map")
	}
	min, max := stats.Bounds(vals)
	norm := scale.Linear{Min: min, Max: max}

	wt := w.Table()
	codes := wt.MustColumn(worldgeo.ColCode).([]string)
	fill := make([]color.Color, len(codes))
	for i, code := range codes {
		v, ok := byCode[code]
		switch {
		case !ok:
			fill[i] = noData
		case min == max:
			fill[i] = pal.Map(0.5)
		default:
			fill[i] = pal.Map(norm.Map(v))
		}
	}
	data := table.NewBuilder(wt).Add("fill", fill).Done()

	plot := gg.NewPlot(data)
	plot.GroupBy(worldgeo.ColPath)
	plot.Add(gg.LayerPaths{
		X:    worldgeo.ColLongitude,
		Y:    worldgeo.ColLatitude,
		Fill: "fill",
	})
	plot.Add(gg.Title(fmt.Sprintf("%s (%d)", chartTitle(d, o.Title, value), year)))
	return plot, nil
}

// mapValues selects one value of col per country code for the map
// year. It returns the values and the year actually selected.
func mapValues(d *owid.Dataset, col string, year int) (map[string]float64, int, error) {
	tab := d.Table()
	codes := tab.MustColumn(owid.ColCode).([]string)
	vals := tab.MustColumn(col).([]float64)

	byCode := make(map[string]float64)
	switch times := tab.MustColumn(d.TimeColumn()).(type) {
	case []int:
		if year == 0 {
			found := false
			for i, v := range vals {
				if codes[i] == "" || math.IsNaN(v) {
					continue
				}
				if !found || times[i] > year {
					year, found = times[i], true
				}
			}
			if !found {
				return nil, 0, fmt.Errorf("dataset has no mappable values")
			}
		}
		for i, v := range vals {
			if times[i] == year && codes[i] != "" && !math.IsNaN(v) {
				byCode[codes[i]] = v
			}
		}

	case owid.Days:
		best := make(map[string]time.Time)
		var latest time.Time
		for i, v := range vals {
			if codes[i] == "" || math.IsNaN(v) {
				continue
			}
			if year != 0 && times[i].Year() != year {
				continue
			}
			if t, ok := best[codes[i]]; !ok || times[i].After(t) {
				best[codes[i]] = times[i]
				byCode[codes[i]] = v
			}
			if times[i].After(latest) {
				latest = times[i]
			}
		}
		if year == 0 {
			year = latest.Year()
		}
	}
	if len(byCode) == 0 {
		return nil, 0, fmt.Errorf("no values to map in %d", year)
	}
	return byCode, year, nil
}
