// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package worldgeo

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/paulmach/orb"
)

// Columns of the table returned by World.Table.
const (
	ColCode      = "code"
	ColName      = "name"
	ColPath      = "path"
	ColLongitude = "longitude"
	ColLatitude  = "latitude"
)

// Table flattens the world's boundaries into a gg table with one row
// per outline vertex. Each polygon's exterior ring gets a distinct
// ColPath value, so grouping the table by ColPath recovers the
// individual outlines. Rings appear in decreasing order of enclosed
// area; painting them in row order keeps countries that sit inside
// another country visible. Interior rings are dropped, since the
// countries that fill them paint over them anyway.
func (w *World) Table() *table.Table {
	type ringRef struct {
		region *Region
		path   string
		area   float64
		ring   orb.Ring
	}
	var rings []ringRef
	n := 0
	for i := range w.Regions {
		r := &w.Regions[i]
		for j, poly := range r.Geometry {
			if len(poly) == 0 {
				continue
			}
			ring := poly[0]
			rings = append(rings, ringRef{r, fmt.Sprintf("%s/%d", r.Code, j), ringArea(ring), ring})
			n += len(ring)
		}
	}
	sort.Slice(rings, func(i, j int) bool {
		return rings[i].area > rings[j].area
	})

	codes := make([]string, 0, n)
	names := make([]string, 0, n)
	paths := make([]string, 0, n)
	lons := make([]float64, 0, n)
	lats := make([]float64, 0, n)
	for _, r := range rings {
		for _, pt := range r.ring {
			codes = append(codes, r.region.Code)
			names = append(names, r.region.Name)
			paths = append(paths, r.path)
			lons = append(lons, pt.Lon())
			lats = append(lats, pt.Lat())
		}
	}
	return new(table.Builder).
		Add(ColCode, codes).
		Add(ColName, names).
		Add(ColPath, paths).
		Add(ColLongitude, lons).
		Add(ColLatitude, lats).
		Done()
}

// ringArea returns the area enclosed by a closed ring, in squared
// degrees, by the shoelace formula.
func ringArea(r orb.Ring) float64 {
	var sum float64
	for i := 1; i < len(r); i++ {
		sum += r[i-1].Lon()*r[i].Lat() - r[i].Lon()*r[i-1].Lat()
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
