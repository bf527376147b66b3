// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package worldgeo provides country boundary polygons for choropleth
// maps.
//
// Boundaries come from a GeoJSON feature collection keyed by ISO
// 3166-1 alpha-3 code, such as the world.geo.json project's simplified
// country outlines.
package worldgeo

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultURL is the country outline file served by the world.geo.json
// project.
const DefaultURL = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"

// A Region is one country's boundary.
type Region struct {
	// Name is the country's English name.
	Name string

	// Code is the country's ISO 3166-1 alpha-3 code.
	Code string

	// Geometry is the country's outline. Countries with islands or
	// exclaves have more than one polygon.
	Geometry orb.MultiPolygon
}

// A World is a set of country boundaries, as parsed by Fetch or
// Parse.
type World struct {
	// Regions lists the countries in the order they appear in the
	// source file.
	Regions []Region

	byCode map[string]int
}

// Region returns the region with the given ISO 3166-1 alpha-3 code,
// or nil if the world has no such region.
func (w *World) Region(code string) *Region {
	i, ok := w.byCode[code]
	if !ok {
		return nil
	}
	return &w.Regions[i]
}

// Fetch downloads and parses a world boundary file. If client is nil,
// it uses http.DefaultClient. If url is "", it uses DefaultURL.
func Fetch(ctx context.Context, client *http.Client, url string) (*World, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("server returned %s for %s", resp.Status, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return w, nil
}

// Parse parses a GeoJSON feature collection of country boundaries.
// Each feature's ID must be an ISO 3166-1 alpha-3 code. Features
// without one, such as the "-99" placeholder some sources use for
// disputed territories, are dropped.
func Parse(data []byte) (*World, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	w := &World{byCode: make(map[string]int)}
	for _, f := range fc.Features {
		code, _ := f.ID.(string)
		if len(code) != 3 || code == "-99" {
			continue
		}
		var geom orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			geom = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			geom = g
		default:
			continue
		}
		if len(geom) == 0 {
			continue
		}
		w.byCode[code] = len(w.Regions)
		w.Regions = append(w.Regions, Region{
			Name:     f.Properties.MustString("name", code),
			Code:     code,
			Geometry: geom,
		})
	}
	if len(w.Regions) == 0 {
		return nil, fmt.Errorf("no usable regions in boundary file")
	}
	return w, nil
}
