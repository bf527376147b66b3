// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// DataURL returns the CSV download URL for the chart named by slug.
func (c *Client) DataURL(slug string) string {
	return c.baseURL() + "/grapher/" + slug + ".csv?v=1&csvType=full&useColumnShortNames=false"
}

// MetadataURL returns the URL of the metadata document that
// accompanies the chart named by slug.
func (c *Client) MetadataURL(slug string) string {
	return c.baseURL() + "/grapher/" + slug + ".metadata.json?v=1&csvType=full&useColumnShortNames=false"
}

// Fetch downloads the chart named by slug and returns its data and
// metadata. The chart's CSV data and its companion metadata document
// are downloaded concurrently.
//
// The returned Dataset has one row per entity and year. Its table
// starts with the key columns "entity", "code", and "year" ([]int),
// followed by one []float64 column per chart indicator, named as in
// the chart. Charts with daily resolution have a "day" column of
// dates (Days) in place of "year". Empty cells become NaN.
func (c *Client) Fetch(ctx context.Context, slug string) (*Dataset, error) {
	var (
		raw  []byte
		meta Metadata
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := c.get(ctx, c.DataURL(slug))
		if err != nil {
			return err
		}
		defer body.Close()
		raw, err = io.ReadAll(body)
		return err
	})
	g.Go(func() error {
		return c.getJSON(ctx, c.MetadataURL(slug), &meta)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching chart %s: %w", slug, err)
	}

	d, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", slug, err)
	}
	d.slug = slug
	d.meta = &meta
	return d, nil
}

// Fetch downloads a chart with the Default client.
func Fetch(ctx context.Context, slug string) (*Dataset, error) {
	return Default.Fetch(ctx, slug)
}
