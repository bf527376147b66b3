// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"context"
	"net/url"

	"github.com/aclements/go-gg/table"
)

// SearchResult identifies one chart matched by a search.
type SearchResult struct {
	// Title is the chart's human-readable title.
	Title string `json:"title"`

	// Slug is the chart's URL name. Pass it to Fetch to download
	// the chart's data.
	Slug string `json:"slug"`
}

// SearchResults is the list of charts matched by a search, in the
// order the server ranked them.
type SearchResults []SearchResult

// Table returns the results as a table with a "slug" and a "title"
// column, one row per chart.
func (rs SearchResults) Table() *table.Table {
	slugs := make([]string, len(rs))
	titles := make([]string, len(rs))
	for i, r := range rs {
		slugs[i] = r.Slug
		titles[i] = r.Title
	}
	return new(table.Builder).Add("slug", slugs).Add("title", titles).Done()
}

// SearchURL returns the URL that Search queries for the given
// keywords.
func (c *Client) SearchURL(keywords string) string {
	return c.baseURL() + "/api/search?q=" + url.QueryEscape(keywords)
}

// Search returns the charts matching keywords. Matching no charts is
// not an error; it returns an empty list.
func (c *Client) Search(ctx context.Context, keywords string) (SearchResults, error) {
	var body struct {
		Charts SearchResults `json:"charts"`
	}
	if err := c.getJSON(ctx, c.SearchURL(keywords), &body); err != nil {
		return nil, err
	}
	return body.Charts, nil
}

// Search searches with the Default client.
func Search(ctx context.Context, keywords string) (SearchResults, error) {
	return Default.Search(ctx, keywords)
}
