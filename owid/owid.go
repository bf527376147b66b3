// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package owid is a client for Our World in Data's chart data API.
//
// Every chart published on ourworldindata.org exposes its underlying
// data as a CSV download and its description as a companion JSON
// document. This package finds charts by keyword, downloads a chart's
// data into a table (github.com/aclements/go-gg/table), and surfaces
// the publisher and citation metadata that comes with it.
//
// The zero value of Client is ready to use:
//
//	ds, err := owid.Fetch(ctx, "life-expectancy")
//
// Datasets have one row per entity (country, region, or other
// reporting unit) and year, with any number of numeric value columns.
package owid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the site queried by the zero Client.
const DefaultBaseURL = "https://ourworldindata.org"

// Client accesses the Our World in Data chart API. The zero value
// queries the public site with http.DefaultClient.
type Client struct {
	// BaseURL is the root URL of the site to query, without a
	// trailing slash. If it is "", DefaultBaseURL is used.
	BaseURL string

	// HTTPClient makes all requests. If it is nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// UserAgent, if non-"", is sent as the User-Agent header on
	// every request.
	UserAgent string

	// Progress, if non-nil, is called repeatedly as a response
	// body is read. done is the number of body bytes read so far
	// and total is the response's Content-Length, or -1 if the
	// length is unknown. Downloads may run concurrently, so
	// Progress must be safe to call from multiple goroutines.
	Progress func(url string, done, total int64)
}

// Default is the Client used by the package-level convenience
// functions.
var Default = new(Client)

// StatusError is the error returned when the server responds to a
// request with a non-success status.
type StatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s for %s", e.Status, e.URL)
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

// get performs a GET request and returns the response body. The
// caller must close the body. Non-2xx responses are returned as a
// *StatusError.
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, &StatusError{URL: url, Status: resp.Status, StatusCode: resp.StatusCode}
	}
	if c.Progress == nil {
		return resp.Body, nil
	}
	return &progressReader{body: resp.Body, url: url, total: resp.ContentLength, report: c.Progress}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// progressReader reports read progress on a response body.
type progressReader struct {
	body   io.ReadCloser
	url    string
	done   int64
	total  int64
	report func(url string, done, total int64)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if n > 0 {
		r.done += int64(n)
		r.report(r.url, r.done, r.total)
	}
	return n, err
}

func (r *progressReader) Close() error {
	return r.body.Close()
}
