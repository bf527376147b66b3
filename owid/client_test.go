// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
)

const testMetadataJSON = `{
	"chart": {
		"title": "Life expectancy at birth",
		"subtitle": "Shown in years.",
		"citation": "UN WPP (2024)",
		"originalChartUrl": "https://ourworldindata.org/grapher/life-expectancy",
		"selection": ["World"]
	},
	"columns": {
		"Life expectancy": {
			"titleShort": "Life expectancy",
			"unit": "years",
			"shortUnit": "",
			"timespan": "1950-2023",
			"type": "Numeric",
			"owidVariableId": 953899,
			"lastUpdated": "2024-07-11",
			"citationShort": "UN, World Population Prospects (2024)"
		}
	},
	"dateDownloaded": "2024-10-01"
}`

// testServer serves a search index and a single chart named
// life-expectancy.
func testServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.FormValue("q") {
		case "life":
			fmt.Fprint(w, `{"charts": [
				{"title": "Life expectancy at birth", "slug": "life-expectancy"},
				{"title": "Healthy life expectancy", "slug": "healthy-life-expectancy"}
			]}`)
		default:
			fmt.Fprint(w, `{"charts": []}`)
		}
	})
	mux.HandleFunc("/grapher/life-expectancy.csv", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, lifeCSV)
	})
	mux.HandleFunc("/grapher/life-expectancy.metadata.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testMetadataJSON)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &Client{BaseURL: srv.URL}
}

func TestSearch(t *testing.T) {
	_, c := testServer(t)

	rs, err := c.Search(context.Background(), "life")
	if err != nil {
		t.Fatal("unexpected Search error: ", err)
	}
	want := SearchResults{
		{Title: "Life expectancy at birth", Slug: "life-expectancy"},
		{Title: "Healthy life expectancy", Slug: "healthy-life-expectancy"},
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("results should be %v; got %v", want, rs)
	}

	tab := rs.Table()
	if want := []string{"slug", "title"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("table columns should be %v; got %v", want, tab.Columns())
	}
	if want := []string{"life-expectancy", "healthy-life-expectancy"}; !reflect.DeepEqual(tab.Column("slug"), want) {
		t.Errorf("slugs should be %v; got %v", want, tab.Column("slug"))
	}
}

func TestSearchEmpty(t *testing.T) {
	_, c := testServer(t)

	rs, err := c.Search(context.Background(), "xyzzy")
	if err != nil {
		t.Fatal("empty search should not be an error; got ", err)
	}
	if len(rs) != 0 {
		t.Errorf("want no results; got %v", rs)
	}
}

func TestFetch(t *testing.T) {
	_, c := testServer(t)

	d, err := c.Fetch(context.Background(), "life-expectancy")
	if err != nil {
		t.Fatal("unexpected Fetch error: ", err)
	}
	if want := "life-expectancy"; d.Slug() != want {
		t.Errorf("slug should be %q; got %q", want, d.Slug())
	}
	if d.Len() != 5 {
		t.Errorf("want 5 rows; got %d", d.Len())
	}
	if d.Meta() == nil || d.Meta().Chart.Title != "Life expectancy at birth" {
		t.Errorf("metadata title should be set; got %+v", d.Meta())
	}
	cm, ok := d.Meta().Column("Life expectancy")
	if !ok || cm.Unit != "years" {
		t.Errorf("column metadata should have unit years; got %+v", cm)
	}
}

func TestFetchNotFound(t *testing.T) {
	_, c := testServer(t)

	_, err := c.Fetch(context.Background(), "no-such-chart")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *StatusError; got %v", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("want status 404; got %d", se.StatusCode)
	}
}

func TestProgress(t *testing.T) {
	_, c := testServer(t)

	var mu sync.Mutex
	var calls int
	var last int64
	c.Progress = func(url string, done, total int64) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if done > last {
			last = done
		}
	}
	if _, err := c.Fetch(context.Background(), "life-expectancy"); err != nil {
		t.Fatal("unexpected Fetch error: ", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls == 0 {
		t.Error("progress callback was never called")
	}
	if last == 0 {
		t.Error("progress callback never reported bytes read")
	}
}
