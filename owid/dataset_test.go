// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"reflect"
	"strings"
	"testing"
)

func TestEntities(t *testing.T) {
	d := mustParse(t, lifeCSV)
	if want := []string{"Afghanistan", "France", "World"}; !reflect.DeepEqual(d.Entities(), want) {
		t.Errorf("entities should be %v; got %v", want, d.Entities())
	}
}

func TestYearRange(t *testing.T) {
	d := mustParse(t, lifeCSV)
	if min, max := d.YearRange(); min != 1950 || max != 1951 {
		t.Errorf("year range should be [1950, 1951]; got [%d, %d]", min, max)
	}

	d = mustParse(t, casesCSV)
	if min, max := d.YearRange(); min != 2020 || max != 2020 {
		t.Errorf("year range should be [2020, 2020]; got [%d, %d]", min, max)
	}
}

func TestFilterEntities(t *testing.T) {
	d := mustParse(t, lifeCSV)
	f := d.FilterEntities("France", "Atlantis")
	if want := []string{"France"}; !reflect.DeepEqual(f.Entities(), want) {
		t.Errorf("entities should be %v; got %v", want, f.Entities())
	}
	if f.Len() != 2 {
		t.Errorf("want 2 rows; got %d", f.Len())
	}
	// The receiver is unchanged.
	if d.Len() != 5 {
		t.Errorf("original should still have 5 rows; got %d", d.Len())
	}
}

func TestFilterYears(t *testing.T) {
	d := mustParse(t, lifeCSV)
	f := d.Year(1950)
	if f.Len() != 3 {
		t.Errorf("want 3 rows for 1950; got %d", f.Len())
	}
	if f := d.FilterYears(1900, 1910); f.Len() != 0 {
		t.Errorf("want 0 rows for 1900-1910; got %d", f.Len())
	}

	// Daily data filters by calendar year.
	d = mustParse(t, casesCSV)
	if f := d.Year(2020); f.Len() != 2 {
		t.Errorf("want 2 rows for 2020; got %d", f.Len())
	}
	if f := d.Year(2021); f.Len() != 0 {
		t.Errorf("want 0 rows for 2021; got %d", f.Len())
	}
}

func TestRename(t *testing.T) {
	d := mustParse(t, lifeCSV)
	if err := d.Rename(map[string]string{"Life expectancy": "life_exp"}); err != nil {
		t.Fatal("unexpected Rename error: ", err)
	}
	if want := []string{"life_exp"}; !reflect.DeepEqual(d.ValueColumns(), want) {
		t.Errorf("value columns should be %v; got %v", want, d.ValueColumns())
	}
	if want := []string{"entity", "code", "year", "life_exp"}; !reflect.DeepEqual(d.Table().Columns(), want) {
		t.Errorf("columns should be %v; got %v", want, d.Table().Columns())
	}
	if d.Table().Column("Life expectancy") != nil {
		t.Error("old column name should be gone")
	}
}

func TestRenameValue(t *testing.T) {
	d := mustParse(t, lifeCSV)
	if err := d.RenameValue("le"); err != nil {
		t.Fatal("unexpected RenameValue error: ", err)
	}
	if want := []string{"le"}; !reflect.DeepEqual(d.ValueColumns(), want) {
		t.Errorf("value columns should be %v; got %v", want, d.ValueColumns())
	}

	two := mustParse(t, "Entity,Code,Year,a,b\nFrance,FRA,1950,1,2\n")
	if err := two.RenameValue("x"); err == nil {
		t.Error("RenameValue on a two-column dataset should fail")
	}
}

func TestRenameErrors(t *testing.T) {
	try := func(mapping map[string]string) error {
		t.Helper()
		return mustParse(t, lifeCSV).Rename(mapping)
	}
	if err := try(map[string]string{"nope": "x"}); err == nil {
		t.Error("renaming an unknown column should fail")
	}
	if err := try(map[string]string{"Life expectancy": "entity"}); err == nil {
		t.Error("renaming onto a key column should fail")
	}
	if err := try(map[string]string{"Life expectancy": ""}); err == nil {
		t.Error("renaming to an empty name should fail")
	}
	if err := try(map[string]string{"entity": "x"}); err == nil {
		t.Error("renaming a key column should fail")
	}
}

func TestJoin(t *testing.T) {
	le := mustParse(t, lifeCSV)
	pop := mustParse(t, `Entity,Code,Year,Population
Afghanistan,AFG,1950,7480464
France,FRA,1950,41879920
France,FRA,1952,42300000
`)

	j, err := le.Join(pop)
	if err != nil {
		t.Fatal("unexpected Join error: ", err)
	}
	if want := []string{"entity", "code", "year", "Life expectancy", "Population"}; !reflect.DeepEqual(j.Table().Columns(), want) {
		t.Errorf("columns should be %v; got %v", want, j.Table().Columns())
	}
	// Only (Afghanistan, 1950) and (France, 1950) appear in both.
	if j.Len() != 2 {
		t.Fatalf("want 2 joined rows; got %d", j.Len())
	}

	// Values stay aligned with their (entity, year) keys.
	entities := j.Table().MustColumn("entity").([]string)
	les := j.Table().MustColumn("Life expectancy").([]float64)
	pops := j.Table().MustColumn("Population").([]float64)
	got := make(map[string][2]float64)
	for i, e := range entities {
		got[e] = [2]float64{les[i], pops[i]}
	}
	want := map[string][2]float64{
		"Afghanistan": {27.7, 7480464},
		"France":      {66.5, 41879920},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("joined values should be %v; got %v", want, got)
	}
}

func TestJoinErrors(t *testing.T) {
	le := mustParse(t, lifeCSV)
	if _, err := le.Join(mustParse(t, casesCSV)); err == nil {
		t.Error("joining yearly and daily datasets should fail")
	}
	if _, err := le.Join(mustParse(t, lifeCSV)); err == nil {
		t.Error("joining datasets sharing a value column should fail")
	}
}

func TestSourceInfo(t *testing.T) {
	d := mustParse(t, lifeCSV)
	if got := d.SourceInfo(); got != "" {
		t.Errorf("dataset without metadata should have empty source info; got %q", got)
	}

	d.slug = "life-expectancy"
	d.meta = &Metadata{
		Chart: ChartMeta{
			Title:            "Life expectancy at birth",
			Subtitle:         "Shown in years.",
			Citation:         "UN WPP (2024)",
			OriginalChartURL: "https://ourworldindata.org/grapher/life-expectancy",
		},
		Columns: map[string]ColumnMeta{
			"Life expectancy": {
				Unit:          "years",
				Timespan:      "1950-2023",
				LastUpdated:   "2024-07-11",
				CitationShort: "UN, World Population Prospects (2024)",
			},
		},
		DateDownloaded: "2024-10-01",
	}

	info := d.SourceInfo()
	for _, want := range []string{
		"Life expectancy at birth",
		"Shown in years.",
		"Unit: years",
		"Timespan: 1950-2023",
		"Last updated: 2024-07-11",
		"Source: UN, World Population Prospects (2024)",
		"Citation: UN WPP (2024)",
		"Retrieved from: https://ourworldindata.org/grapher/life-expectancy",
		"Downloaded: 2024-10-01",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("source info should contain %q; got:\n%s", want, info)
		}
	}
}
