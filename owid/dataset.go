// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Dataset holds the data of a single chart. Its table has one row per
// entity and year (or day), keyed by the "entity", "code", and "year"
// or "day" columns, with one float64 column per chart indicator.
//
// A Dataset's table is never edited in place. Filters and Join return
// derived Datasets; Rename swaps a rebuilt table into the receiver.
type Dataset struct {
	slug      string
	meta      *Metadata
	tab       *table.Table
	timeCol   string
	valueCols []string
}

// Slug returns the chart slug this dataset was fetched from, or ""
// if it was parsed from a file.
func (d *Dataset) Slug() string {
	return d.slug
}

// Meta returns the chart metadata downloaded with the dataset, or
// nil if the dataset was parsed from a file.
func (d *Dataset) Meta() *Metadata {
	return d.meta
}

// Table returns the dataset's table.
func (d *Dataset) Table() *table.Table {
	return d.tab
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	return d.tab.Len()
}

// TimeColumn returns the name of the dataset's time column: "year"
// for yearly charts and "day" for daily charts.
func (d *Dataset) TimeColumn() string {
	return d.timeCol
}

// ValueColumns returns the names of the dataset's indicator columns
// in table order.
func (d *Dataset) ValueColumns() []string {
	return append([]string(nil), d.valueCols...)
}

// Entities returns the distinct entity names in the dataset, sorted.
func (d *Dataset) Entities() []string {
	es := slice.Nub(d.tab.MustColumn(ColEntity)).([]string)
	sort.Strings(es)
	return es
}

// YearRange returns the smallest and largest year in the dataset.
// For daily datasets these are calendar years. If the dataset is
// empty, both are 0.
func (d *Dataset) YearRange() (min, max int) {
	each := func(i, y int) {
		if i == 0 || y < min {
			min = y
		}
		if i == 0 || y > max {
			max = y
		}
	}
	switch col := d.tab.MustColumn(d.timeCol).(type) {
	case []int:
		for i, y := range col {
			each(i, y)
		}
	case Days:
		for i, t := range col {
			each(i, t.Year())
		}
	}
	return
}

// derived returns a copy of d backed by tab.
func (d *Dataset) derived(tab *table.Table) *Dataset {
	nd := *d
	nd.tab = tab
	return &nd
}

// rootTable extracts the single table from an ungrouped Grouping. An
// empty Grouping becomes an empty table.
func rootTable(g table.Grouping) *table.Table {
	if t := g.Table(table.RootGroupID); t != nil {
		return t
	}
	return new(table.Table)
}

// FilterEntities returns the subset of the dataset for the named
// entities. Names that appear in no row are simply absent from the
// result.
func (d *Dataset) FilterEntities(names ...string) *Dataset {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	g := table.Filter(d.tab, func(entity string) bool {
		return want[entity]
	}, ColEntity)
	return d.derived(rootTable(g))
}

// FilterYears returns the subset of the dataset whose year is in
// [min, max]. For daily datasets it keeps days whose calendar year is
// in the range.
func (d *Dataset) FilterYears(min, max int) *Dataset {
	var g table.Grouping
	if d.timeCol == ColYear {
		g = table.Filter(d.tab, func(year int) bool {
			return min <= year && year <= max
		}, ColYear)
	} else {
		g = table.Filter(d.tab, func(day time.Time) bool {
			y := day.Year()
			return min <= y && y <= max
		}, ColDay)
	}
	return d.derived(rootTable(g))
}

// Year returns the subset of the dataset for a single year. For
// daily datasets it returns every day in that calendar year.
func (d *Dataset) Year(year int) *Dataset {
	return d.FilterYears(year, year)
}

// Rename renames indicator columns. Each key of mapping names an
// existing value column and each value gives its new name. Key
// columns cannot be renamed or collided with.
func (d *Dataset) Rename(mapping map[string]string) error {
	olds := make([]string, 0, len(mapping))
	for old := range mapping {
		olds = append(olds, old)
	}
	sort.Strings(olds)

	tab, cols := d.tab, append([]string(nil), d.valueCols...)
	for _, old := range olds {
		name := mapping[old]
		i := slice.Index(cols, old)
		if i < 0 {
			return fmt.Errorf("no value column %q", old)
		}
		if name == old {
			continue
		}
		switch name {
		case "":
			return fmt.Errorf("empty new name for column %q", old)
		case ColEntity, ColCode, ColYear, ColDay:
			return fmt.Errorf("new name %q collides with a key column", name)
		}
		if tab.Column(name) != nil {
			return fmt.Errorf("column %q already exists", name)
		}
		tab = rootTable(table.Rename(tab, old, name))
		cols[i] = name
	}
	d.tab, d.valueCols = tab, cols
	return nil
}

// RenameValue renames the dataset's only indicator column to name.
// It is shorthand for Rename on single-indicator charts.
func (d *Dataset) RenameValue(name string) error {
	if len(d.valueCols) != 1 {
		return fmt.Errorf("dataset has %d value columns; use Rename", len(d.valueCols))
	}
	return d.Rename(map[string]string{d.valueCols[0]: name})
}

// joinKey is the hidden column Join matches rows on.
const joinKey = "[owid-join-key]"

// Join returns the inner join of d and other on entity and year (or
// day). The result keeps d's key columns and metadata, followed by
// d's indicator columns and then other's. The two datasets must have
// the same time resolution and no indicator column names in common.
func (d *Dataset) Join(other *Dataset) (*Dataset, error) {
	if d.timeCol != other.timeCol {
		return nil, fmt.Errorf("cannot join a %s dataset with a %s dataset", d.timeCol, other.timeCol)
	}
	for _, col := range other.valueCols {
		if slice.Index(d.valueCols, col) >= 0 {
			return nil, fmt.Errorf("column %q exists in both datasets", col)
		}
	}

	left := table.NewBuilder(d.tab).Add(joinKey, d.joinKeys()).Done()
	rb := new(table.Builder).Add(joinKey, other.joinKeys())
	for _, col := range other.valueCols {
		rb.Add(col, other.tab.MustColumn(col))
	}

	g := table.Join(left, joinKey, rb.Done(), joinKey)
	joined := rootTable(table.Remove(g, joinKey))

	nd := d.derived(joined)
	nd.valueCols = append(d.ValueColumns(), other.valueCols...)
	return nd, nil
}

// joinKeys builds one (entity, time) key string per row.
func (d *Dataset) joinKeys() []string {
	entities := d.tab.MustColumn(ColEntity).([]string)
	keys := make([]string, len(entities))
	if d.timeCol == ColYear {
		years := d.tab.MustColumn(ColYear).([]int)
		for i, e := range entities {
			keys[i] = e + "\x00" + strconv.Itoa(years[i])
		}
	} else {
		days := d.tab.MustColumn(ColDay).(Days)
		for i, e := range entities {
			keys[i] = e + "\x00" + days[i].Format("2006-01-02")
		}
	}
	return keys
}
