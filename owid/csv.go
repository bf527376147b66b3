// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owid

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-gg/table"
)

// Key column names in a Dataset's table.
const (
	ColEntity = "entity"
	ColCode   = "code"
	ColYear   = "year"
	ColDay    = "day"
)

// Days is a slice of dates. It implements sort.Interface so daily
// datasets can be sorted and plotted in time order.
type Days []time.Time

func (s Days) Len() int           { return len(s) }
func (s Days) Less(i, j int) bool { return s[i].Before(s[j]) }
func (s Days) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// ParseCSV reads a chart CSV download from r and reshapes it into a
// Dataset. The download's first columns must be Entity, Code, and
// Year (or Day, for daily charts); every remaining column is a
// numeric indicator column. Empty cells become NaN.
//
// ParseCSV accepts both a fresh download and the output of WriteCSV,
// so chart data can be saved to a file and reloaded later. A Dataset
// parsed this way carries no metadata; its SourceInfo is empty.
func ParseCSV(r io.Reader) (*Dataset, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV")
	}
	header, rows := rows[0], rows[1:]
	if len(header) < 4 || header[0] != "Entity" || header[1] != "Code" {
		return nil, fmt.Errorf("unexpected CSV header %q; want Entity, Code, Year or Day, and at least one value column", header)
	}
	var timeCol string
	switch header[2] {
	case "Year":
		timeCol = ColYear
	case "Day":
		timeCol = ColDay
	default:
		return nil, fmt.Errorf("unexpected time column %q; want Year or Day", header[2])
	}
	valueCols := append([]string(nil), header[3:]...)
	for _, col := range valueCols {
		switch col {
		case ColEntity, ColCode, ColYear, ColDay:
			return nil, fmt.Errorf("value column %q collides with a key column", col)
		}
	}

	n := len(rows)
	entities := make([]string, n)
	codes := make([]string, n)
	var years []int
	var days Days
	if timeCol == ColYear {
		years = make([]int, n)
	} else {
		days = make(Days, n)
	}
	nan := math.NaN()
	values := make([][]float64, len(valueCols))
	for j := range values {
		col := make([]float64, n)
		for i := range col {
			col[i] = nan
		}
		values[j] = col
	}

	for i, row := range rows {
		entities[i] = row[0]
		codes[i] = row[1]
		if timeCol == ColYear {
			y, err := strconv.Atoi(row[2])
			if err != nil {
				return nil, fmt.Errorf("row %d: malformed year %q", i+2, row[2])
			}
			years[i] = y
		} else {
			d, err := time.Parse("2006-01-02", row[2])
			if err != nil {
				return nil, fmt.Errorf("row %d: malformed day %q", i+2, row[2])
			}
			days[i] = d
		}
		for j, v := range row[3:] {
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: malformed value %q in column %q", i+2, v, valueCols[j])
			}
			values[j][i] = f
		}
	}

	b := new(table.Builder).Add(ColEntity, entities).Add(ColCode, codes)
	if timeCol == ColYear {
		b.Add(ColYear, years)
	} else {
		b.Add(ColDay, days)
	}
	for j, col := range valueCols {
		b.Add(col, values[j])
	}
	return &Dataset{tab: b.Done(), timeCol: timeCol, valueCols: valueCols}, nil
}

// WriteCSV writes the dataset to w in the chart download format that
// ParseCSV reads. NaN values are written as empty cells.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Entity", "Code", ""}
	if d.timeCol == ColYear {
		header[2] = "Year"
	} else {
		header[2] = "Day"
	}
	header = append(header, d.valueCols...)
	if err := cw.Write(header); err != nil {
		return err
	}

	entities := d.tab.MustColumn(ColEntity).([]string)
	codes := d.tab.MustColumn(ColCode).([]string)
	var years []int
	var days Days
	if d.timeCol == ColYear {
		years = d.tab.MustColumn(ColYear).([]int)
	} else {
		days = d.tab.MustColumn(ColDay).(Days)
	}
	values := make([][]float64, len(d.valueCols))
	for j, col := range d.valueCols {
		values[j] = d.tab.MustColumn(col).([]float64)
	}

	row := make([]string, len(header))
	for i := 0; i < d.tab.Len(); i++ {
		row[0] = entities[i]
		row[1] = codes[i]
		if d.timeCol == ColYear {
			row[2] = strconv.Itoa(years[i])
		} else {
			row[2] = days[i].Format("2006-01-02")
		}
		for j := range values {
			if v := values[j][i]; math.IsNaN(v) {
				row[3+j] = ""
			} else {
				row[3+j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
