// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gonum/matrix/mat64"
	"golang.org/x/crypto/ssh/terminal"
)

// A StatusReporter shows the progress of concurrent downloads on one
// status line, with a combined percentage and an ETA once every
// download's size is known. On a non-terminal it stays quiet.
type StatusReporter struct {
	update chan<- statusUpdate
	done   chan bool
}

type statusUpdate struct {
	url         string
	done, total int64
}

func NewStatusReporter() *StatusReporter {
	if os.Getenv("TERM") == "dumb" || !terminal.IsTerminal(1) {
		return &StatusReporter{}
	}
	update := make(chan statusUpdate)
	sr := &StatusReporter{update: update}
	go sr.loop(update)
	return sr
}

// Download records that done of total bytes of url have been read. It
// has the signature of owid.Client's Progress hook and is safe to
// call from concurrent downloads.
func (sr *StatusReporter) Download(url string, done, total int64) {
	if sr.update != nil {
		sr.update <- statusUpdate{url, done, total}
	}
}

func (sr *StatusReporter) Stop() {
	if sr.update != nil {
		sr.done = make(chan bool)
		close(sr.update)
		<-sr.done
		sr.update = nil
	}
}

func (sr *StatusReporter) loop(updates <-chan statusUpdate) {
	const resetLine = "\r\x1b[2K"
	const wrapOff = "\x1b[?7l"
	const wrapOn = "\x1b[?7h"

	tick := time.NewTicker(time.Second / 4)
	defer tick.Stop()

	var end time.Time
	t0 := time.Now()

	files := make(map[string]*statusUpdate)
	var order []string
	var times, progress []float64
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				fmt.Print(resetLine)
				close(sr.done)
				return
			}
			if files[update.url] == nil {
				order = append(order, update.url)
			}
			files[update.url] = &update

			// Estimate the finish time from the combined
			// fraction done, once every size is known.
			var done, total int64
			for _, f := range files {
				done += f.done
				if f.total <= 0 {
					total = 0
					break
				}
				total += f.total
			}
			if total > 0 {
				now := float64(time.Now().Sub(t0))
				times = append(times, now)
				progress = append(progress, float64(done)/float64(total))
				a, b := progressFit(times, progress)
				// The intercept of a + b*x with 1 is the
				// ending time.
				if b == 0 {
					end = time.Time{}
				} else {
					end = t0.Add(time.Duration((1 - a) / b))
				}
			}

		case <-tick.C:
		}

		var parts []string
		var done, total int64
		known := true
		for _, url := range order {
			f := files[url]
			parts = append(parts, urlBase(url))
			done += f.done
			if f.total <= 0 {
				known = false
			} else {
				total += f.total
			}
		}
		msg := "fetching " + strings.Join(parts, " + ")
		if known && total > 0 {
			msg += fmt.Sprintf(": %d%%", done*100/total)
		} else {
			msg += ": " + formatBytes(done)
		}

		eta := "unknown"
		if !end.IsZero() {
			etaDur := end.Sub(time.Now())
			// Trim off sub-second precision.
			etaDur -= etaDur % time.Second
			if etaDur <= 0 {
				eta = "0s"
			} else {
				eta = etaDur.String()
			}
		}
		fmt.Printf("%s%s%s, ETA %s%s", resetLine, wrapOff, msg, eta, wrapOn)
	}
}

// progressFit fits progress = a + b*time by least squares, weighting
// recent samples more heavily so stalls and speed changes show up in
// the ETA quickly.
func progressFit(times, progress []float64) (a, b float64) {
	const halfLife = float64(10 * time.Second)
	now := times[len(times)-1]

	// Accumulate the normal equations XᵀWX Β = XᵀWy for the model
	// matrix X = [1 t] and diagonal weights W.
	var lhs [4]float64
	var rhs [2]float64
	for i, t := range times {
		w := math.Exp(-(now - t) / halfLife)
		lhs[0] += w
		lhs[1] += w * t
		lhs[3] += w * t * t
		rhs[0] += w * progress[i]
		rhs[1] += w * t * progress[i]
	}
	lhs[2] = lhs[1]

	vals := make([]float64, 2)
	B := mat64.NewVector(2, vals)
	err := B.SolveVec(mat64.NewDense(2, 2, lhs[:]), mat64.NewVector(2, rhs[:]))
	if err != nil {
		// Singular until there are two distinct sample times.
		return 0, 0
	}
	return vals[0], vals[1]
}

func urlBase(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return path.Base(url)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0f kB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
