// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package leaderboard ranks a book's readers by snapshot percentage and serves
the results through a TTL cache.

Ranked views are recomputed from snapshots at most once per cache period.
The cache is never invalidated by writes: a fresh submission becomes visible
only when the cached result expires. That staleness is an accepted trade for
keeping read-heavy leaderboard traffic off the primary database.
*/
package leaderboard

import (
	"strings"

	"github.com/taibuivan/readalong/pkg/chart"
)

// RankedReader is one row of a ranked view.
//
// The raw reader identity is an email address and never leaves the server;
// only the display name derived from it is serialized.
type RankedReader struct {
	Reader  string  `json:"-"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// DisplayName derives the public display name from a reader identity: the
// part of the email address before the "@".
func DisplayName(reader string) string {
	if at := strings.Index(reader, "@"); at >= 0 {
		return reader[:at]
	}
	return reader
}

// Board is a fully assembled ranked view, ready for caching and serving.
type Board struct {
	Variant  string         `json:"variant"`
	Readers  []RankedReader `json:"readers"`
	ChartURL string         `json:"chart_url,omitempty"`
}

// newBoard assembles a board and renders its bar chart.
func newBoard(variant string, readers []RankedReader) *Board {
	bars := make([]chart.Bar, 0, len(readers))
	for _, r := range readers {
		bars = append(bars, chart.Bar{Label: r.Name, Value: r.Percent})
	}

	return &Board{
		Variant:  variant,
		Readers:  readers,
		ChartURL: chart.RankedBarURL(bars),
	}
}
