// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package chart builds Google Chart image URLs for ranked leaderboard views.
//
// # Overview
//
// The API does not render images itself: it hands the frontend a ready-made
// horizontal bar chart URL for each leaderboard, with one bar per reader and
// the percentage printed at the bar's end.
package chart

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// baseURL is the Google Chart API endpoint for horizontal bar charts.
	baseURL = "https://chart.apis.google.com/chart"

	// chartType bhs = horizontal bar, stacked.
	chartType = "bhs"

	// chartSize is the rendered pixel size.
	chartSize = "400x300"

	// barColors are the primary/secondary bar fill colors.
	barColors = "4D89F9,C6D9FD"
)

// Bar is a single labeled value in a ranked bar chart.
type Bar struct {
	// Label is the axis label (a reader's display name).
	Label string
	// Value is the bar length (percentage complete).
	Value float64
}

// RankedBarURL renders the chart URL for an ordered series of bars.
//
// The axis labels run bottom-to-top in the Google Chart format, so they are
// emitted in reverse order to match the data series. An empty series yields
// an empty string; callers should omit the chart entirely.
func RankedBarURL(bars []Bar) string {
	if len(bars) == 0 {
		return ""
	}

	values := make([]string, 0, len(bars))
	labels := make([]string, 0, len(bars))

	for _, bar := range bars {
		values = append(values, fmt.Sprintf("%.1f", bar.Value))
	}

	// url.Values handles escaping; labels are joined raw.
	for i := len(bars) - 1; i >= 0; i-- {
		labels = append(labels, bars[i].Label)
	}

	query := url.Values{}
	query.Set("cht", chartType)
	query.Set("chs", chartSize)
	query.Set("chco", barColors)
	query.Set("chxt", "y")
	// Print each value at the end of its bar.
	query.Set("chm", "N *f0*%,000000,0,-1,11")
	query.Set("chd", "t:"+strings.Join(values, ","))
	query.Set("chxl", "0:|"+strings.Join(labels, "|")+"|")

	return baseURL + "?" + query.Encode()
}
