// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chart_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/readalong/pkg/chart"
)

/*
TestRankedBarURL verifies the data series and reversed label axis.
*/
func TestRankedBarURL(t *testing.T) {
	bars := []chart.Bar{
		{Label: "hal", Value: 87.5},
		{Label: "orin", Value: 62.0},
		{Label: "mario", Value: 31.2},
	}

	rendered := chart.RankedBarURL(bars)
	require.NotEmpty(t, rendered)

	parsed, err := url.Parse(rendered)
	require.NoError(t, err)

	params := parsed.Query()
	assert.Equal(t, "bhs", params.Get("cht"))
	assert.Equal(t, "t:87.5,62.0,31.2", params.Get("chd"))

	// Labels run bottom-to-top, so the series order is reversed.
	assert.Equal(t, "0:|mario|orin|hal|", params.Get("chxl"))
}

/*
TestRankedBarURL_Empty verifies that an empty series yields no URL.
*/
func TestRankedBarURL_Empty(t *testing.T) {
	assert.Empty(t, chart.RankedBarURL(nil))
	assert.Empty(t, chart.RankedBarURL([]chart.Bar{}))
}
