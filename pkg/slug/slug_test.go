// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/readalong/pkg/slug"
)

/*
TestFrom verifies slug derivation from book titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple_title", "Infinite Summer", "infinite-summer"},
		{"punctuation", "Gravity's Rainbow", "gravity-s-rainbow"},
		{"accents", "Les Misérables", "les-miserables"},
		{"multiple_spaces", "War  and   Peace", "war-and-peace"},
		{"leading_trailing", " 2666 ", "2666"},
		{"already_slug", "infinite-summer", "infinite-summer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.title))
		})
	}
}

/*
TestFrom_Deterministic verifies that the same title always yields the same
slug, since the slug is the book's immutable identity.
*/
func TestFrom_Deterministic(t *testing.T) {
	first := slug.From("A Suitable Boy")
	second := slug.From("A Suitable Boy")
	assert.Equal(t, first, second)
}
