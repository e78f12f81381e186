// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package progress implements the reading-progress core: the append-only entry
ledger, the per-reader snapshot that summarizes it, and the pure arithmetic
that turns a reported position into a percentage and a schedule verdict.

The arithmetic lives in free functions with no I/O so it can be tested
exhaustively; the Service wires it to the stores.
*/
package progress

import (
	"fmt"

	"github.com/taibuivan/readalong/internal/platform/apperr"
	"github.com/taibuivan/readalong/internal/platform/constants"
)

// Verdict classifies a reported position against the current deadline's
// position range.
type Verdict int

const (
	// VerdictBehind means the position is below the deadline's start bound.
	VerdictBehind Verdict = -1
	// VerdictOnTrack means the position falls inside the deadline's range,
	// both bounds included.
	VerdictOnTrack Verdict = 0
	// VerdictAhead means the position is past the deadline's end bound.
	VerdictAhead Verdict = 1
)

// Label returns the display status for a verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictBehind:
		return "Behind Schedule"
	case VerdictAhead:
		return "Ahead of Schedule"
	default:
		return "On Track"
	}
}

// StatusLabel maps an optional verdict to a display status.
//
// A nil verdict means no judgement could be made (no deadline was in effect
// when the entry was recorded, or no entry exists yet for a stored verdict);
// it renders as "On Track" rather than alarming the reader.
func StatusLabel(v *Verdict) string {
	if v == nil {
		return "On Track"
	}
	return v.Label()
}

// Percentage computes how far through the book a position is, as a value in
// hundredths of the total.
//
// The result is deliberately unclamped: a position past the final page yields
// more than 100, and the leaderboard's finished threshold relies on that. A
// zero total is a catalogue defect, not a reader mistake, and surfaces as a
// DATA_INTEGRITY error.
func Percentage(position, total int) (float64, error) {
	if total == 0 {
		return 0, apperr.DataIntegrity(
			"Book has a zero extent; progress cannot be computed",
			fmt.Errorf("percentage of position %d with zero total", position),
		)
	}
	return float64(position) / float64(total) * 100, nil
}

// IsFinished reports whether a percentage counts as having finished the book.
func IsFinished(percent float64) bool {
	return percent >= constants.FinishedPercent
}

// Classify judges a position against a closed position range.
//
// Both bounds are inclusive: reaching exactly the start of the range already
// counts as on track, and sitting exactly on the end does not yet count as
// ahead.
func Classify(position, start, end int) Verdict {
	switch {
	case position < start:
		return VerdictBehind
	case position > end:
		return VerdictAhead
	default:
		return VerdictOnTrack
	}
}
