// Package display renders the player's status: a progress bar with
// elapsed and total time, and the dancing line that tracks loudness.
package display

import (
	"fmt"
	"math"
	"strings"
)

// BarWidth is the number of cells in the progress bar.
const BarWidth = 60

const (
	barFill   = "-"
	barBlank  = " "
	barEdge   = "|"
	beatMark  = "*"
	beatStart = "|"
)

// FormatTime formats a number of seconds as MM:SS. Fractions are
// truncated and negative values format as 00:00.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// Filled returns the number of bar cells covered after elapsed of total
// seconds, clamped to [0, width].
func Filled(elapsed, total float64, width int) int {
	if total <= 0 || elapsed <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Floor(float64(width) * elapsed / total))
	return min(n, width)
}

// Percent is elapsed/total as a percentage clamped to [0, 100].
func Percent(elapsed, total float64) float64 {
	if total <= 0 || elapsed <= 0 {
		return 0
	}
	return min(100*elapsed/total, 100)
}

// ProgressBar draws
//
//	|------      | 10.0% 00:06 / 01:00
//
// Elapsed time past the total fills the bar and no further.
func ProgressBar(elapsed, total float64, width int) string {
	filled := Filled(elapsed, total, width)
	blank := max(width-filled, 0)
	return fmt.Sprintf("%s%s%s%s %.1f%% %s / %s",
		barEdge, strings.Repeat(barFill, filled), strings.Repeat(barBlank, blank), barEdge,
		Percent(elapsed, total), FormatTime(min(elapsed, total)), FormatTime(total))
}

// VolumeLine draws the dancing line: a leading bar followed by one mark
// per hundredth of loudness.
func VolumeLine(loudness float64) string {
	if loudness < 0 || math.IsNaN(loudness) {
		loudness = 0
	}
	loudness = min(loudness, 1)
	return beatStart + strings.Repeat(beatMark, int(loudness*100))
}
