package api

import (
	"strconv"
	"strings"

	"textsim/internal/textutil"
)

// DefaultPrecision is the number of decimal places scores are rounded to.
const DefaultPrecision = 4

// FormatScore rounds score to precision decimal places and renders it with
// the shortest representation, keeping ".0" on whole numbers. The
// textutil.NotComputable sentinel renders as "-1".
func FormatScore(score float64, precision int) string {
	if score == textutil.NotComputable {
		return "-1"
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', precision, 64), 64)
	if err != nil {
		rounded = score
	}
	out := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
