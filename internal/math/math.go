package math

import (
	"strconv"
)

// Format formats a float with a fixed precision of two decimals.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
