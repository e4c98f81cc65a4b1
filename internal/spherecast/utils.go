package spherecast

import (
	"math"
	"strings"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b Real) bool {
	return math.Abs(a-b) < Epsilon
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// center pads s with spaces on both sides to width w (extra space goes right).
func center(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
