// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// formatValue prints v in shortest decimal form without an exponent
// (1, 0.25273, -2.8).
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the matrix as aligned text, one line per row.
// Each column is as wide as its widest printed value; a narrower value is
// centered, with the odd space of padding going to the left, and every cell
// gets one extra leading space as separator:
//
//	  1  10
//	 100  2
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	for idx, v := range m.data {
		s := formatValue(v)
		cells[idx] = s
		if j := idx % m.c; len(s) > widths[j] {
			widths[j] = len(s)
		}
	}

	var b strings.Builder
	var i, j, pad, right int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			s := cells[i*m.c+j]
			pad = widths[j] - len(s)
			right = pad / 2
			b.WriteString(strings.Repeat(" ", pad-right+1))
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", right))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
