// SPDX-License-Identifier: MIT

package matrix

import "math"

// RoundingScale is the fixed-point grid every computed value snaps to:
// 10^5, i.e. five decimal places.
const RoundingScale = 100_000.0

// RoundPrecision is the number of decimal places kept by Round.
const RoundPrecision = 5

// Round snaps x to five decimal places: round(x*1e5)/1e5, ties away from zero.
// Every arithmetic and special operation applies it once per produced value,
// after full accumulation, so equal inputs always compare equal bit-for-bit.
// NaN and ±Inf pass through unchanged.
func Round(x float64) float64 {
	return math.Round(x*RoundingScale) / RoundingScale
}
