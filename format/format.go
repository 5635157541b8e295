package format

import (
	"math"
	"strconv"
)

// Absent is shown for keys that were never measured, as opposed to keys
// measured at zero.
const Absent = "--"

// Float renders v rounded half away from zero to exactly decimals
// fractional digits; 0 decimals renders no decimal point. NaN renders as
// Absent.
func Float(v float64, decimals int) string {
	if math.IsNaN(v) {
		return Absent
	}
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}

// Value is Float for optional metrics: a nil pointer is an unmeasured key.
func Value(v *float64, decimals int) string {
	if v == nil {
		return Absent
	}
	return Float(*v, decimals)
}
