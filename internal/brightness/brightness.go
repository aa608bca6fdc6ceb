// Package brightness holds the backlight level type, its hardware ceiling
// and the preset table used for smart stepping.
package brightness

import "math"

// Level is a raw backlight brightness as understood by the driver.
type Level uint32

// Max is the highest level the panel accepts. Anything above is clamped on write.
const Max Level = 60000

// MaxRepresentable is the saturation point for relative arithmetic.
const MaxRepresentable Level = math.MaxUint32

// Clamp limits l to [0, Max].
func Clamp(l Level) Level {
	if l > Max {
		return Max
	}
	return l
}

// SaturatingAdd returns l+delta, stopping at MaxRepresentable instead of wrapping.
func SaturatingAdd(l, delta Level) Level {
	if delta > MaxRepresentable-l {
		return MaxRepresentable
	}
	return l + delta
}

// SaturatingSub returns l-delta, stopping at zero instead of wrapping.
func SaturatingSub(l, delta Level) Level {
	if delta > l {
		return 0
	}
	return l - delta
}
