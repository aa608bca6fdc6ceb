package brightness

import "slices"

// Direction selects which neighbour Step moves to.
type Direction int

const (
	Down Direction = iota
	Up
)

// String returns the direction name used in logs.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// steps is strictly ascending, starts at 0 and ends at Max.
// Spacing widens with brightness: 1 and 100 near zero, 5000 near the ceiling.
var steps = [...]Level{
	0, 1, 100,
	200, 300, 400,
	600, 800, 1000, 1200, 1400, 1600, 1800, 2000,
	3000, 4000, 5000, 6000,
	8000, 10000, 12000, 14000, 16000, 18000, 20000,
	25000, 30000, 35000, 40000, 45000, 50000, 55000, 60000,
}

// Steps returns a copy of the preset table.
func Steps() []Level {
	return slices.Clone(steps[:])
}

// Neighbours returns the preset below and the preset above l.
// An exact preset moves to its neighbours; a value between presets moves to
// the bracketing pair. Both ends saturate at the first and last preset.
func Neighbours(l Level) (down, up Level) {
	i, found := slices.BinarySearch(steps[:], l)

	downIdx := max(i-1, 0)
	upIdx := i
	if found {
		upIdx = i + 1
	}
	upIdx = min(upIdx, len(steps)-1)

	return steps[downIdx], steps[upIdx]
}

// Step returns the next preset from l in direction d.
func Step(l Level, d Direction) Level {
	down, up := Neighbours(l)
	if d == Up {
		return up
	}
	return down
}
