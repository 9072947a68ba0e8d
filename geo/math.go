// Package geo implements the scalar, vector, plane and bounding-box
// primitives the brush geometry engine is built on. Every quantity is a
// float64: the engine needs double-precision arithmetic with explicit
// epsilons, not the single-precision math a realtime renderer gets away
// with.
package geo

import "math"

// PositionEpsilon is the distance below which two positions are considered
// equal.
const PositionEpsilon = 1e-3

// AngleEpsilon is the angle, in radians, below which two plane normals are
// considered parallel.
const AngleEpsilon = 1e-5

// WorldHalfExtent is a half-extent for a symmetric world cube (see
// CubeAround). FromHalfSpaces does not fall back on it: the caller always
// passes the starting bounds.
const WorldHalfExtent = 4096.0

// Pi is math.Pi re-exported so callers never need to import "math" just to
// build an angle.
const Pi = math.Pi

// DegToRad converts an angle from degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp clamps x to the closed interval [a, b].
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// NearlyEqual reports whether a and b differ by less than PositionEpsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < PositionEpsilon
}

// NearlyZero reports whether v is within PositionEpsilon of zero.
func NearlyZero(v float64) bool {
	return math.Abs(v) < PositionEpsilon
}

// Round rounds v to the nearest integer, ties toward positive infinity
// (2.5 becomes 3, -2.5 becomes -2).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// SnapToGrid rounds v to the nearest multiple of grid. A grid of 0 or
// negative is treated as 1.
func SnapToGrid(v float64, grid int) float64 {
	if grid <= 0 {
		grid = 1
	}
	g := float64(grid)
	return Round(v/g) * g
}

// Settle rounds v to the nearest integer if it is within PositionEpsilon of
// one, otherwise returns v unchanged. This cleans up floating point noise
// produced by plane-intersection arithmetic; it is much tighter than a
// caller-invoked grid snap (see SnapToGrid) and is always applied, not just
// when the caller asks for it.
func Settle(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < PositionEpsilon {
		return r
	}
	return v
}
