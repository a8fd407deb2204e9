// Package scenario drives Intcode machines through the interactive programs
// they were built for: a gravity assist calculation, a hull painting robot, an arcade cabinet, a repair
// droid, and a scaffold camera.
package scenario

// Point is a grid location.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (pt Point) Add(other Point) Point {
	return Point{X: pt.X + other.X, Y: pt.Y + other.Y}
}

// Bounds is the smallest rectangle covering a set of points.
type Bounds struct {
	Min, Max Point
}

// Extend grows the bounds to include pt.
func (bb *Bounds) Extend(pt Point) {
	bb.Min.X = min(bb.Min.X, pt.X)
	bb.Min.Y = min(bb.Min.Y, pt.Y)
	bb.Max.X = max(bb.Max.X, pt.X)
	bb.Max.Y = max(bb.Max.Y, pt.Y)
}

// sign returns -1, 0 or 1.
func sign(value int) int64 {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	}
	return 0
}
