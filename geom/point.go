package geom

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Equal is the approximate pixel equality used to decide that a moving point
// has arrived. It is not floating point identity.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < Tolerance && math.Abs(p.Y-other.Y) < Tolerance
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) Midpoint(other Point) Point {
	return Point{(p.X + other.X) / 2, (p.Y + other.Y) / 2}
}

func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
