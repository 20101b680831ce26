package geom

import (
	"fmt"
	"math"
)

// A Line is either a non-vertical line y = Slope*x + Intercept, or a vertical
// line at X. Exactly one of the two representations is meaningful, selected by
// Vertical. Use the constructors rather than building the struct by hand.
type Line struct {
	Slope, Intercept float64
	X                float64
	Vertical         bool
}

// LineThrough returns the line through a and b. The line is vertical iff the
// two points share an x value exactly, in which case the x value is stored
// instead of an infinite slope.
func LineThrough(a, b Point) Line {
	if a.X == b.X {
		return VerticalLine(a.X)
	}
	m := (a.Y - b.Y) / (a.X - b.X)
	return NewLine(m, a.Y-m*a.X)
}

// NewLine returns the non-vertical line with the given slope and y-intercept.
func NewLine(slope, intercept float64) Line {
	return Line{Slope: slope, Intercept: intercept}
}

func VerticalLine(x float64) Line {
	return Line{X: x, Vertical: true}
}

// YAt solves the line for y. There is no single answer on a vertical line, so
// ok is false there.
func (l Line) YAt(x float64) (y float64, ok bool) {
	if l.Vertical {
		return 0, false
	}
	return l.Slope*x + l.Intercept, true
}

// XAt solves the line for x. A horizontal line has no single answer, so ok is
// false there.
func (l Line) XAt(y float64) (x float64, ok bool) {
	if l.Vertical {
		return l.X, true
	}
	if l.Slope == 0 {
		return 0, false
	}
	return (y - l.Intercept) / l.Slope, true
}

// Intersect returns the point where the two lines cross. Parallel lines (equal
// slopes, or both vertical) report false rather than a point at infinity.
func (l Line) Intersect(other Line) (Point, bool) {
	switch {
	case l.Vertical && other.Vertical:
		return Point{}, false
	case l.Vertical:
		y, _ := other.YAt(l.X)
		return Point{l.X, y}, true
	case other.Vertical:
		y, _ := l.YAt(other.X)
		return Point{other.X, y}, true
	case l.Slope == other.Slope:
		return Point{}, false
	}
	x := (other.Intercept - l.Intercept) / (l.Slope - other.Slope)
	y, _ := l.YAt(x)
	return Point{x, y}, true
}

// Perpendicular returns the line through p that meets l at a right angle.
func (l Line) Perpendicular(p Point) Line {
	if l.Vertical {
		return NewLine(0, p.Y)
	}
	if l.Slope == 0 {
		return VerticalLine(p.X)
	}
	m := -1 / l.Slope
	return NewLine(m, p.Y-m*p.X)
}

// ContainsPoint is the collinearity test: p lies on the line when its vertical
// distance from the line at p.X is under Tolerance. A vertical line has no
// vertical distance, so the horizontal distance is used instead.
func (l Line) ContainsPoint(p Point) bool {
	if l.Vertical {
		return math.Abs(p.X-l.X) < Tolerance
	}
	y, _ := l.YAt(p.X)
	return math.Abs(y-p.Y) < Tolerance
}

// Bisector returns the perpendicular bisector of the segment ab.
func Bisector(a, b Point) Line {
	return LineThrough(a, b).Perpendicular(a.Midpoint(b))
}

func (l Line) String() string {
	if l.Vertical {
		return fmt.Sprintf("x = %.2f", l.X)
	}
	return fmt.Sprintf("y = %.3fx + %.2f", l.Slope, l.Intercept)
}
