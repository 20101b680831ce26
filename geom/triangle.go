package geom

import "math"

// Triangle is a value triangle. Mesh triangles refer to shared points by
// index; this is what you get after looking those indices up.
type Triangle struct {
	A, B, C Point
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// SignedArea is positive when A, B, C wind counterclockwise in a y-up frame.
func (t Triangle) SignedArea() float64 {
	return (t.A.X*(t.B.Y-t.C.Y) + t.B.X*(t.C.Y-t.A.Y) + t.C.X*(t.A.Y-t.B.Y)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) Centroid() Point {
	return Point{(t.A.X + t.B.X + t.C.X) / 3, (t.A.Y + t.B.Y + t.C.Y) / 3}
}

// AltitudeFoot returns the foot of the altitude dropped from corner i (mod 3)
// onto the line through the other two corners.
func (t Triangle) AltitudeFoot(i int) Point {
	points := t.Points()
	apex := points[circularIndex(i, 3)]
	side := LineThrough(points[circularIndex(i+1, 3)], points[circularIndex(i+2, 3)])
	// A line and its perpendicular are never parallel
	foot, _ := side.Intersect(side.Perpendicular(apex))
	return foot
}

func circularIndex(i, n int) int {
	return (i%n + n) % n
}
