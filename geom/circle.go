package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Circle with center (H, K) and radius R.
type Circle struct {
	H, K, R float64
}

// CircleFromPoints returns the circumcircle of the three points, solving the
// perpendicular bisector system in closed form. Collinear points have no
// circumcircle and yield ErrCollinear; callers that can see this coming
// should check Line.ContainsPoint first.
func CircleFromPoints(p1, p2, p3 Point) (Circle, error) {
	a, b := p1.X, p1.Y
	c, d := p2.X, p2.Y
	e, f := p3.X, p3.Y
	a2b2 := a*a + b*b
	c2d2 := c*c + d*d
	e2f2 := e*e + f*f

	// Both denominators are twice the signed area of the triangle, up to sign
	kDenominator := b*(e-c) + d*(a-e) + f*(c-a)
	hDenominator := a*(f-d) + c*(b-f) + e*(d-b)
	if math.Abs(kDenominator) < Epsilon || math.Abs(hDenominator) < Epsilon {
		return Circle{}, errors.Wrapf(ErrCollinear, "no circle through %v, %v, %v", p1, p2, p3)
	}

	k := (a2b2*(e-c) + c2d2*(a-e) + e2f2*(c-a)) / kDenominator / 2
	h := (a2b2*(f-d) + c2d2*(b-f) + e2f2*(d-b)) / hDenominator / 2
	r := math.Hypot(a-h, b-k)
	return Circle{H: h, K: k, R: r}, nil
}

// CircleFromBisectors finds the same circumcircle as CircleFromPoints by
// intersecting two perpendicular bisectors. If the bisectors are parallel the
// points are collinear and ok is false.
func CircleFromBisectors(p1, p2, p3 Point) (circle Circle, ok bool) {
	center, ok := Bisector(p1, p2).Intersect(Bisector(p2, p3))
	if !ok {
		return Circle{}, false
	}
	return Circle{H: center.X, K: center.Y, R: center.DistanceTo(p1)}, true
}

func (c Circle) Center() Point {
	return Point{c.H, c.K}
}

// AngleOf returns the angle of p around the center, in [0, 2π).
func (c Circle) AngleOf(p Point) float64 {
	return NormalizeAngle(math.Atan2(p.Y-c.K, p.X-c.H))
}

func (c Circle) PointAtAngle(angle float64) Point {
	return Point{c.R*math.Cos(angle) + c.H, c.R*math.Sin(angle) + c.K}
}

// XAt returns both x values where the circle crosses the horizontal at y.
// If the horizontal misses the circle, ok is false.
func (c Circle) XAt(y float64) (xs [2]float64, ok bool) {
	sq := c.R*c.R - (y-c.K)*(y-c.K)
	if sq < 0 {
		return xs, false
	}
	dx := math.Sqrt(sq)
	return [2]float64{c.H + dx, c.H - dx}, true
}

// YAt returns both y values where the circle crosses the vertical at x.
func (c Circle) YAt(x float64) (ys [2]float64, ok bool) {
	sq := c.R*c.R - (x-c.H)*(x-c.H)
	if sq < 0 {
		return ys, false
	}
	dy := math.Sqrt(sq)
	return [2]float64{c.K + dy, c.K - dy}, true
}

// OnPerimeter reports whether p sits on the circle to the nearest whole pixel
// in both axes.
func (c Circle) OnPerimeter(p Point) bool {
	xs, okX := c.XAt(p.Y)
	ys, okY := c.YAt(p.X)
	if !okX || !okY {
		return false
	}
	x, y := math.Round(p.X), math.Round(p.Y)
	onX := x == math.Round(xs[0]) || x == math.Round(xs[1])
	onY := y == math.Round(ys[0]) || y == math.Round(ys[1])
	return onX && onY
}

func (c Circle) String() string {
	return fmt.Sprintf("circle (%.2f, %.2f) r=%.2f", c.H, c.K, c.R)
}
