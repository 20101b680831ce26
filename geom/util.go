// Package geom holds the value geometry used by the flip engine: points,
// lines, circles, triangles and the motion paths built from them.
//
// Coordinates are in canvas pixels. Y grows downward on a canvas, so an
// increasing angle reads as clockwise on screen, but nothing in this package
// depends on that.
package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Tolerance is the pixel distance under which two things are considered to
// coincide. It is used for point equality, line containment and flip
// convergence alike.
const Tolerance = 1.0

// Epsilon is the floating point tolerance for exact arithmetic checks, such as
// whether a determinant vanished. It is not a pixel distance.
const Epsilon = 1e-9

// ErrCollinear is returned when a circle is requested through three points
// that lie on a single line.
var ErrCollinear = errors.New("points are collinear")

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NormalizeAngle maps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	// Mod can hand back -0 or a value that rounds up to 2π after the add
	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}
