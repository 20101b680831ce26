package geom

import (
	"math"
)

// Direction is the travel sign along a path. Along a circle, Positive means
// increasing angle. Along a line, Positive means increasing x.
type Direction int

const (
	Negative Direction = -1
	Positive Direction = 1
)

// Increment is how far one tick moves a point: Angle radians along a
// circle, or X pixels of x along a line.
type Increment struct {
	Angle float64
	X     float64
}

// DefaultIncrement is a hundredth of a radian, or one pixel of x.
var DefaultIncrement = Increment{Angle: 0.01, X: 1}

// A Path is the track a flipping vertex follows. It is closed to CircularPath
// and LinearPath; consumers call the methods instead of switching on type.
type Path interface {
	// Direction picks the travel sign that takes from toward to.
	Direction(from, to Point) Direction

	// Step moves current one increment toward target. When the target is no
	// more than one increment away, the target itself is returned, so stepping
	// never overshoots.
	Step(current, target Point, dir Direction, inc Increment) Point

	// Hint that keeps other types out of the union
	pathTypeHint()
}

func (CircularPath) pathTypeHint() {}
func (LinearPath) pathTypeHint()   {}

type CircularPath struct {
	Circle Circle
}

// Direction chooses the shorter arc. When the two arcs are equal, the choice
// depends on which angle is larger, which keeps the result stable for a
// given pair.
func (p CircularPath) Direction(from, to Point) Direction {
	aFrom := p.Circle.AngleOf(from)
	aTo := p.Circle.AngleOf(to)
	if aFrom > aTo {
		if aFrom-aTo < math.Pi {
			return Negative
		}
		return Positive
	}
	if aTo-aFrom < math.Pi {
		return Positive
	}
	return Negative
}

func (p CircularPath) Step(current, target Point, dir Direction, inc Increment) Point {
	size := inc.Angle
	angle := p.Circle.AngleOf(current)
	targetAngle := p.Circle.AngleOf(target)
	remaining := NormalizeAngle(float64(dir) * (targetAngle - angle))
	if remaining <= size {
		return target
	}
	return p.Circle.PointAtAngle(angle + float64(dir)*size)
}

type LinearPath struct {
	Line Line
}

// Direction is Positive when to lies right of from. Vertical lines have no
// meaningful answer here; the resolver never hands one out.
func (p LinearPath) Direction(from, to Point) Direction {
	if from.X < to.X {
		return Positive
	}
	return Negative
}

func (p LinearPath) Step(current, target Point, dir Direction, inc Increment) Point {
	size := inc.X
	if math.Abs(target.X-current.X) <= size {
		return target
	}
	x := current.X + float64(dir)*size
	y, ok := p.Line.YAt(x)
	if !ok {
		return current
	}
	return Point{x, y}
}
