package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularPathDirection(t *testing.T) {
	path := CircularPath{Circle{H: 0, K: 0, R: 10}}
	at := path.Circle.PointAtAngle

	cases := []struct {
		name     string
		from, to Point
		expected Direction
	}{
		{"short forward gap", at(0.1), at(1.0), Positive},
		{"long forward gap", at(0.1), at(6.0), Negative},
		{"short backward gap", at(1.0), at(0.1), Negative},
		{"wraps past zero", at(6.0), at(0.1), Positive},
		{"tie from the smaller angle", Point{10, 0}, Point{-10, 0}, Negative},
		{"tie from the larger angle", Point{-10, 0}, Point{10, 0}, Positive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, path.Direction(c.from, c.to))
		})
	}
}

func TestCircularPathStepConverges(t *testing.T) {
	path := CircularPath{Circle{H: 50, K: -20, R: 100}}
	for _, angles := range [][2]float64{{0.2, 1.7}, {1.7, 0.2}, {6.1, 0.3}, {0.3, 6.1}} {
		from := path.Circle.PointAtAngle(angles[0])
		to := path.Circle.PointAtAngle(angles[1])
		dir := path.Direction(from, to)

		gap := math.Abs(angles[1] - angles[0])
		if gap > math.Pi {
			gap = 2*math.Pi - gap
		}
		bound := int(math.Ceil(gap/0.01)) + 1

		current := from
		steps := 0
		for !current.Equal(to) {
			previous := current
			current = path.Step(current, to, dir, Increment{Angle: 0.01})
			steps++
			require.LessOrEqual(t, steps, bound, "from %.1f to %.1f did not converge", angles[0], angles[1])
			// Every step stays on the circle and moves closer
			assert.InDelta(t, path.Circle.R, current.DistanceTo(path.Circle.Center()), 1e-6)
			assert.Less(t, current.DistanceTo(to), previous.DistanceTo(to)+Epsilon)
		}
	}
}

func TestCircularPathStepSnapsToTarget(t *testing.T) {
	path := CircularPath{Circle{H: 0, K: 0, R: 10}}
	to := path.Circle.PointAtAngle(1)
	current := path.Circle.PointAtAngle(0.995)
	assert.Equal(t, to, path.Step(current, to, Positive, DefaultIncrement))
}

func TestLinearPath(t *testing.T) {
	from, to := Point{0, 0}, Point{10, 5}
	path := LinearPath{LineThrough(from, to)}

	assert.Equal(t, Positive, path.Direction(from, to))
	assert.Equal(t, Negative, path.Direction(to, from))

	walk := func(start, end Point) int {
		dir := path.Direction(start, end)
		current := start
		steps := 0
		for !current.Equal(end) {
			current = path.Step(current, end, dir, DefaultIncrement)
			assert.True(t, path.Line.ContainsPoint(current))
			steps++
			require.LessOrEqual(t, steps, 11)
		}
		assert.Equal(t, end, current)
		return steps
	}
	assert.Equal(t, 10, walk(from, to))
	assert.Equal(t, 10, walk(to, from))
}

func TestLinearPathStep(t *testing.T) {
	path := LinearPath{NewLine(2, 1)}
	next := path.Step(Point{0, 1}, Point{5, 11}, Positive, Increment{X: 1})
	assert.Equal(t, Point{1, 3}, next)
	next = path.Step(Point{0, 1}, Point{-5, -9}, Negative, Increment{X: 1})
	assert.Equal(t, Point{-1, -1}, next)
}
