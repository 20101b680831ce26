package geom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineThrough(t *testing.T) {
	t.Run("sloped", func(t *testing.T) {
		l := LineThrough(Point{0, 1}, Point{2, 5})
		assert.False(t, l.Vertical)
		assert.InDelta(t, 2.0, l.Slope, Epsilon)
		assert.InDelta(t, 1.0, l.Intercept, Epsilon)
	})

	t.Run("vertical", func(t *testing.T) {
		l := LineThrough(Point{3, 1}, Point{3, 5})
		assert.True(t, l.Vertical)
		assert.Equal(t, 3.0, l.X)
		_, ok := l.YAt(3)
		assert.False(t, ok)
		x, ok := l.XAt(100)
		assert.True(t, ok)
		assert.Equal(t, 3.0, x)
	})

	t.Run("horizontal has no XAt", func(t *testing.T) {
		l := LineThrough(Point{0, 4}, Point{9, 4})
		_, ok := l.XAt(4)
		assert.False(t, ok)
	})
}

func TestLineIntersect(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Line
		expected Point
		ok       bool
	}{
		{"crossing diagonals", NewLine(1, 0), NewLine(-1, 4), Point{2, 2}, true},
		{"vertical and sloped", VerticalLine(3), NewLine(2, 1), Point{3, 7}, true},
		{"sloped and vertical", NewLine(2, 1), VerticalLine(3), Point{3, 7}, true},
		{"horizontal and vertical", NewLine(0, 5), VerticalLine(-2), Point{-2, 5}, true},
		{"parallel slopes", NewLine(2, 1), NewLine(2, -3), Point{}, false},
		{"same line", NewLine(2, 1), NewLine(2, 1), Point{}, false},
		{"both vertical", VerticalLine(1), VerticalLine(4), Point{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, ok := c.a.Intersect(c.b)
			require.Equal(t, c.ok, ok)
			if ok {
				assert.InDelta(t, c.expected.X, p.X, Epsilon)
				assert.InDelta(t, c.expected.Y, p.Y, Epsilon)
			}
		})
	}
}

func TestLineIntersectSatisfiesBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	onLine := func(l Line, p Point) {
		if l.Vertical {
			assert.InDelta(t, l.X, p.X, 1e-6)
			return
		}
		y, _ := l.YAt(p.X)
		assert.InDelta(t, y, p.Y, 1e-6)
	}
	randomLine := func() Line {
		if rng.Intn(5) == 0 {
			return VerticalLine(rng.Float64()*200 - 100)
		}
		return NewLine(rng.Float64()*20-10, rng.Float64()*200-100)
	}

	for i := 0; i < 200; i++ {
		a, b := randomLine(), randomLine()
		p, ok := a.Intersect(b)
		if a.Vertical && b.Vertical {
			assert.False(t, ok)
			continue
		}
		if !a.Vertical && !b.Vertical && a.Slope == b.Slope {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, "lines %v and %v should cross", a, b)
		onLine(a, p)
		onLine(b, p)
	}
}

func TestLinePerpendicular(t *testing.T) {
	p := Point{2, 5}

	t.Run("of vertical is horizontal", func(t *testing.T) {
		perp := VerticalLine(7).Perpendicular(p)
		assert.False(t, perp.Vertical)
		assert.Equal(t, 0.0, perp.Slope)
		assert.Equal(t, 5.0, perp.Intercept)
	})

	t.Run("of horizontal is vertical", func(t *testing.T) {
		perp := NewLine(0, 1).Perpendicular(p)
		assert.True(t, perp.Vertical)
		assert.Equal(t, 2.0, perp.X)
	})

	t.Run("of sloped line", func(t *testing.T) {
		perp := NewLine(2, 1).Perpendicular(p)
		assert.InDelta(t, -0.5, perp.Slope, Epsilon)
		assert.True(t, perp.ContainsPoint(p))
	})
}

func TestLineContainsPoint(t *testing.T) {
	base := LineThrough(Point{0, 0}, Point{4, 0})
	cases := []struct {
		line     Line
		point    Point
		expected bool
	}{
		{base, Point{2, 0}, true},
		{base, Point{2, 0.5}, true},
		{base, Point{2, -3}, false},
		{base, Point{100, -0.99}, true},
		{VerticalLine(2), Point{2.5, 1000}, true},
		{VerticalLine(2), Point{4, 0}, false},
		{NewLine(1, 0), Point{10, 12}, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v contains %v", c.line, c.point), func(t *testing.T) {
			assert.Equal(t, c.expected, c.line.ContainsPoint(c.point))
		})
	}
}

func TestBisector(t *testing.T) {
	a, b := Point{0, 0}, Point{4, 0}
	bisector := Bisector(a, b)
	assert.True(t, bisector.Vertical)
	assert.Equal(t, 2.0, bisector.X)

	c, d := Point{1, 1}, Point{3, 5}
	bisector = Bisector(c, d)
	// Every point on the bisector is equidistant from both ends
	for _, x := range []float64{-10, 0, 2, 17} {
		y, ok := bisector.YAt(x)
		require.True(t, ok)
		p := Point{x, y}
		assert.InDelta(t, p.DistanceTo(c), p.DistanceTo(d), 1e-9)
	}
}
