// Package delaunay triangulates a point set with the Bowyer-Watson algorithm.
// The output is the flat index-triple list the mesh builder consumes.
package delaunay

import (
	"math"

	"github.com/osuushi/edgeflip/geom"
	"github.com/pkg/errors"
)

var (
	ErrTooFewPoints = errors.New("at least three points are required")
	ErrDegenerate   = errors.New("points do not span any area")
)

type triangle struct {
	a, b, c int
	// Circumcircle, with the radius squared for cheap containment tests. A
	// degenerate triangle gets an infinite radius so that the next insertion
	// always removes it.
	h, k, r2 float64
}

type edge struct {
	a, b int
}

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// Triangulate returns the Delaunay triangulation of points as triples of
// indices into points, each triple wound so its signed area is positive.
// Points that duplicate an earlier point are left out of every triangle.
func Triangulate(points []geom.Point) ([]int, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}

	vertices := append([]geom.Point(nil), points...)
	vertices = append(vertices, superTriangle(points)...)
	n := len(points)

	makeTriangle := func(a, b, c int) triangle {
		t := triangle{a: a, b: b, c: c}
		circle, err := geom.CircleFromPoints(vertices[a], vertices[b], vertices[c])
		if err != nil {
			t.r2 = math.Inf(1)
			return t
		}
		t.h, t.k, t.r2 = circle.H, circle.K, circle.R*circle.R
		return t
	}

	triangles := []triangle{makeTriangle(n, n+1, n+2)}
	seen := make(map[geom.Point]struct{}, n)
	for i, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		// Find every triangle whose circumcircle holds the new point. Their union
		// is a star shaped cavity; its boundary edges are the ones only one bad
		// triangle owns.
		var edges []edge
		counts := make(map[edge]int)
		kept := triangles[:0:0]
		for _, t := range triangles {
			dx, dy := p.X-t.h, p.Y-t.k
			if dx*dx+dy*dy < t.r2 {
				for _, e := range []edge{newEdge(t.a, t.b), newEdge(t.b, t.c), newEdge(t.c, t.a)} {
					if counts[e] == 0 {
						edges = append(edges, e)
					}
					counts[e]++
				}
			} else {
				kept = append(kept, t)
			}
		}

		for _, e := range edges {
			if counts[e] == 1 {
				kept = append(kept, makeTriangle(e.a, e.b, i))
			}
		}
		triangles = kept
	}

	var result []int
	for _, t := range triangles {
		if t.a >= n || t.b >= n || t.c >= n {
			continue
		}
		area := geom.Triangle{A: vertices[t.a], B: vertices[t.b], C: vertices[t.c]}.SignedArea()
		if geom.Equal(area, 0) {
			continue
		}
		if area < 0 {
			t.b, t.c = t.c, t.b
		}
		result = append(result, t.a, t.b, t.c)
	}
	if len(result) == 0 {
		return nil, errors.Wrapf(ErrDegenerate, "%d points", len(points))
	}
	return result, nil
}

// A triangle comfortably enclosing every point.
func superTriangle(points []geom.Point) []geom.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	span := math.Max(math.Max(maxX-minX, maxY-minY), 1)
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	return []geom.Point{
		{X: midX - 20*span, Y: midY - span},
		{X: midX, Y: midY + 20*span},
		{X: midX + 20*span, Y: midY - span},
	}
}
