package flip

import (
	"math/rand"

	"github.com/osuushi/edgeflip/geom"
	"github.com/osuushi/edgeflip/mesh"
	"github.com/osuushi/edgeflip/palette"
	"github.com/pkg/errors"
)

var (
	// ErrNoAdjacent means the source triangle has no triangle across any of
	// its edges, or the chosen pair does not share one. Pick another source.
	ErrNoAdjacent = errors.New("no edge-adjacent triangle")

	// ErrVerticalPath means the flip would travel along a vertical line. A
	// straight path is walked by stepping x, which goes nowhere on a vertical,
	// so such flips are refused. Pick another source.
	ErrVerticalPath = errors.New("flip path is vertical")

	ErrEmptyMesh = errors.New("mesh has no triangles")
)

// Resolver works out how a flip between two triangles moves.
type Resolver struct {
	mesh    *mesh.Mesh
	rng     *rand.Rand
	palette palette.Palette
}

func NewResolver(m *mesh.Mesh, rng *rand.Rand, p palette.Palette) *Resolver {
	return &Resolver{mesh: m, rng: rng, palette: p}
}

// Resolve flips from toward one of its edge-adjacent triangles, chosen
// uniformly.
func (r *Resolver) Resolve(from int) (*Flip, error) {
	adjacent := r.mesh.Neighbors[from].Adjacent
	if len(adjacent) == 0 {
		return nil, errors.Wrapf(ErrNoAdjacent, "triangle %d", from)
	}
	return r.ResolvePair(from, adjacent[r.rng.Intn(len(adjacent))])
}

// ResolvePair builds the flip from one triangle to the triangle across their
// shared edge. On success the source triangle is repainted right away, which
// marks it as spent whether or not the animation ever finishes.
func (r *Resolver) ResolvePair(from, to int) (*Flip, error) {
	f, err := plan(r.mesh, from, to)
	if err != nil {
		return nil, err
	}
	r.mesh.Triangles[from].Color = r.palette.Random(r.rng)
	return f, nil
}

// plan does the geometry for a flip without touching the mesh.
func plan(m *mesh.Mesh, from, to int) (*Flip, error) {
	source, dest := m.Triangles[from], m.Triangles[to]

	f := &Flip{From: from, To: to, Color: source.Color}
	shared := 0
	for _, v := range source.Vertices {
		if dest.Has(v) {
			if shared < 2 {
				f.Edge[shared] = v
			}
			shared++
		} else {
			f.FromVertex = v
		}
	}
	if shared != 2 || from == to {
		return nil, errors.Wrapf(ErrNoAdjacent, "triangles %d and %d share %d vertices", from, to, shared)
	}
	for _, v := range dest.Vertices {
		if !source.Has(v) {
			f.ToVertex = v
		}
	}

	vFrom, vTo := m.Points[f.FromVertex], m.Points[f.ToVertex]
	a, b := m.Points[f.Edge[0]], m.Points[f.Edge[1]]
	f.Moving = vFrom
	f.Target = vTo
	f.EdgeLine = geom.LineThrough(a, b)
	f.Midpoint = a.Midpoint(b)

	// When the far corners and the edge midpoint line up, the circle through
	// them would be enormous or undefined, so travel straight instead.
	track := geom.LineThrough(vFrom, vTo)
	if track.ContainsPoint(f.Midpoint) {
		if track.Vertical {
			return nil, errors.Wrapf(ErrVerticalPath, "triangles %d and %d at x = %.2f", from, to, track.X)
		}
		f.Path = geom.LinearPath{Line: track}
	} else {
		circle, err := geom.CircleFromPoints(vFrom, vTo, f.Midpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "flip %d -> %d", from, to)
		}
		f.Path = geom.CircularPath{Circle: circle}
	}
	f.Direction = f.Path.Direction(vFrom, vTo)
	return f, nil
}
