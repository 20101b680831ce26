// Package flip animates edge flips on a mesh. A flip slides the far corner
// of one triangle along a path until it lands on the far corner of the
// triangle across their shared edge, then hands its color over.
package flip

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/osuushi/edgeflip/dbg"
	"github.com/osuushi/edgeflip/geom"
	"github.com/osuushi/edgeflip/mesh"
)

// Flip is one flip in progress.
//
// Moving is the flip's own copy of the source triangle's far corner. It is
// never shared with the mesh, so the mesh's real points stay put while the
// flip animates, and no two flips ever move the same point.
type Flip struct {
	// Triangle indexes: the triangle the flip starts from and the one across
	// the shared edge.
	From, To int
	// Vertex indexes of the shared edge, and of the far corner of each
	// triangle.
	Edge                 [2]int
	FromVertex, ToVertex int

	Moving   geom.Point
	Target   geom.Point
	EdgeLine geom.Line
	Midpoint geom.Point

	Path      geom.Path
	Direction geom.Direction
	// Color of the shadow triangle; the destination takes it on commit.
	Color colorful.Color

	steps     int
	converged bool
}

// Shadow is the triangle a flip draws this tick.
type Shadow struct {
	Triangle geom.Triangle
	Color    colorful.Color
	Path     geom.Path
}

// Shadow builds the flip's moving triangle out of the shared edge, read from
// the mesh arena, and the flip's private moving point.
func (f *Flip) Shadow(m *mesh.Mesh) Shadow {
	return Shadow{
		Triangle: geom.Triangle{A: m.Points[f.Edge[0]], B: m.Points[f.Edge[1]], C: f.Moving},
		Color:    f.Color,
		Path:     f.Path,
	}
}

// Arrived reports whether the moving point is within tolerance of the target.
func (f *Flip) Arrived() bool {
	return f.Moving.Equal(f.Target)
}

func (f *Flip) Converged() bool {
	return f.converged
}

// Steps is how many ticks the flip has moved so far.
func (f *Flip) Steps() int {
	return f.steps
}

func (f *Flip) advance(inc geom.Increment) {
	f.Moving = f.Path.Step(f.Moving, f.Target, f.Direction, inc)
	f.steps++
}

// DbgName colors the flip's name by state: cyan on a circle, yellow on a
// line, green once converged.
func (f *Flip) DbgName() string {
	name := dbg.Name(f)
	switch {
	case f.converged:
		return aurora.Green(name).String()
	case isLinear(f.Path):
		return aurora.Yellow(name).String()
	}
	return aurora.Cyan(name).String()
}

func (f *Flip) String() string {
	return fmt.Sprintf("Flip %s { %s -> %s } <edge: %d-%d, path: %v, dir: %d, at: %v, to: %v>",
		f.DbgName(),
		dbg.TriangleName(f.From),
		dbg.TriangleName(f.To),
		f.Edge[0], f.Edge[1],
		f.Path,
		f.Direction,
		f.Moving,
		f.Target,
	)
}

func isLinear(p geom.Path) bool {
	_, ok := p.(geom.LinearPath)
	return ok
}
