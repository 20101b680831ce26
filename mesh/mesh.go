// Package mesh turns a flat triangulation into the topology the flip engine
// walks: which vertices connect, which triangles touch each vertex, and which
// triangles share an edge.
//
// Points live in a single arena and triangles refer to them by index. Moving a
// point in the arena moves it in every triangle that uses it.
package mesh

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/osuushi/edgeflip/geom"
)

type Triangle struct {
	Vertices [3]int
	Color    colorful.Color
}

// Has reports whether v is one of the triangle's corners.
func (t Triangle) Has(v int) bool {
	return t.Vertices[0] == v || t.Vertices[1] == v || t.Vertices[2] == v
}

// Neighbors classifies the triangles around one triangle. Touching triangles
// share exactly one vertex with it, Adjacent triangles share an edge.
type Neighbors struct {
	Touching []int
	Adjacent []int
}

type Mesh struct {
	Points    []geom.Point
	Triangles []Triangle

	// Graph lists, per vertex, the vertices it shares an edge with.
	Graph Graph
	// Affiliation lists, per vertex, the triangles that have it as a corner.
	Affiliation [][]int
	// Neighbors holds one record per triangle, in triangle order.
	Neighbors []Neighbors
}

// Build registers every triangle in indices (a flat list of vertex index
// triples) against points. The points are copied into the mesh's arena.
//
// Anything other than whole triples of in-range, distinct indices is rejected
// with an error wrapping ErrMalformed.
func Build(points []geom.Point, indices []int) (result *Mesh, err error) {
	defer func() {
		if recoveredErr := handleBuildPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(indices)%3 != 0 {
		fatalf("index count %d is not a multiple of 3", len(indices))
	}

	m := &Mesh{
		Points:    append([]geom.Point(nil), points...),
		Triangles: make([]Triangle, 0, len(indices)/3),
	}
	for i := 0; i < len(indices); i += 3 {
		tri := Triangle{Vertices: [3]int{indices[i], indices[i+1], indices[i+2]}}
		for _, v := range tri.Vertices {
			if v < 0 || v >= len(points) {
				fatalf("triangle %d refers to vertex %d of %d", i/3, v, len(points))
			}
		}
		a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
		if a == b || b == c || a == c {
			fatalf("triangle %d repeats a vertex: %v", i/3, tri.Vertices)
		}
		m.Triangles = append(m.Triangles, tri)
	}

	m.Graph = buildGraph(len(points), m.Triangles)
	m.Affiliation = buildAffiliation(len(points), m.Triangles)
	m.Neighbors = buildNeighbors(m.Affiliation, m.Triangles)
	return m, nil
}

// Triangle looks up the corners of triangle i in the arena.
func (m *Mesh) Triangle(i int) geom.Triangle {
	v := m.Triangles[i].Vertices
	return geom.Triangle{A: m.Points[v[0]], B: m.Points[v[1]], C: m.Points[v[2]]}
}

// Geometry returns every triangle of the mesh as value geometry.
func (m *Mesh) Geometry() []geom.Triangle {
	result := make([]geom.Triangle, len(m.Triangles))
	for i := range m.Triangles {
		result[i] = m.Triangle(i)
	}
	return result
}
