package mesh

// Graph is the vertex adjacency graph. It is symmetric: if a lists b, b lists
// a. Vertices that no triangle uses have an empty list.
type Graph [][]int

func (g Graph) Degree(v int) int {
	return len(g[v])
}

func (g Graph) Connected(a, b int) bool {
	for _, other := range g[a] {
		if other == b {
			return true
		}
	}
	return false
}

// Add the edge a -> b if it isn't already there
func (g Graph) connect(a, b int) {
	if !g.Connected(a, b) {
		g[a] = append(g[a], b)
	}
}

func buildGraph(vertexCount int, triangles []Triangle) Graph {
	graph := make(Graph, vertexCount)
	for _, tri := range triangles {
		a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
		graph.connect(a, b)
		graph.connect(a, c)

		graph.connect(b, a)
		graph.connect(b, c)

		graph.connect(c, a)
		graph.connect(c, b)
	}
	return graph
}

func buildAffiliation(vertexCount int, triangles []Triangle) [][]int {
	affiliation := make([][]int, vertexCount)
	for i, tri := range triangles {
		for _, v := range tri.Vertices {
			affiliation[v] = append(affiliation[v], i)
		}
	}
	return affiliation
}

// For each corner of a triangle, every other triangle affiliated with that
// corner shares at least one vertex. The first time we meet a triangle it is
// touching; meeting it again through a second corner means it shares an edge,
// so it moves to adjacent.
func buildNeighbors(affiliation [][]int, triangles []Triangle) []Neighbors {
	neighbors := make([]Neighbors, len(triangles))
	for i, tri := range triangles {
		shared := make(map[int]int)
		var order []int
		for _, v := range tri.Vertices {
			for _, other := range affiliation[v] {
				if other == i {
					continue
				}
				if shared[other] == 0 {
					order = append(order, other)
				}
				shared[other]++
			}
		}

		record := &neighbors[i]
		for _, other := range order {
			switch shared[other] {
			case 1:
				record.Touching = append(record.Touching, other)
			case 2:
				record.Adjacent = append(record.Adjacent, other)
			default:
				fatalf("triangles %d and %d share all three vertices", i, other)
			}
		}
	}
	return neighbors
}
