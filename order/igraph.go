package order

import (
	"sort"

	"github.com/vareng/bucketelim/diagram"
	"github.com/vareng/bucketelim/variable"
)

// igraph is the interaction graph used to simulate elimination while
// scoring candidates for the greedy heuristics below: nodes are variable
// indices, edges connect variables that co-occur in some factor's scope
// (or were joined by a prior elimination's fill-in). It plays the role
// core.Graph's adjacencyList plays for Dijkstra/BFS/DFS, adapted from a
// string-keyed vertex/edge model to an int-keyed variable-interaction
// model with no locking (it is built, mutated, and discarded within a
// single Order call — never shared across goroutines).
type igraph struct {
	card  map[int]int
	edges map[int]map[int]struct{}
}

// newIGraph builds the interaction graph of d: one node per variable,
// one clique of edges per factor scope.
func newIGraph(d *diagram.InfluenceDiagram) *igraph {
	g := &igraph{
		card:  make(map[int]int, d.NumVars()),
		edges: make(map[int]map[int]struct{}, d.NumVars()),
	}
	for _, v := range d.Variables() {
		g.addNode(v)
	}
	for _, f := range d.Factors() {
		scope := f.Scope().Slice()
		for i := 0; i < len(scope); i++ {
			for j := i + 1; j < len(scope); j++ {
				g.addEdge(scope[i].Index(), scope[j].Index())
			}
		}
	}
	return g
}

func (g *igraph) addNode(v variable.Variable) {
	if _, ok := g.edges[v.Index()]; !ok {
		g.edges[v.Index()] = make(map[int]struct{})
	}
	g.card[v.Index()] = v.Card()
}

func (g *igraph) addEdge(a, b int) {
	if a == b {
		return
	}
	g.edges[a][b] = struct{}{}
	g.edges[b][a] = struct{}{}
}

// neighbors returns x's current neighbor indices, sorted ascending for
// deterministic iteration (mirroring core's Neighbors()/NeighborIDs()
// determinism contract).
func (g *igraph) neighbors(x int) []int {
	out := make([]int, 0, len(g.edges[x]))
	for n := range g.edges[x] {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (g *igraph) degree(x int) int { return len(g.edges[x]) }

// fillCount returns the number of edges that eliminating x would add
// (pairs of x's current neighbors that are not already connected).
func (g *igraph) fillCount(x int) int {
	nbrs := g.neighbors(x)
	count := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if _, ok := g.edges[nbrs[i]][nbrs[j]]; !ok {
				count++
			}
		}
	}
	return count
}

// weightedFill returns the sum, over fill edges eliminating x would add,
// of the product of the two endpoints' domain cardinalities.
func (g *igraph) weightedFill(x int) int {
	nbrs := g.neighbors(x)
	weight := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if _, ok := g.edges[nbrs[i]][nbrs[j]]; !ok {
				weight += g.card[nbrs[i]] * g.card[nbrs[j]]
			}
		}
	}
	return weight
}

// eliminate connects x's neighbors pairwise (moralizing the fill-in) and
// removes x from the graph.
func (g *igraph) eliminate(x int) {
	nbrs := g.neighbors(x)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			g.addEdge(nbrs[i], nbrs[j])
		}
	}
	for _, n := range nbrs {
		delete(g.edges[n], x)
	}
	delete(g.edges, x)
	delete(g.card, x)
}

// remaining returns the indices still present in the graph, sorted
// ascending for deterministic iteration.
func (g *igraph) remaining() []int {
	out := make([]int, 0, len(g.edges))
	for x := range g.edges {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}
