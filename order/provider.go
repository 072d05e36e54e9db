package order

import (
	"github.com/vareng/bucketelim/diagram"
)

// Provider produces a total elimination order for a model under a named
// heuristic. spec.md §4.2 treats the heuristic's internals as an external
// dependency; the bucket engine depends only on this interface.
type Provider interface {
	// Order returns a permutation of all of d's variable indices. If d
	// supplies a partial order, the returned permutation eliminates that
	// order's members in reverse: a variable observed or decided later in
	// time is eliminated earlier, so that a decision's bucket still sees
	// (and can condition its policy on) every variable resolved before it,
	// and a chance variable is only summed away after every decision able
	// to observe it has been processed. Returns ErrMissingOrder if no such
	// extension exists, or ErrUnknownMethod for an unrecognized Method.
	Order(d *diagram.InfluenceDiagram, method Method) ([]int, error)
}

// Default returns the reference greedy Provider: at each step it picks,
// among variables whose partial-order predecessors have already been
// eliminated, the one minimizing the heuristic's score, breaking ties by
// lowest variable index for determinism.
func Default() Provider { return greedyProvider{} }

type greedyProvider struct{}

func (greedyProvider) Order(d *diagram.InfluenceDiagram, method Method) ([]int, error) {
	switch method {
	case MinFill, MinInduced, WeightedMinFill:
	default:
		return nil, ErrUnknownMethod
	}

	predecessor := predecessorConstraints(d.PartialOrder())

	g := newIGraph(d)
	eliminated := make(map[int]bool, d.NumVars())
	result := make([]int, 0, d.NumVars())

	for len(result) < d.NumVars() {
		best := -1
		bestScore := 0
		for _, x := range g.remaining() {
			if pred, ok := predecessor[x]; ok && !eliminated[pred] {
				continue // partial-order predecessor not yet eliminated
			}
			score := scoreFor(g, method, x)
			if best == -1 || score < bestScore {
				best = x
				bestScore = score
			}
		}
		if best == -1 {
			// every remaining variable is blocked on a predecessor: the
			// partial order constraints form a cycle.
			return nil, ErrMissingOrder
		}
		result = append(result, best)
		eliminated[best] = true
		g.eliminate(best)
	}

	return result, nil
}

func scoreFor(g *igraph, method Method, x int) int {
	switch method {
	case MinInduced:
		return g.degree(x)
	case WeightedMinFill:
		return g.weightedFill(x)
	default: // MinFill
		return g.fillCount(x)
	}
}

// predecessorConstraints turns a partial order sequence into an
// immediate-predecessor map over its *reverse*: the last-resolved
// variable must be eliminated before the one resolved just ahead of it,
// and so on back to the first. A variable must wait for its predecessor
// to be eliminated before it becomes eligible, which enforces that
// reversed ordering without forcing the partial order's members to be
// contiguous in the result.
func predecessorConstraints(partialOrder []int) map[int]int {
	pred := make(map[int]int, len(partialOrder))
	for i := len(partialOrder) - 1; i > 0; i-- {
		pred[partialOrder[i-1]] = partialOrder[i]
	}
	return pred
}

// InducedWidth simulates eliminating order's variables in sequence over
// d's interaction graph and returns the largest neighborhood encountered
// just before any elimination — the induced width of that order.
func InducedWidth(d *diagram.InfluenceDiagram, order []int) int {
	g := newIGraph(d)
	width := 0
	for _, x := range order {
		if deg := g.degree(x); deg > width {
			width = deg
		}
		g.eliminate(x)
	}
	return width
}
