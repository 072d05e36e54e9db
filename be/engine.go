package be

import (
	"context"
	"fmt"

	"github.com/vareng/bucketelim/diagram"
	"github.com/vareng/bucketelim/factor"
	"github.com/vareng/bucketelim/order"
	"github.com/vareng/bucketelim/variable"
)

// Engine runs Bucket Elimination over a borrowed, read-only
// InfluenceDiagram. The engine owns its bucket state exclusively for the
// duration of a Run call; two concurrent runs must use separate Engine
// instances (spec.md §5).
type Engine struct {
	diagram  *diagram.InfluenceDiagram
	cfg      Config
	logger   Logger
	provider order.Provider
}

// EngineOption configures an Engine at construction time, distinct from
// Option (which configures a Config).
type EngineOption func(*Engine)

// WithLogger overrides the engine's diagnostic sink (default: a discard
// logger when Config.Debug is false, or NewStdLogger when true).
func WithLogger(l Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithOrderProvider overrides the elimination Order Provider (default:
// order.Default()).
func WithOrderProvider(p order.Provider) EngineOption {
	return func(e *Engine) { e.provider = p }
}

// New constructs an Engine for d under cfg.
func New(d *diagram.InfluenceDiagram, cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{
		diagram:  d,
		cfg:      cfg,
		provider: order.Default(),
	}
	if cfg.Debug {
		e.logger = NewStdLogger()
	} else {
		e.logger = noopLogger{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// bucketState is the engine's ephemeral, exclusively-owned working state
// for a single Run call (spec.md §3 "Bucket state").
type bucketState struct {
	pool  []factor.Factor // factor pool, indexed by id
	vin   map[int][]int   // bucket variable index -> factor ids assigned
	roots []int           // factor ids with empty scope
	pos   map[int]int     // variable index -> position in elimination order
	order []int
}

// Run executes the forward pass, root combination, and backward pass in
// one call, returning a Result or a structured error (spec.md §7). ctx is
// checked for cancellation between bucket-processing steps; the engine
// performs no other suspension (spec.md §5).
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.diagram.IsLimid() {
		return nil, UnsupportedModelError{}
	}

	seq, err := e.provider.Order(e.diagram, e.cfg.Order)
	if err != nil {
		return nil, wrapOrderError(err)
	}
	e.logger.Logf("elimination order: %v", seq)
	e.logger.Logf("induced width: %d", order.InducedWidth(e.diagram, seq))

	st := e.newBucketState(seq)

	assigned := make(map[int]bool, len(st.pool))
	for _, ids := range st.vin {
		for _, id := range ids {
			assigned[id] = true
		}
	}
	for i := range st.pool {
		if !assigned[i] {
			return nil, wrapFactorError(-1, fmt.Errorf("input factor %d has no scope variable in the elimination order", i))
		}
	}

	if err := e.forwardPass(ctx, st); err != nil {
		return nil, err
	}

	meu, err := e.combineRoots(st)
	if err != nil {
		return nil, err
	}

	policies, policyBytes, err := e.backwardPass(ctx, st)
	if err != nil {
		return nil, err
	}

	return &Result{
		meu:             meu,
		policies:        policies,
		factorPoolBytes: poolBytes(st.pool),
		policyBytes:     policyBytes,
	}, nil
}

// newBucketState partitions the diagram's input factors into buckets
// (spec.md §4.3 "Initial bucket assignment"): for each variable x in
// elimination order, every not-yet-assigned factor whose scope contains x
// is assigned to x's bucket.
func (e *Engine) newBucketState(seq []int) *bucketState {
	pool := e.diagram.Factors()
	used := make([]bool, len(pool))
	vin := make(map[int][]int, len(seq))
	pos := make(map[int]int, len(seq))
	for i, x := range seq {
		pos[x] = i
	}

	for _, x := range seq {
		for i, f := range pool {
			if used[i] || !f.Scope().ContainsIndex(x) {
				continue
			}
			vin[x] = append(vin[x], i)
			used[i] = true
		}
	}

	return &bucketState{pool: pool, vin: vin, pos: pos, order: seq}
}

// rebucket assigns the newly appended factor at id k (produced while
// processing x) to the bucket of the first variable in the order's suffix
// past x whose scope it still touches, or records it as a root if none
// remains (spec.md §4.3 "Re-bucketing rule").
func (st *bucketState) rebucket(x, k int) {
	f := st.pool[k]
	if f.Scope().Len() == 0 {
		st.roots = append(st.roots, k)
		return
	}
	for _, y := range st.order[st.pos[x]+1:] {
		if f.Scope().ContainsIndex(y) {
			st.vin[y] = append(st.vin[y], k)
			return
		}
	}
	st.roots = append(st.roots, k)
}

// append stores f in the pool and returns its new id.
func (st *bucketState) append(f factor.Factor) int {
	st.pool = append(st.pool, f)
	return len(st.pool) - 1
}

// split partitions a bucket's factor ids into Probability-tagged (phi)
// and Utility-tagged (psi) lists.
func (st *bucketState) split(ids []int) (phi, psi []int) {
	for _, id := range ids {
		switch st.pool[id].Type() {
		case factor.Probability:
			phi = append(phi, id)
		case factor.Utility:
			psi = append(psi, id)
		}
	}
	return phi, psi
}

// forwardPass processes every non-empty bucket in elimination order
// (spec.md §4.3 "Per-bucket processing").
func (e *Engine) forwardPass(ctx context.Context, st *bucketState) error {
	for _, x := range st.order {
		if err := ctx.Err(); err != nil {
			return err
		}
		ids := st.vin[x]
		if len(ids) == 0 {
			continue
		}

		v, _ := e.diagram.VariableByIndex(x)
		phi, psi := st.split(ids)
		e.logger.Logf("bucket %d (%s): phi=%v psi=%v", x, v.Kind(), phi, psi)

		before := len(st.pool)
		var err error
		switch v.Kind() {
		case variable.Decision:
			err = e.processDecisionBucket(st, v, phi, psi)
		case variable.Value:
			err = e.processValueBucket(st, v, phi, psi)
		default: // Chance
			err = e.processChanceBucket(st, v, phi, psi)
		}
		if err != nil {
			return wrapFactorError(x, err)
		}
		for k := before; k < len(st.pool); k++ {
			m := st.pool[k]
			scope := make([]int, 0, m.Scope().Len())
			for _, sv := range m.Scope().Slice() {
				scope = append(scope, sv.Index())
			}
			e.logger.Logf("bucket %d message %d (%s): scope=%v entries=%v", x, k, m.Type(), scope, m.Entries())
		}
	}
	return nil
}

// processChanceBucket implements spec.md §4.3's chance-variable rule:
// multiply the bucket's probability factors, sum-marginalize out x to get
// the probability message f, then for each utility factor independently
// fold it into the combination, sum-marginalize out x, and divide by f.
func (e *Engine) processChanceBucket(st *bucketState, x variable.Variable, phi, psi []int) error {
	comb, err := product(st, phi, factor.Probability)
	if err != nil {
		return err
	}

	f := factor.Marginalize(comb, variable.NewSet(x), factor.SumOp).WithType(factor.Probability)
	k := st.append(f)
	st.rebucket(x.Index(), k)

	for _, j := range psi {
		cg, err := factor.Product(comb, st.pool[j])
		if err != nil {
			return err
		}
		marg := factor.Marginalize(cg, variable.NewSet(x), factor.SumOp)
		g, err := factor.Quotient(marg, f)
		if err != nil {
			return err
		}
		g = g.WithType(factor.Utility)
		gk := st.append(g)
		st.rebucket(x.Index(), gk)
	}
	return nil
}

// processValueBucket implements spec.md §4.3's value-variable rule: like
// a chance bucket's utility step, but without the probability message or
// the division by it (value variables carry no probability of their
// own).
func (e *Engine) processValueBucket(st *bucketState, x variable.Variable, phi, psi []int) error {
	comb, err := product(st, phi, factor.Probability)
	if err != nil {
		return err
	}

	for _, j := range psi {
		cg, err := factor.Product(comb, st.pool[j])
		if err != nil {
			return err
		}
		g := factor.Marginalize(cg, variable.NewSet(x), factor.SumOp).WithType(factor.Utility)
		gk := st.append(g)
		st.rebucket(x.Index(), gk)
	}
	return nil
}

// processDecisionBucket implements spec.md §4.3's decision-variable rule:
// slice each probability factor at x=0 (conceptually constant in the
// decision), and separately sum the bucket's utility factors and
// max-marginalize out x.
func (e *Engine) processDecisionBucket(st *bucketState, x variable.Variable, phi, psi []int) error {
	for _, i := range phi {
		f := factor.Slice(st.pool[i], x, 0).WithType(factor.Probability)
		k := st.append(f)
		st.rebucket(x.Index(), k)
	}

	comb, err := sumAll(st, psi, factor.Utility)
	if err != nil {
		return err
	}
	g := factor.Marginalize(comb, variable.NewSet(x), factor.MaxOp).WithType(factor.Utility)
	k := st.append(g)
	st.rebucket(x.Index(), k)
	return nil
}

// product folds factor.Product over the named pool entries, seeded at
// the multiplicative identity tagged t.
func product(st *bucketState, ids []int, t factor.Type) (factor.Factor, error) {
	acc := factor.NewScalar(1, t)
	var err error
	for _, id := range ids {
		acc, err = factor.Product(acc, st.pool[id])
		if err != nil {
			return factor.Factor{}, err
		}
	}
	return acc, nil
}

// sumAll folds factor.Sum over the named pool entries, seeded at the
// additive identity tagged t.
func sumAll(st *bucketState, ids []int, t factor.Type) (factor.Factor, error) {
	acc := factor.NewScalar(0, t)
	var err error
	for _, id := range ids {
		acc, err = factor.Sum(acc, st.pool[id])
		if err != nil {
			return factor.Factor{}, err
		}
	}
	return acc, nil
}

// combineRoots implements spec.md §4.3's "Root combination": multiply the
// roots' Probability factors, sum the roots' Utility factors, and return
// the maximum entry of their product as the Maximum Expected Utility.
func (e *Engine) combineRoots(st *bucketState) (float64, error) {
	var probIDs, utilIDs []int
	for _, r := range st.roots {
		switch st.pool[r].Type() {
		case factor.Probability:
			probIDs = append(probIDs, r)
		case factor.Utility:
			utilIDs = append(utilIDs, r)
		}
	}

	p, err := product(st, probIDs, factor.Probability)
	if err != nil {
		return 0, wrapFactorError(-1, err)
	}
	u, err := sumAll(st, utilIDs, factor.Utility)
	if err != nil {
		return 0, wrapFactorError(-1, err)
	}

	f, err := factor.Product(p, u)
	if err != nil {
		return 0, wrapFactorError(-1, err)
	}
	return factor.ScalarMax(f), nil
}

func poolBytes(pool []factor.Factor) int64 {
	var total int64
	for _, f := range pool {
		total += int64(f.NumEntries()) * 8
	}
	return total
}
