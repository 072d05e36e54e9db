package be

import (
	"context"

	"github.com/vareng/bucketelim/factor"
	"github.com/vareng/bucketelim/variable"
)

// backwardPass implements spec.md §4.4's policy-extraction pass: walking
// the elimination order in reverse, each decision bucket's accumulated
// probability and utility factors are combined into that decision's
// policy — the utility a decision-maker would have maximized over at
// forward-pass time, now exposed to the caller instead of eliminated.
func (e *Engine) backwardPass(ctx context.Context, st *bucketState) (map[int]factor.Factor, int64, error) {
	policies := make(map[int]factor.Factor)
	var bytes int64

	for i := len(st.order) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		x := st.order[i]
		v, ok := e.diagram.VariableByIndex(x)
		if !ok || v.Kind() != variable.Decision {
			continue
		}

		ids := st.vin[x]
		if len(ids) == 0 {
			continue
		}
		phi, psi := st.split(ids)
		p, err := product(st, phi, factor.Probability)
		if err != nil {
			return nil, 0, wrapFactorError(x, err)
		}
		u, err := sumAll(st, psi, factor.Utility)
		if err != nil {
			return nil, 0, wrapFactorError(x, err)
		}
		policy, err := factor.Product(p, u)
		if err != nil {
			return nil, 0, wrapFactorError(x, err)
		}

		policies[x] = policy.WithType(factor.Utility)
		bytes += int64(policy.NumEntries()) * 8
	}

	return policies, bytes, nil
}
