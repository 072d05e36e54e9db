package be

import "github.com/vareng/bucketelim/factor"

// Result holds a completed Run: the model's Maximum Expected Utility and
// the per-decision policy factors recovered by the backward pass.
type Result struct {
	meu             float64
	policies        map[int]factor.Factor
	factorPoolBytes int64
	policyBytes     int64
}

// MEU returns the model's Maximum Expected Utility.
func (r *Result) MEU() float64 { return r.meu }

// Policy returns the policy factor for decision variable v: a Utility
// factor over v and the variables it was conditioned on at elimination
// time. Returns PolicyNotFoundError if v named no decision variable
// reached by the backward pass.
func (r *Result) Policy(v int) (factor.Factor, error) {
	f, ok := r.policies[v]
	if !ok {
		return factor.Factor{}, PolicyNotFoundError{Variable: v}
	}
	return f, nil
}

// Policies returns every recovered decision's policy factor, keyed by
// variable index. The returned map is owned by the caller.
func (r *Result) Policies() map[int]factor.Factor {
	out := make(map[int]factor.Factor, len(r.policies))
	for k, v := range r.policies {
		out[k] = v
	}
	return out
}

// FactorPoolBytes returns the approximate memory footprint, in bytes, of
// every factor table materialized during the forward pass (8 bytes per
// float64 entry).
func (r *Result) FactorPoolBytes() int64 { return r.factorPoolBytes }

// PolicyBytes returns the approximate memory footprint, in bytes, of the
// recovered policy factors.
func (r *Result) PolicyBytes() int64 { return r.policyBytes }
