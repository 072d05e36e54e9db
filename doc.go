// Package bucketelim computes Maximum Expected Utility and optimal
// decision policies for Influence Diagrams via Bucket Elimination.
//
// An Influence Diagram is a decision-theoretic graphical model: chance
// variables governed by conditional probability factors, decision
// variables whose values a policy chooses, and utility factors scoring
// outcomes. Given a temporal partial order stating which decisions
// observe which chance outcomes before being made, the engine computes
// the best achievable expected utility and, for every decision, a
// factor giving the expected utility of each action in each observed
// context (its argmax over the action is the optimal choice).
//
// Package layout:
//
//	variable/ — discrete variables and variable sets
//	factor/   — multidimensional probability/utility tables and their algebra
//	diagram/  — the read-only InfluenceDiagram input container
//	order/    — the elimination-order heuristic (Provider interface + a greedy reference)
//	be/       — the bucket elimination engine, policy extraction, and Result
//
// Typical use:
//
//	model, err := diagram.New(vars, factors, diagram.WithPartialOrder(order))
//	result, err := be.New(model, be.DefaultConfig()).Run(ctx)
//	fmt.Println(result.MEU())
//
// The module has no examples/ directory. The engine's core scenarios
// (pure-chance models, single-decision models, decisions that observe a
// chance outcome before acting, decisions that commit before one
// resolves, and multi-variable exact marginalization) are exercised by
// the TestRun_* tests in be/engine_test.go, and be/example_test.go holds
// a runnable Example.
package bucketelim
