// Package be implements Bucket Elimination for Influence Diagrams: given
// a diagram.InfluenceDiagram and a Config, Engine.Run computes the
// Maximum Expected Utility and, for each decision variable, a policy
// factor mapping its induced parent configurations to expected utility.
//
// The algorithm has two passes, both run once per Engine.Run call:
//
//   - Forward: partitions input factors into buckets (one per
//     elimination-order variable), then processes buckets in order,
//     producing new probability/utility messages and re-bucketing them
//     into the first remaining bucket their scope still touches.
//   - Backward: walks the elimination order in reverse, and for each
//     decision variable combines whatever probability and utility
//     factors accumulated in its bucket into a policy factor.
//
// Configuration is a single comma-separated Key=Value string
// (ParseConfig), plus functional options (WithOrder, WithDebug) layered
// on top for callers that prefer constructing a Config in code.
package be
