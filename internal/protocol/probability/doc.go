// Package probability computes pairwise win probabilities for a set of dice.
//
// For dice A and B, P(A beats B) is the share of all face pairings (a, b)
// with a > b. Ties count as neither side winning, so P(A beats B) and
// P(B beats A) need not sum to 1. The result is exact: every pairing is
// enumerated, which costs O(k * k * f * f) for k dice of f faces.
package probability
