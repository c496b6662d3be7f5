// Package fairrandom implements the commit-reveal exchange used for every
// unbiased draw in a game.
//
// # Overview
//
// One side (the committer) draws a secret value v uniformly from [0, n) and a
// fresh 256-bit key k, then publishes d = HMAC-SHA3-256(k, decimal(v)). Only
// after d is shown does the counterpart choose its own value u. The committer
// then reveals k and v, and both sides agree on
//
//	r = (u + v) mod n
//
// # Properties
//
// Binding: the committer cannot swap v after publishing d without finding an
// HMAC collision. Hiding: d leaks nothing about v without k. Fairness: r is
// uniform whenever v is, however u was chosen.
//
// # Flows
//
//  1. Commit(n) draws k and v and computes d.
//  2. PublishDigest(c) renders d as lowercase hex for display.
//  3. The counterpart answers with u.
//  4. Reveal(c, u) returns r together with k and v in clear.
//  5. Anyone can Verify(k, v, d).
//
// If the exchange is abandoned between steps 2 and 4, Discard wipes k so
// the value is never provably revealed.
//
// # Errors
//
// Commit returns domain.ErrInvalidRange for n < 1. Reveal never fails:
// counterpart values outside [0, n), including negative ones, are wrapped
// modulo n rather than rejected.
package fairrandom
