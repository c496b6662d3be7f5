// Package game runs one non-transitive dice game between the user and the
// computer.
//
// The game is a small state machine:
//
//	INIT -> DETERMINE_FIRST -> SELECT_DICE -> ROLL -> RESULT -> DONE
//
// and any state may move to EXIT when the user types "X", input ends, the
// context is cancelled or invalid input exceeds the retry budget. Every
// random choice goes through a commit-reveal exchange: the computer shows an
// HMAC of its secret value, the user answers with a number, and the two are
// added modulo the range. At most one commitment is outstanding at a time,
// and a commitment abandoned by EXIT is wiped without revealing its key.
//
// The service owns no I/O of its own; it talks to the player through a
// domain.Terminal supplied by the caller.
package game
