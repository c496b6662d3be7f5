// Package strategy chooses the computer's die.
//
// Both strategies draw from the same cryptographically secure source as the
// fair-random protocol, so the computer's preference is as unpredictable as
// its rolls.
package strategy
