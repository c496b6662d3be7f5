// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the logger, the fair-random
// protocol, the opponent strategy and the game service, and exposes them via
// the Wire struct for commands to use.
package app
