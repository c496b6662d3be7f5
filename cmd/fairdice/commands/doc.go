// Package commands defines the fairdice CLI and wires dependencies for subcommands.
//
// Commands
//
//   - fairdice <dice...>   Play one game against the computer
//   - table <dice...>      Print the win-probability help table
//   - verify               Check a revealed key and value against an HMAC
//
// Each die is a comma-separated list of integer faces, e.g. 2,2,4,4,9,9. At
// least three dice are required. Dice may also be listed in a YAML file given
// with --dice-file. Dice with negative faces must follow "--" so they are not
// read as flags.
//
// # Implementation
//
// The root command loads Config from the environment, lets explicitly set
// flags override it, and builds the logger before play and table run. verify
// skips that step so a digest can be checked whatever the environment holds. Games
// run under a context cancelled by SIGINT or SIGTERM, and the terminal session
// is closed on every exit path. Cancelling a game exits with status 0; a bad
// dice configuration exits with status 1.
package commands
