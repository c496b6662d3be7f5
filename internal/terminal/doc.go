// Package terminal provides the interactive session a game runs in.
//
// A Session wraps an input stream and an output writer. Input is read line
// by line on a single background goroutine so ReadLine can return as soon as
// its context is cancelled, even while the reader is blocked. Close releases
// the session and closes the input if it is an io.Closer (os.Stdin included),
// which ends the reader goroutine. Callers open one per game and defer Close
// on every path.
//
// Concurrency: a Session is used by one game goroutine at a time. Printf and
// ReadLine must not be called concurrently.
package terminal
