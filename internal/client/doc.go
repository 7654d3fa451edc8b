// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session coordinator, the local sync engine,
// and the background workers into a single process lifecycle.
package client
