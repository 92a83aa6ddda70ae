// Package memory provides in-memory implementations of driven port interfaces.
// Nothing survives the process; useful for tests and dry runs.
package memory
