// Package cli provides the cobra command-line interface for reloadluf.
//
// The commands drive a local reference host with the session tracker
// attached, so the restore and persist behaviour can be exercised from a
// terminal without a password manager.
package cli
