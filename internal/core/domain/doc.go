// Package domain defines the core types for reloadluf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ConnectionInfo: A reference to one database file as the host opens it
//   - Document: An open database session in the host's document manager
//   - FileClosingEvent: The notification raised before the host closes a file
//   - RestoreResult: What a startup restore did with each persisted entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
