// Package services implements the driving port interfaces.
//
// SessionTracker is the plugin: it reopens the files recorded at the last
// exit when the host's main window loads, and records the files open when
// the host exits. It talks to the host only through the driven ports.
//
// Services are pure Go with no CGO or external dependencies.
package services
