package domain

import "strings"

// FileEventFlags describes why the host is closing a file.
type FileEventFlags uint32

// Flags raised with file events. They combine as a bitmask.
const (
	FileEventNone    FileEventFlags = 0
	FileEventLocking FileEventFlags = 1 << 0
	FileEventExiting FileEventFlags = 1 << 1
	FileEventEnding  FileEventFlags = 1 << 2
)

// Has returns true if every bit of flag is set.
func (f FileEventFlags) Has(flag FileEventFlags) bool {
	return f&flag == flag
}

// String returns the set flag names joined by "|".
func (f FileEventFlags) String() string {
	if f == FileEventNone {
		return "None"
	}
	var names []string
	if f.Has(FileEventLocking) {
		names = append(names, "Locking")
	}
	if f.Has(FileEventExiting) {
		names = append(names, "Exiting")
	}
	if f.Has(FileEventEnding) {
		names = append(names, "Ending")
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, "|")
}

// FileClosingEvent is raised by the host before it closes a file.
// During application exit it may be raised more than once.
type FileClosingEvent struct {
	// Database is the database about to be closed. Nil for the
	// application-wide event.
	Database *Database

	// Flags describes the reason for closing.
	Flags FileEventFlags
}

// IsExiting returns true if the close is part of application exit.
func (e FileClosingEvent) IsExiting() bool {
	return e.Flags.Has(FileEventExiting)
}

// TrackerState is the exit-guard state of a session tracker.
type TrackerState string

// Tracker states. Exiting is terminal.
const (
	TrackerIdle    TrackerState = "idle"
	TrackerExiting TrackerState = "exiting"
)
