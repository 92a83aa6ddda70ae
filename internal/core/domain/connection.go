package domain

import "strings"

// CredSaveMode controls which credentials of a connection may be remembered.
type CredSaveMode string

// Available credential save modes.
const (
	// CredSaveNone remembers neither user name nor password.
	CredSaveNone CredSaveMode = "NoSave"

	// CredSaveUserNameOnly remembers the user name only.
	CredSaveUserNameOnly CredSaveMode = "UserNameOnly"

	// CredSaveAll remembers user name and password.
	CredSaveAll CredSaveMode = "SaveCred"
)

// IsValid returns true if the save mode is recognised.
func (m CredSaveMode) IsValid() bool {
	switch m {
	case CredSaveNone, CredSaveUserNameOnly, CredSaveAll:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m CredSaveMode) String() string {
	return string(m)
}

// CredProtMode describes how a remembered password is protected in memory.
type CredProtMode string

// Available credential protection modes.
const (
	CredProtNone CredProtMode = "None"
	CredProtObf  CredProtMode = "Obf"
)

// ConnectionInfo identifies a database file location and its connection
// parameters. The host owns these; the tracker only keeps transient copies.
type ConnectionInfo struct {
	// Path is the file path or URL of the database.
	Path string

	// UserName is the transport user name (for remote locations).
	UserName string

	// Password is the transport password. Never persisted by the tracker.
	Password string

	// CredSaveMode controls which credentials may be remembered.
	CredSaveMode CredSaveMode

	// CredProtMode describes how Password is protected.
	CredProtMode CredProtMode
}

// NormalizedPath returns the comparison key for the connection:
// the path trimmed of surrounding whitespace and lowercased.
func (c ConnectionInfo) NormalizedPath() string {
	return NormalizePath(c.Path)
}

// IsEmpty returns true if the connection has no path.
func (c ConnectionInfo) IsEmpty() bool {
	return c.Path == ""
}

// SamePath reports whether both connections refer to the same location,
// comparing normalized paths.
func (c ConnectionInfo) SamePath(other ConnectionInfo) bool {
	return c.NormalizedPath() == other.NormalizedPath()
}

// ForPersistence returns a copy that is safe to write to the config store.
// The password is always dropped; the user name survives unless the
// connection was configured not to save credentials.
func (c ConnectionInfo) ForPersistence() ConnectionInfo {
	out := c
	out.Password = ""
	if out.CredSaveMode == "" {
		out.CredSaveMode = CredSaveNone
	}
	if out.CredSaveMode == CredSaveNone {
		out.UserName = ""
	}
	if out.CredProtMode == "" {
		out.CredProtMode = CredProtObf
	}
	return out
}

// NormalizePath lowercases and trims a path for case-insensitive comparison.
func NormalizePath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}
