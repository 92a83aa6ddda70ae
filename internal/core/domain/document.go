package domain

// Database is the host's in-memory view of an opened database file.
type Database struct {
	// Name is the display name of the database.
	Name string

	// ConnectionInfo is where the database was loaded from. May be nil.
	ConnectionInfo *ConnectionInfo
}

// Document is one open session in the host's document manager.
// A locked document keeps its connection in LockedConnection while the
// database itself is unloaded.
type Document struct {
	// ID uniquely identifies the document within the host.
	ID string

	// LockedConnection is set while the document is locked. May be nil.
	LockedConnection *ConnectionInfo

	// Database is the loaded database. May be nil.
	Database *Database
}

// ActiveConnection returns the connection that identifies this document.
// The locked connection wins when it has a path; otherwise the database
// connection is used. Returns nil if neither has a path.
func (d Document) ActiveConnection() *ConnectionInfo {
	if d.LockedConnection != nil && !d.LockedConnection.IsEmpty() {
		return d.LockedConnection
	}
	if d.Database != nil && d.Database.ConnectionInfo != nil && !d.Database.ConnectionInfo.IsEmpty() {
		return d.Database.ConnectionInfo
	}
	return nil
}

// IsLocked returns true if the document is currently locked.
func (d Document) IsLocked() bool {
	return d.LockedConnection != nil && !d.LockedConnection.IsEmpty()
}

// Matches reports whether the document's active connection refers to the
// given normalized path.
func (d Document) Matches(normalizedPath string) bool {
	ioc := d.ActiveConnection()
	if ioc == nil {
		return false
	}
	return ioc.NormalizedPath() == normalizedPath
}
