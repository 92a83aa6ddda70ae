package domain

// OpenFailure records a persisted entry the host failed to reopen.
type OpenFailure struct {
	Connection ConnectionInfo
	Err        error
}

// RestoreResult summarises a startup restore, in persisted-list order.
type RestoreResult struct {
	// Opened holds entries handed to the host for opening.
	Opened []ConnectionInfo

	// AlreadyLoaded holds entries skipped because a matching document was open.
	AlreadyLoaded []ConnectionInfo

	// Failed holds entries the host could not open.
	Failed []OpenFailure
}

// Total returns the number of entries the restore looked at.
func (r *RestoreResult) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Opened) + len(r.AlreadyLoaded) + len(r.Failed)
}
