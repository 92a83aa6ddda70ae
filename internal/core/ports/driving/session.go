package driving

import "github.com/cyberknet/reloadluf/internal/core/domain"

// SessionService persists and restores the set of open database files.
type SessionService interface {
	// Restore reopens every persisted file that is not already open.
	// An absent or empty list is not an error.
	Restore() (*domain.RestoreResult, error)

	// Persist replaces the persisted list with the host's open documents.
	// Returns the number of connections written.
	Persist() (int, error)

	// Saved returns the persisted list without opening anything.
	Saved() ([]domain.ConnectionInfo, error)

	// Clear removes the persisted list.
	Clear() error

	// State returns the exit-guard state.
	State() domain.TrackerState
}
