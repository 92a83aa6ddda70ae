package driven

import "github.com/cyberknet/reloadluf/internal/core/domain"

// FileClosingHandler receives file-closing-pre notifications.
type FileClosingHandler func(e domain.FileClosingEvent)

// FormLoadHandler receives the main-window-load-complete notification.
type FormLoadHandler func()

// PluginHost is the password-manager application a plugin is loaded into.
// The host owns every service behind it and synchronises them itself.
type PluginHost interface {
	// MainWindow returns the host's main window.
	MainWindow() MainWindow

	// CustomConfig returns the host's plugin key/value configuration store.
	CustomConfig() ConfigStore

	// Notifier returns the host's user notification surface.
	Notifier() Notifier
}

// MainWindow exposes the host lifecycle events, the open documents and
// the open-database operation.
type MainWindow interface {
	DocumentManager
	DatabaseOpener

	// OnFileClosingPre registers a handler invoked before a file closes.
	// During application exit the event may fire more than once.
	OnFileClosingPre(h FileClosingHandler)

	// OnFormLoadPost registers a handler invoked once the main window
	// has finished loading.
	OnFormLoadPost(h FormLoadHandler)
}

// DocumentManager enumerates the host's open documents.
type DocumentManager interface {
	// Documents returns a snapshot of open documents in manager order.
	Documents() []domain.Document
}

// DatabaseOpener opens a database in the host.
type DatabaseOpener interface {
	// OpenDatabase opens the database at ioc. A nil key means no
	// credentials are supplied; interactive=false suppresses prompts.
	// The host reports its own failures to the user; the returned error
	// is informational.
	OpenDatabase(ioc domain.ConnectionInfo, key *domain.CompositeKey, interactive bool) error
}

// Notifier surfaces non-fatal errors to the user (a modal dialog in a GUI host).
type Notifier interface {
	// ReportError shows message together with the error detail.
	ReportError(message string, err error)
}
