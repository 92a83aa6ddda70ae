package local

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cyberknet/reloadluf/internal/core/domain"
	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
)

// Ensure the host types implement the interfaces.
var (
	_ driven.PluginHost = (*Host)(nil)
	_ driven.MainWindow = (*MainWindow)(nil)
)

// Host is a local driven.PluginHost.
type Host struct {
	window   *MainWindow
	config   driven.ConfigStore
	notifier driven.Notifier
}

// NewHost creates a host backed by config that reports through notifier.
func NewHost(config driven.ConfigStore, notifier driven.Notifier) *Host {
	return &Host{
		window:   &MainWindow{notifier: notifier},
		config:   config,
		notifier: notifier,
	}
}

// MainWindow returns the host's main window.
func (h *Host) MainWindow() driven.MainWindow {
	return h.window
}

// Window returns the concrete main window, for driving events.
func (h *Host) Window() *MainWindow {
	return h.window
}

// CustomConfig returns the host's configuration store.
func (h *Host) CustomConfig() driven.ConfigStore {
	return h.config
}

// Notifier returns the host's notifier.
func (h *Host) Notifier() driven.Notifier {
	return h.notifier
}

// MainWindow holds the open documents and the registered event handlers.
type MainWindow struct {
	notifier driven.Notifier

	mu      sync.RWMutex
	docs    []domain.Document
	closing []driven.FileClosingHandler
	loaded  []driven.FormLoadHandler
}

// Documents returns a snapshot of open documents in open order.
func (w *MainWindow) Documents() []domain.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]domain.Document(nil), w.docs...)
}

// OnFileClosingPre registers a file-closing handler.
func (w *MainWindow) OnFileClosingPre(h driven.FileClosingHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closing = append(w.closing, h)
}

// OnFormLoadPost registers a form-loaded handler.
func (w *MainWindow) OnFormLoadPost(h driven.FormLoadHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loaded = append(w.loaded, h)
}

// OpenDatabase registers a document for ioc. Failures are reported
// through the notifier and returned.
func (w *MainWindow) OpenDatabase(ioc domain.ConnectionInfo, _ *domain.CompositeKey, _ bool) error {
	if err := w.open(ioc); err != nil {
		if w.notifier != nil {
			w.notifier.ReportError(fmt.Sprintf("Unable to open %s", ioc.Path), err)
		}
		return err
	}
	return nil
}

func (w *MainWindow) open(ioc domain.ConnectionInfo) error {
	if strings.TrimSpace(ioc.Path) == "" {
		return fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	cmpPath := ioc.NormalizedPath()
	if w.isOpen(cmpPath) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyOpen, ioc.Path)
	}

	if !isURL(ioc.Path) {
		info, err := os.Stat(ioc.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", ioc.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, ioc.Path)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, doc := range w.docs {
		if doc.Matches(cmpPath) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyOpen, ioc.Path)
		}
	}

	conn := ioc
	w.docs = append(w.docs, domain.Document{
		ID:       uuid.NewString(),
		Database: &domain.Database{Name: displayName(ioc.Path), ConnectionInfo: &conn},
	})
	return nil
}

func (w *MainWindow) isOpen(normalizedPath string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, doc := range w.docs {
		if doc.Matches(normalizedPath) {
			return true
		}
	}
	return false
}

// Lock locks the document with the given ID. Its connection moves to
// LockedConnection and the database is unloaded.
func (w *MainWindow) Lock(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, doc := range w.docs {
		if doc.ID != id {
			continue
		}
		if doc.IsLocked() {
			return nil
		}
		ioc := doc.ActiveConnection()
		if ioc == nil {
			return fmt.Errorf("%w: document %s has no file", domain.ErrInvalidInput, id)
		}
		w.docs[i].LockedConnection = ioc
		w.docs[i].Database = nil
		return nil
	}
	return fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
}

// Load raises the form-loaded event.
func (w *MainWindow) Load() {
	for _, h := range w.loadedHandlers() {
		h()
	}
}

// Close raises file-closing for one document without exiting, then
// removes it.
func (w *MainWindow) Close(id string) error {
	w.mu.RLock()
	idx := w.indexOf(id)
	var doc domain.Document
	if idx >= 0 {
		doc = w.docs[idx]
	}
	w.mu.RUnlock()

	if idx < 0 {
		return fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}

	w.fireClosing(domain.FileClosingEvent{Database: doc.Database, Flags: domain.FileEventNone})

	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOf(id); i >= 0 {
		w.docs = append(w.docs[:i], w.docs[i+1:]...)
	}
	return nil
}

// Exit runs the shutdown sequence: one exiting file-closing event per open
// document, one more for the application, then every document is dropped.
func (w *MainWindow) Exit() {
	for _, doc := range w.Documents() {
		w.fireClosing(domain.FileClosingEvent{
			Database: doc.Database,
			Flags:    domain.FileEventExiting,
		})
	}
	w.fireClosing(domain.FileClosingEvent{Flags: domain.FileEventExiting | domain.FileEventEnding})

	w.mu.Lock()
	w.docs = nil
	w.mu.Unlock()
}

func (w *MainWindow) fireClosing(e domain.FileClosingEvent) {
	w.mu.RLock()
	handlers := append([]driven.FileClosingHandler(nil), w.closing...)
	w.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

func (w *MainWindow) loadedHandlers() []driven.FormLoadHandler {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]driven.FormLoadHandler(nil), w.loaded...)
}

// indexOf finds a document by ID (caller must hold lock).
func (w *MainWindow) indexOf(id string) int {
	for i, doc := range w.docs {
		if doc.ID == id {
			return i
		}
	}
	return -1
}

func isURL(path string) bool {
	return strings.Contains(path, "://")
}

func displayName(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
