package services

import (
	"fmt"
	"sync"

	"github.com/cyberknet/reloadluf/internal/core/domain"
	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
	"github.com/cyberknet/reloadluf/internal/core/ports/driving"
	"github.com/cyberknet/reloadluf/internal/logger"
)

// Ensure SessionTracker implements the interfaces.
var (
	_ driving.Plugin         = (*SessionTracker)(nil)
	_ driving.SessionService = (*SessionTracker)(nil)
)

// SessionKey is the custom config key holding the persisted file list.
// The value format carries no version tag; changing it breaks old configs.
const SessionKey = "ReloadLUF.LastUsedFiles"

// UpdateURL is where the host checks for new plugin versions.
const UpdateURL = "https://raw.githubusercontent.com/cyberknet/KeeReloadLastUsedFiles/master/latest.txt"

// User-facing messages for the two non-fatal error reports.
const (
	msgLoadFailed = "Unable to load list of previously open password database files from config file"
	msgSaveFailed = "Unable to save list of open password database files to config file"
)

// SessionTracker remembers which database files were open when the host
// exits and reopens them on the next start.
type SessionTracker struct {
	codec driven.SessionCodec

	hostMu sync.RWMutex
	host   driven.PluginHost

	// mu guards exiting. exiting moves false -> true once and never back.
	mu      sync.Mutex
	exiting bool
}

// NewSessionTracker creates a tracker that stores the file list with codec.
func NewSessionTracker(codec driven.SessionCodec) *SessionTracker {
	return &SessionTracker{codec: codec}
}

// Initialize attaches the tracker to host and subscribes to its
// file-closing and form-loaded events.
func (s *SessionTracker) Initialize(host driven.PluginHost) bool {
	if host == nil {
		return false
	}

	s.hostMu.Lock()
	s.host = host
	s.hostMu.Unlock()

	mw := host.MainWindow()
	mw.OnFileClosingPre(s.OnFileClosingPre)
	mw.OnFormLoadPost(s.OnFormLoadPost)

	logger.Debug("session tracker attached, config key %q", SessionKey)
	return true
}

// Terminate has nothing of its own to release.
func (s *SessionTracker) Terminate() {}

// UpdateURL returns the plugin's version-check URL.
func (s *SessionTracker) UpdateURL() string {
	return UpdateURL
}

// State returns the exit-guard state.
func (s *SessionTracker) State() domain.TrackerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exiting {
		return domain.TrackerExiting
	}
	return domain.TrackerIdle
}

// OnFormLoadPost restores the previous session once the main window is up.
// Errors are reported to the user and never returned to the host.
func (s *SessionTracker) OnFormLoadPost() {
	host := s.currentHost()
	if host == nil {
		return
	}

	if _, err := s.Restore(); err != nil {
		logger.Warn("restore failed: %v", err)
		host.Notifier().ReportError(msgLoadFailed, err)
	}
}

// OnFileClosingPre persists the open files the first time the host
// signals application exit. Closes outside of exit are ignored.
func (s *SessionTracker) OnFileClosingPre(e domain.FileClosingEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !e.IsExiting() {
		logger.Debug("file closing (%s), not exiting: ignored", e.Flags)
		return
	}
	if s.exiting {
		logger.Debug("file closing during exit: already persisted")
		return
	}
	s.exiting = true

	host := s.currentHost()
	if host == nil {
		return
	}

	if _, err := s.persist(host); err != nil {
		logger.Warn("persist failed: %v", err)
		host.Notifier().ReportError(msgSaveFailed, err)
	}
}

// Restore reopens every persisted file that is not already open in the host.
// Each entry is checked against the host's documents independently, so
// duplicate entries are each considered.
func (s *SessionTracker) Restore() (*domain.RestoreResult, error) {
	host := s.currentHost()
	if host == nil {
		return nil, domain.ErrNotInitialized
	}

	logger.Section("Session Restore")
	result := &domain.RestoreResult{}

	connections, err := s.load(host)
	if err != nil {
		return result, err
	}
	if len(connections) == 0 {
		logger.Debug("no persisted files")
		return result, nil
	}

	mw := host.MainWindow()
	for _, ioc := range connections {
		cmpPath := ioc.NormalizedPath()

		if isLoaded(mw.Documents(), cmpPath) {
			logger.Debug("already open: %s", ioc.Path)
			result.AlreadyLoaded = append(result.AlreadyLoaded, ioc)
			continue
		}

		logger.Debug("opening: %s", ioc.Path)
		if err := mw.OpenDatabase(ioc, nil, false); err != nil {
			// The host has already told the user; keep going.
			logger.Warn("open %s: %v", ioc.Path, err)
			result.Failed = append(result.Failed, domain.OpenFailure{Connection: ioc, Err: err})
			continue
		}
		result.Opened = append(result.Opened, ioc)
	}

	logger.Info("restore: %d opened, %d already open, %d failed",
		len(result.Opened), len(result.AlreadyLoaded), len(result.Failed))
	return result, nil
}

// Persist replaces the persisted list with the host's open documents,
// regardless of the exit guard.
func (s *SessionTracker) Persist() (int, error) {
	host := s.currentHost()
	if host == nil {
		return 0, domain.ErrNotInitialized
	}
	return s.persist(host)
}

// Saved returns the persisted list without touching the host's documents.
func (s *SessionTracker) Saved() ([]domain.ConnectionInfo, error) {
	host := s.currentHost()
	if host == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.load(host)
}

// Clear removes the persisted list.
func (s *SessionTracker) Clear() error {
	host := s.currentHost()
	if host == nil {
		return domain.ErrNotInitialized
	}
	if err := host.CustomConfig().Delete(SessionKey); err != nil {
		return fmt.Errorf("clear %s: %w", SessionKey, err)
	}
	return nil
}

// persist collects, encodes and stores the open connections.
func (s *SessionTracker) persist(host driven.PluginHost) (int, error) {
	logger.Section("Session Persist")

	connections := openConnections(host.MainWindow().Documents())

	text, err := s.codec.Encode(connections)
	if err != nil {
		return 0, fmt.Errorf("encode file list: %w", err)
	}

	if err := host.CustomConfig().Set(SessionKey, text); err != nil {
		return 0, fmt.Errorf("write %s: %w", SessionKey, err)
	}

	logger.Info("persisted %d open file(s)", len(connections))
	return len(connections), nil
}

// load reads and decodes the persisted list. Empty means none.
func (s *SessionTracker) load(host driven.PluginHost) ([]domain.ConnectionInfo, error) {
	text := host.CustomConfig().GetString(SessionKey)
	if text == "" {
		return nil, nil
	}

	connections, err := s.codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SessionKey, err)
	}
	return connections, nil
}

func (s *SessionTracker) currentHost() driven.PluginHost {
	s.hostMu.RLock()
	defer s.hostMu.RUnlock()
	return s.host
}

// openConnections selects each document's active connection, in
// document-manager order, skipping documents without one.
func openConnections(docs []domain.Document) []domain.ConnectionInfo {
	connections := make([]domain.ConnectionInfo, 0, len(docs))
	for _, doc := range docs {
		ioc := doc.ActiveConnection()
		if ioc == nil {
			continue
		}
		connections = append(connections, ioc.ForPersistence())
	}
	return connections
}

func isLoaded(docs []domain.Document, normalizedPath string) bool {
	for _, doc := range docs {
		if doc.Matches(normalizedPath) {
			return true
		}
	}
	return false
}
