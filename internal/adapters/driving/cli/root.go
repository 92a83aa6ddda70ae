package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyberknet/reloadluf/internal/adapters/driven/codec/xmlcodec"
	"github.com/cyberknet/reloadluf/internal/adapters/driven/host/local"
	"github.com/cyberknet/reloadluf/internal/adapters/driven/notify"
	"github.com/cyberknet/reloadluf/internal/core/domain"
	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
	"github.com/cyberknet/reloadluf/internal/core/services"
	"github.com/cyberknet/reloadluf/internal/logger"
)

// Storage backends accepted by --backend.
const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StoreOpener opens the configuration store for backend under dir. An
// empty dir means the backend's default location. The returned close
// function releases the store.
type StoreOpener func(backend, dir string) (driven.ConfigStore, func() error, error)

// storeOpener is set by the composition root.
var storeOpener StoreOpener

// newNotifier builds the notifier the host reports through.
var newNotifier = func(_ *cobra.Command) driven.Notifier {
	return notify.New(os.Stdin, os.Stdout, noDialog)
}

// Persistent flags.
var (
	configDir string
	backend   string
	verbose   bool
	noDialog  bool
)

var rootCmd = &cobra.Command{
	Use:   "reloadluf",
	Short: "Reopen the password databases that were open at last exit",
	Long: `reloadluf remembers which password database files were open when the
application exited and reopens them at the next start.

It drives a local reference host with the session tracker attached:
"exit" records the open files, "start" reopens them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return validateBackend(backend)
	},
}

// SetStoreOpener sets how commands open the configuration store.
func SetStoreOpener(opener StoreOpener) {
	storeOpener = opener
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configDir, "config-dir", "", "Configuration directory (default ~/.reloadluf)")
	rootCmd.PersistentFlags().StringVar(
		&backend, "backend", BackendTOML, "Configuration backend (toml, sqlite, memory)")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().BoolVar(
		&noDialog, "no-dialog", false, "Print errors as text instead of a dialog")
}

func validateBackend(name string) error {
	switch name {
	case BackendTOML, BackendSQLite, BackendMemory:
		return nil
	default:
		return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidInput, name)
	}
}

// session is a host with the tracker attached.
type session struct {
	store   driven.ConfigStore
	host    *local.Host
	tracker *services.SessionTracker
	close   func() error
}

func openSession(cmd *cobra.Command) (*session, error) {
	if storeOpener == nil {
		return nil, errors.New("config store not configured")
	}

	store, closeStore, err := storeOpener(backend, configDir)
	if err != nil {
		return nil, fmt.Errorf("opening %s config: %w", backend, err)
	}
	logger.Debug("config store: %s (%s)", store.Path(), backend)

	host := local.NewHost(store, newNotifier(cmd))
	tracker := services.NewSessionTracker(xmlcodec.New())
	if !tracker.Initialize(host) {
		_ = closeStore()
		return nil, errors.New("session tracker failed to initialize")
	}

	return &session{
		store:   store,
		host:    host,
		tracker: tracker,
		close: func() error {
			tracker.Terminate()
			return closeStore()
		},
	}, nil
}

// openFiles opens each path in the host. Failures are reported by the
// host and do not stop the remaining paths.
func (s *session) openFiles(paths []string) {
	for _, p := range paths {
		err := s.host.Window().OpenDatabase(domain.ConnectionInfo{Path: p}, nil, true)
		if err != nil {
			logger.Debug("open %s: %v", p, err)
		}
	}
}

func printDocuments(cmd *cobra.Command, docs []domain.Document) {
	if len(docs) == 0 {
		cmd.Println("No open documents.")
		return
	}

	cmd.Printf("Open documents (%d):\n", len(docs))
	for _, doc := range docs {
		ioc := doc.ActiveConnection()
		if ioc == nil {
			continue
		}
		state := ""
		if doc.IsLocked() {
			state = " [locked]"
		}
		cmd.Printf("  %s%s\n", ioc.Path, state)
	}
}
