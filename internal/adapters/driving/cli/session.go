package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberknet/reloadluf/internal/adapters/driven/config/file"
	"github.com/cyberknet/reloadluf/internal/core/domain"
	"github.com/cyberknet/reloadluf/internal/core/services"
	"github.com/cyberknet/reloadluf/internal/logger"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the recorded list of last used files",
	Long:  `Shows, clears or follows the list stored under ` + services.SessionKey + `.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the recorded files",
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the recorded files",
	RunE:  runSessionClear,
}

var sessionWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the recorded files whenever the config file changes",
	Long: `Follows the TOML config file and prints the recorded list each time it
is rewritten. Only the toml backend is supported. Stop with Ctrl+C.`,
	RunE: runSessionWatch,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionCmd.AddCommand(sessionWatchCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	return printSaved(cmd, s)
}

func runSessionClear(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.tracker.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	cmd.Println("Recorded files cleared.")
	return nil
}

func runSessionWatch(cmd *cobra.Command, _ []string) error {
	if backend != BackendTOML {
		return fmt.Errorf("%w: watch needs the %s backend", domain.ErrInvalidInput, BackendTOML)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	w, err := file.NewWatcher(s.store.Path())
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	defer w.Close()

	if err := printSaved(cmd, s); err != nil {
		return err
	}
	cmd.Printf("Watching %s...\n", s.store.Path())

	return w.Run(cmd.Context(), func() {
		if err := s.store.Load(); err != nil {
			logger.Warn("reloading config: %v", err)
			return
		}
		if err := printSaved(cmd, s); err != nil {
			logger.Warn("%v", err)
		}
	})
}

func printSaved(cmd *cobra.Command, s *session) error {
	saved, err := s.tracker.Saved()
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	if len(saved) == 0 {
		cmd.Println("No recorded files.")
		return nil
	}

	cmd.Printf("Recorded files (%d):\n", len(saved))
	for _, ioc := range saved {
		if ioc.UserName != "" {
			cmd.Printf("  %s (user %s, %s)\n", ioc.Path, ioc.UserName, ioc.CredSaveMode)
			continue
		}
		cmd.Printf("  %s\n", ioc.Path)
	}
	return nil
}
