package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberknet/reloadluf/internal/core/domain"
)

var exitCmd = &cobra.Command{
	Use:   "exit [file...]",
	Short: "Open files, then exit the host and record them",
	Long: `Opens the given files in the local host and runs its exit sequence. The
session tracker records the files open at that moment so the next
"start" reopens them.

Files named with --lock are locked before the exit, so the tracker records
them from their locked connection.`,
	RunE: runExit,
}

// exitLock lists the paths to lock before exiting.
var exitLock []string

func init() {
	exitCmd.Flags().StringSliceVar(
		&exitLock, "lock", nil, "Lock this open file before exiting (repeatable)")
	rootCmd.AddCommand(exitCmd)
}

func runExit(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	s.openFiles(args)
	if err := s.lockFiles(cmd, exitLock); err != nil {
		return err
	}
	s.host.Window().Exit()

	saved, err := s.tracker.Saved()
	if err != nil {
		return err
	}
	cmd.Printf("Saved %d file(s) to %s.\n", len(saved), s.store.Path())
	return nil
}

// lockFiles locks the open document for each path.
func (s *session) lockFiles(cmd *cobra.Command, paths []string) error {
	for _, p := range paths {
		cmpPath := domain.NormalizePath(p)
		found := false
		for _, doc := range s.host.Window().Documents() {
			if !doc.Matches(cmpPath) {
				continue
			}
			if err := s.host.Window().Lock(doc.ID); err != nil {
				return fmt.Errorf("locking %s: %w", p, err)
			}
			cmd.Printf("Locked %s.\n", p)
			found = true
			break
		}
		if !found {
			return fmt.Errorf("%w: %s is not open", domain.ErrNotFound, p)
		}
	}
	return nil
}
