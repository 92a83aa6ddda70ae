package cli

import (
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [file...]",
	Short: "Start the host and reopen the last used files",
	Long: `Starts the local host with the session tracker attached. Any files given
are opened first, then the main window finishes loading and the files
recorded at the last exit are reopened, skipping those already open.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	s.openFiles(args)
	s.host.Window().Load()

	printDocuments(cmd, s.host.Window().Documents())
	return nil
}
