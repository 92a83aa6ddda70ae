package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time.
var version = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("reloadluf version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
