// Package cli provides the Cobra-based command surface for permsync.
// The root command performs the consolidation itself; subcommands cover
// version information. Errors are rendered with category headings and
// remediation steps, and mapped to distinct exit codes in main.
package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/permsync/internal/errors"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagShowAllow bool
	flagDryRun    bool
	flagNoBackup  bool
)

var rootCmd = &cobra.Command{
	Use:   "permsync",
	Short: "Consolidate Claude Code permission settings",
	Long: `permsync consolidates permission settings from every registered project's
.claude/settings.local.json into the global ~/.claude/settings.json.

Permission lists are merged as a deduplicated, sorted union per kind
("allow", "deny", ...). Other fields follow last-write-wins in project
order. A command allowed once no longer needs approval in every project.`,
	Example: `  # Merge all local settings into the global settings file
  permsync

  # Show which project granted which allow entry
  permsync --show-allow-commands

  # Preview without writing
  permsync --dry-run`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSync,
}

// Execute runs the root command, printing any error with remediation to
// stderr. The caller maps the returned error to an exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, errors.FormatError(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a permsync config file")
	rootCmd.Flags().BoolVar(&flagShowAllow, "show-allow-commands", false, "Print each allow entry with its source project")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Compute the merge but write nothing")
	rootCmd.Flags().BoolVar(&flagNoBackup, "no-backup", false, "Skip the backup of the previous global settings")
}
